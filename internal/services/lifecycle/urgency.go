package lifecycle

import (
	"time"

	"bloodlink/internal/domain"
)

// Urgency scores a request 0-100 from severity, deadline, volume, scarcity,
// patient age and escalation level. It is recomputed on every promotion.
func Urgency(r *domain.EmergencyRequest, now time.Time) int {
	score := 0
	switch r.Severity {
	case domain.SeverityCritical:
		score = 60
	case domain.SeverityHigh:
		score = 40
	default:
		score = 20
	}
	if !r.Patient.RequiredBy.IsZero() {
		switch left := r.Patient.RequiredBy.Sub(now); {
		case left <= time.Hour:
			score += 25
		case left <= 3*time.Hour:
			score += 15
		case left <= 6*time.Hour:
			score += 10
		}
	}
	switch {
	case r.UnitsRequired >= 4:
		score += 10
	case r.UnitsRequired >= 2:
		score += 5
	}
	if r.BloodGroup.RhNegative() {
		score += 5
	}
	if r.Patient.Age < 1 || r.Patient.Age > 65 {
		score += 5
	}
	score += 5 * r.EscalationLevel
	return min(score, 100)
}
