package matching

import (
	"math"

	"bloodlink/internal/domain"
)

// neutralAcceptance stands in for the acceptance rate of hospitals with no
// response history when grading confidence.
const neutralAcceptance = 75.0

// Inputs is everything the score depends on.
type Inputs struct {
	DistanceKm     float64
	AvailableUnits int
	UnitsRequired  int
	TrustScore     int
	Response       domain.TrustCounters
	Severity       domain.Severity
}

// Score is the weighted 0-100 ranking score.
func Score(in Inputs) float64 {
	s := DistanceScore(in.DistanceKm) +
		AvailabilityScore(in.AvailableUnits, in.UnitsRequired) +
		TrustScore(in.TrustScore) +
		ResponseScore(in.Response)
	if in.Severity == domain.SeverityCritical && in.DistanceKm <= 15 {
		s += 5
	}
	return math.Min(100, s)
}

// DistanceScore (max 30).
func DistanceScore(km float64) float64 {
	switch {
	case km <= 5:
		return 30
	case km <= 10:
		return 25
	case km <= 20:
		return 20
	case km <= 30:
		return 15
	case km <= 50:
		return 10
	default:
		return 5
	}
}

// AvailabilityScore (max 30) grades available units against the requirement.
func AvailabilityScore(available, required int) float64 {
	if required <= 0 {
		return 30
	}
	ratio := float64(available) / float64(required)
	switch {
	case ratio >= 3:
		return 30
	case ratio >= 2:
		return 25
	case ratio >= 1.5:
		return 20
	case ratio >= 1:
		return 15
	default:
		return 10
	}
}

// TrustScore (max 25) is linear in the overall trust score.
func TrustScore(overall int) float64 {
	return math.Max(0, math.Min(100, float64(overall))) / 100 * 25
}

// ResponseScore (max 15): acceptance rate scaled to 10, plus up to 5 for a
// mean response under ten minutes. No history earns a flat 10.
func ResponseScore(c domain.TrustCounters) float64 {
	if c.Received == 0 {
		return 10
	}
	s := c.AcceptanceRate() / 100 * 10
	if c.Responses > 0 {
		if mean := c.MeanResponseMinutes(); mean < 10 {
			s += 5 * (10 - mean) / 10
		}
	}
	return math.Min(15, s)
}

// Grade summarises how likely the candidate is to fulfil the request.
func Grade(score float64, available, required int, c domain.TrustCounters) domain.Confidence {
	acceptance := neutralAcceptance
	if c.Received > 0 {
		acceptance = c.AcceptanceRate()
	}
	ratio := 0.0
	if required > 0 {
		ratio = float64(available) / float64(required)
	}
	switch {
	case score >= 80 && ratio >= 1.5 && acceptance >= 80:
		return domain.ConfidenceHigh
	case score >= 60 && ratio >= 1 && acceptance >= 60:
		return domain.ConfidenceMedium
	default:
		return domain.ConfidenceLow
	}
}

// EstimateResponseMinutes adds historical response time to road travel at an
// average emergency speed.
func EstimateResponseMinutes(km float64, c domain.TrustCounters) int {
	const kmPerHour = 40.0
	base := 15.0
	if c.Responses > 0 {
		base = c.MeanResponseMinutes()
	}
	return int(math.Ceil(base + km/kmPerHour*60))
}
