package notifier

import (
	"context"
	"log"

	"bloodlink/internal/ports"
)

// LogTransport writes alerts to the process log. It stands in for a real
// transport when no broker is configured.
type LogTransport struct{}

func (LogTransport) Notify(_ context.Context, hospitalIDs []string, s ports.RequestSummary, tier ports.Tier) error {
	kind := "hospitals"
	if tier.Authority {
		kind = "authority"
	}
	log.Printf("notify: level %d %s %v: request %s needs %d units %s (%s, urgency %d)",
		tier.Level, kind, hospitalIDs, s.RequestID, s.UnitsRequired, s.BloodGroup, s.Severity, s.UrgencyScore)
	return nil
}
