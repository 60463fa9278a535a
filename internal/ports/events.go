package ports

import (
	"context"
	"time"

	"bloodlink/internal/domain"
)

// AuditEvent is the structured record emitted for every transition and escalation.
type AuditEvent struct {
	ID        string        `json:"id"`
	At        time.Time     `json:"at"`
	RequestID string        `json:"requestId"`
	Action    string        `json:"action"`
	Actor     string        `json:"actor"`
	OldStatus domain.Status `json:"oldStatus"`
	NewStatus domain.Status `json:"newStatus"`
	Level     int           `json:"level,omitempty"`
	Note      string        `json:"note,omitempty"`
}

// AuditSink receives audit events. Sinks must not block transitions for long;
// errors are logged by the caller and never undo a transition.
type AuditSink interface {
	Emit(ctx context.Context, ev AuditEvent) error
}

// RequestSummary is what a notified hospital needs to decide.
type RequestSummary struct {
	RequestID     string            `json:"requestId"`
	HospitalID    string            `json:"hospitalId"`
	BloodGroup    domain.BloodGroup `json:"bloodGroup"`
	UnitsRequired int               `json:"unitsRequired"`
	Severity      domain.Severity   `json:"severity"`
	UrgencyScore  int               `json:"urgencyScore"`
	RequiredBy    time.Time         `json:"requiredBy"`
}

// Tier is the notification breadth of one escalation step.
type Tier struct {
	Level     int  `json:"level"`
	Authority bool `json:"authority"`
}

// Notifier is the external notification transport. Delivery is best-effort.
type Notifier interface {
	Notify(ctx context.Context, hospitalIDs []string, summary RequestSummary, tier Tier) error
}

// Notification is one delivered alert as kept in a hospital's inbox.
type Notification struct {
	HospitalID string         `json:"hospitalId"`
	Summary    RequestSummary `json:"summary"`
	Tier       Tier           `json:"tier"`
	At         time.Time      `json:"at"`
}

// Inbox reads the most recent notifications delivered to a hospital.
type Inbox interface {
	Recent(ctx context.Context, hospitalID string, limit int) ([]Notification, error)
}
