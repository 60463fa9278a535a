package ports

import (
	"context"
	"time"

	"bloodlink/internal/domain"
)

// Requests is the request API surface consumed by the HTTP layer.
type Requests interface {
	Create(ctx context.Context, d domain.Demand) (*domain.EmergencyRequest, error)
	Get(ctx context.Context, id string) (*domain.EmergencyRequest, error)
	List(ctx context.Context, f domain.RequestFilter) ([]*domain.EmergencyRequest, error)
	SubmitForVerification(ctx context.Context, id, actor string) (*domain.EmergencyRequest, error)
	Verify(ctx context.Context, id, actor string) (*domain.EmergencyRequest, error)
	Accept(ctx context.Context, id, hospitalID string, unitsCommitted, etaMinutes int) (*domain.EmergencyRequest, error)
	Decline(ctx context.Context, id, hospitalID, reason string) (*domain.EmergencyRequest, error)
	Dispatch(ctx context.Context, id string, info domain.TransportInfo) (*domain.BloodTransfer, error)
	Cancel(ctx context.Context, id, actor, reason string) (*domain.EmergencyRequest, error)
	Fail(ctx context.Context, id, actor, reason string) (*domain.EmergencyRequest, error)
	Complete(ctx context.Context, id, actor string) (*domain.EmergencyRequest, error)
	ReturnUnits(ctx context.Context, id string, units int) (*domain.EmergencyRequest, error)
	Candidates(ctx context.Context, id string) ([]domain.Candidate, error)
	ManualEscalate(ctx context.Context, id, actor string, target int) (*domain.EmergencyRequest, error)
	EscalationStats(ctx context.Context, from, to time.Time) (domain.EscalationStats, error)
}

// Transfers is the transfer API surface consumed by the HTTP layer.
type Transfers interface {
	GetTransfer(ctx context.Context, id string) (*domain.BloodTransfer, error)
	UpdateTransferLocation(ctx context.Context, id string, loc domain.Location, at time.Time) (*domain.BloodTransfer, error)
	LogTemperature(ctx context.Context, id string, celsius float64, at time.Time) (*domain.BloodTransfer, error)
	RecordDelivery(ctx context.Context, id string, unitsReceived int, checklist domain.DeliveryChecklist) (*domain.EmergencyRequest, error)
}

// Trust exposes read access to ledgers.
type Trust interface {
	Ledger(ctx context.Context, hospitalID string) (domain.TrustLedger, error)
}

// AuditHistory reads archived audit events for a request.
type AuditHistory interface {
	History(ctx context.Context, requestID string) ([]AuditEvent, error)
}
