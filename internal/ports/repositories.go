package ports

import (
	"context"

	"bloodlink/internal/domain"
)

// RequestRepository stores emergency requests. UpdateRequest succeeds only when
// the stored version equals req.Version and bumps it on success; otherwise it
// returns a ConcurrentModification error.
type RequestRepository interface {
	CreateRequest(ctx context.Context, req *domain.EmergencyRequest) error
	GetRequest(ctx context.Context, id string) (*domain.EmergencyRequest, error)
	UpdateRequest(ctx context.Context, req *domain.EmergencyRequest) error
	ListRequests(ctx context.Context, filter domain.RequestFilter) ([]*domain.EmergencyRequest, error)
	// ListEscalatable returns requests whose status is escalatable and whose level is below maxLevel.
	ListEscalatable(ctx context.Context, maxLevel int) ([]*domain.EmergencyRequest, error)
}

// TransferRepository stores blood transfers, versioned like requests.
type TransferRepository interface {
	CreateTransfer(ctx context.Context, t *domain.BloodTransfer) error
	GetTransfer(ctx context.Context, id string) (*domain.BloodTransfer, error)
	UpdateTransfer(ctx context.Context, t *domain.BloodTransfer) error
}

// LedgerRepository persists trust ledgers keyed by hospital.
type LedgerRepository interface {
	GetLedger(ctx context.Context, hospitalID string) (ledger domain.TrustLedger, found bool, err error)
	SaveLedger(ctx context.Context, ledger domain.TrustLedger) error
}

// InventoryLevel is one (hospital, blood group) pool.
type InventoryLevel struct {
	HospitalID string            `json:"hospitalId"`
	BloodGroup domain.BloodGroup `json:"bloodGroup"`
	Available  int               `json:"available"`
	Reserved   int               `json:"reserved"`
	Consumed   int               `json:"consumed"`
}

// InventoryStore mutates per-(hospital, group) pools atomically.
// Reserve moves available -> reserved and fails with InsufficientInventory;
// Release moves reserved -> available; Consume moves reserved -> consumed;
// Receive adds newly arrived units to available.
type InventoryStore interface {
	Reserve(ctx context.Context, hospitalID string, group domain.BloodGroup, units int) error
	Release(ctx context.Context, hospitalID string, group domain.BloodGroup, units int) error
	Consume(ctx context.Context, hospitalID string, group domain.BloodGroup, units int) error
	Receive(ctx context.Context, hospitalID string, group domain.BloodGroup, units int) error
	Available(ctx context.Context, hospitalID string, group domain.BloodGroup) (int, error)
	Level(ctx context.Context, hospitalID string, group domain.BloodGroup) (InventoryLevel, error)
}

// HospitalDirectory lists partner hospitals.
type HospitalDirectory interface {
	GetHospital(ctx context.Context, id string) (domain.Hospital, error)
	ListHospitals(ctx context.Context) ([]domain.Hospital, error)
}

// Locator resolves a hospital to coordinates; addresses are never resolved here.
type Locator interface {
	Locate(ctx context.Context, hospitalID string) (domain.Location, error)
}
