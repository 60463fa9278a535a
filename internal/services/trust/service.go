package trust

import (
	"context"
	"fmt"
	"sync"

	"github.com/zoobzio/clockz"

	"bloodlink/internal/domain"
	"bloodlink/internal/ports"
)

// Service owns every counter mutation. Callers outside the lifecycle manager
// only read ledgers.
type Service struct {
	repo  ports.LedgerRepository
	clock clockz.Clock
	mu    sync.Mutex
}

func New(repo ports.LedgerRepository, clock clockz.Clock) *Service {
	if clock == nil {
		clock = clockz.RealClock
	}
	return &Service{repo: repo, clock: clock}
}

// NewLedger is the lazily created default for a hospital with no history.
func NewLedger(hospitalID string) domain.TrustLedger {
	l := domain.TrustLedger{HospitalID: hospitalID}
	l.Scores = Compute(l.Counters)
	return l
}

// Ledger returns the stored ledger or a default one; it never fails for unknown hospitals.
func (s *Service) Ledger(ctx context.Context, hospitalID string) (domain.TrustLedger, error) {
	l, found, err := s.repo.GetLedger(ctx, hospitalID)
	if err != nil {
		return domain.TrustLedger{}, fmt.Errorf("load ledger %s: %w", hospitalID, err)
	}
	if !found {
		return NewLedger(hospitalID), nil
	}
	return l, nil
}

// RecordOutcome applies the event and recomputes all scores from the full counter state.
func (s *Service) RecordOutcome(ctx context.Context, hospitalID string, o domain.Outcome) (domain.TrustLedger, error) {
	if hospitalID == "" {
		return domain.TrustLedger{}, domain.Validationf("hospital id is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	l, err := s.Ledger(ctx, hospitalID)
	if err != nil {
		return domain.TrustLedger{}, err
	}
	l.Counters = Apply(l.Counters, o)
	l.Scores = Compute(l.Counters)
	l.UpdatedAt = s.clock.Now()
	if err := s.repo.SaveLedger(ctx, l); err != nil {
		return domain.TrustLedger{}, fmt.Errorf("save ledger %s: %w", hospitalID, err)
	}
	return l, nil
}
