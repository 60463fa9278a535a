package lifecycle

import (
	"context"
	"log"
	"sync"

	"github.com/google/uuid"
	"github.com/zoobzio/clockz"

	"bloodlink/internal/domain"
	"bloodlink/internal/ports"
)

// DefaultAuthorityID receives the level-3 authority alert when none is configured.
const DefaultAuthorityID = "regional-blood-authority"

// Matcher ranks candidate hospitals for a request.
type Matcher interface {
	FindCandidates(ctx context.Context, req *domain.EmergencyRequest) ([]domain.Candidate, error)
}

// TrustRecorder is the write side of the trust ledger.
type TrustRecorder interface {
	RecordOutcome(ctx context.Context, hospitalID string, o domain.Outcome) (domain.TrustLedger, error)
}

// Deps wires the lifecycle manager to its collaborators. Notifier, Audit and
// Clock are optional.
type Deps struct {
	Requests    ports.RequestRepository
	Transfers   ports.TransferRepository
	Inventory   ports.InventoryStore
	Hospitals   ports.HospitalDirectory
	Matcher     Matcher
	Trust       TrustRecorder
	Notifier    ports.Notifier
	Audit       ports.AuditSink
	Clock       clockz.Clock
	AuthorityID string
}

// Service owns emergency requests and their transfers. Every transition on a
// request is serialized per request id and appends exactly one audit entry.
type Service struct {
	requests    ports.RequestRepository
	transfers   ports.TransferRepository
	inventory   ports.InventoryStore
	hospitals   ports.HospitalDirectory
	matcher     Matcher
	trust       TrustRecorder
	notifier    ports.Notifier
	audit       ports.AuditSink
	clock       clockz.Clock
	authorityID string

	locks keyedMutex
}

func New(d Deps) *Service {
	s := &Service{
		requests:    d.Requests,
		transfers:   d.Transfers,
		inventory:   d.Inventory,
		hospitals:   d.Hospitals,
		matcher:     d.Matcher,
		trust:       d.Trust,
		notifier:    d.Notifier,
		audit:       d.Audit,
		clock:       d.Clock,
		authorityID: d.AuthorityID,
	}
	if s.clock == nil {
		s.clock = clockz.RealClock
	}
	if s.authorityID == "" {
		s.authorityID = DefaultAuthorityID
	}
	return s
}

// keyedMutex hands out one mutex per key and frees it when unused.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*refMutex
}

type refMutex struct {
	sync.Mutex
	refs int
}

func (k *keyedMutex) Lock(key string) (unlock func()) {
	k.mu.Lock()
	if k.locks == nil {
		k.locks = map[string]*refMutex{}
	}
	m, ok := k.locks[key]
	if !ok {
		m = &refMutex{}
		k.locks[key] = m
	}
	m.refs++
	k.mu.Unlock()

	m.Lock()
	return func() {
		m.Unlock()
		k.mu.Lock()
		m.refs--
		if m.refs == 0 {
			delete(k.locks, key)
		}
		k.mu.Unlock()
	}
}

// mutate loads the request under its lock, applies fn and persists the result.
// Audit entries appended by fn are emitted after a successful save.
func (s *Service) mutate(ctx context.Context, id string, fn func(r *domain.EmergencyRequest) error) (*domain.EmergencyRequest, error) {
	unlock := s.locks.Lock(id)
	defer unlock()
	return s.mutateLocked(ctx, id, fn)
}

func (s *Service) mutateLocked(ctx context.Context, id string, fn func(r *domain.EmergencyRequest) error) (*domain.EmergencyRequest, error) {
	r, err := s.requests.GetRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	seen := len(r.History)
	if err := fn(r); err != nil {
		return nil, err
	}
	if err := s.requests.UpdateRequest(ctx, r); err != nil {
		return nil, err
	}
	s.emit(ctx, r, r.History[seen:])
	return r, nil
}

func (s *Service) emit(ctx context.Context, r *domain.EmergencyRequest, entries []domain.AuditEntry) {
	if s.audit == nil {
		return
	}
	for _, e := range entries {
		ev := ports.AuditEvent{
			ID:        uuid.NewString(),
			At:        e.At,
			RequestID: r.ID,
			Action:    e.Action,
			Actor:     e.Actor,
			OldStatus: e.OldStatus,
			NewStatus: e.NewStatus,
			Level:     r.EscalationLevel,
			Note:      e.Note,
		}
		if err := s.audit.Emit(ctx, ev); err != nil {
			log.Printf("audit: request %s action %s: %v", r.ID, e.Action, err)
		}
	}
}

// record applies a trust outcome; ledger failures never undo a transition.
func (s *Service) record(ctx context.Context, hospitalID string, o domain.Outcome) {
	if s.trust == nil || hospitalID == "" {
		return
	}
	if _, err := s.trust.RecordOutcome(ctx, hospitalID, o); err != nil {
		log.Printf("trust: hospital %s outcome %s: %v", hospitalID, o.Kind, err)
	}
}

func summarize(r *domain.EmergencyRequest) ports.RequestSummary {
	return ports.RequestSummary{
		RequestID:     r.ID,
		HospitalID:    r.HospitalID,
		BloodGroup:    r.BloodGroup,
		UnitsRequired: r.UnitsRequired,
		Severity:      r.Severity,
		UrgencyScore:  r.UrgencyScore,
		RequiredBy:    r.Patient.RequiredBy,
	}
}

func actorOr(actor, def string) string {
	if actor == "" {
		return def
	}
	return actor
}
