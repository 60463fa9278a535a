// Package memory keeps every storage port in process. It is the default
// runtime store when no database is configured and the store used by tests.
// Values are cloned on the way in and out so callers never alias stored state.
package memory

import (
	"context"
	"sort"
	"sync"

	"bloodlink/internal/domain"
	"bloodlink/internal/ports"
)

type Store struct {
	mu        sync.RWMutex
	requests  map[string]*domain.EmergencyRequest
	transfers map[string]*domain.BloodTransfer
	ledgers   map[string]domain.TrustLedger
	hospitals map[string]domain.Hospital

	invMu     sync.Mutex
	inventory map[poolKey]*ports.InventoryLevel
}

type poolKey struct {
	hospital string
	group    domain.BloodGroup
}

func New() *Store {
	return &Store{
		requests:  map[string]*domain.EmergencyRequest{},
		transfers: map[string]*domain.BloodTransfer{},
		ledgers:   map[string]domain.TrustLedger{},
		hospitals: map[string]domain.Hospital{},
		inventory: map[poolKey]*ports.InventoryLevel{},
	}
}

// Requests

func (s *Store) CreateRequest(_ context.Context, req *domain.EmergencyRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.requests[req.ID]; ok {
		return domain.Validationf("request %s already exists", req.ID)
	}
	req.Version = 1
	s.requests[req.ID] = req.Clone()
	return nil
}

func (s *Store) GetRequest(_ context.Context, id string) (*domain.EmergencyRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.requests[id]
	if !ok {
		return nil, domain.NotFoundf("request %s not found", id)
	}
	return r.Clone(), nil
}

func (s *Store) UpdateRequest(_ context.Context, req *domain.EmergencyRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.requests[req.ID]
	if !ok {
		return domain.NotFoundf("request %s not found", req.ID)
	}
	if cur.Version != req.Version {
		return domain.ConcurrentModificationf("request %s was modified (version %d, have %d)", req.ID, cur.Version, req.Version)
	}
	req.Version++
	s.requests[req.ID] = req.Clone()
	return nil
}

func (s *Store) ListRequests(_ context.Context, f domain.RequestFilter) ([]*domain.EmergencyRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []*domain.EmergencyRequest{}
	for _, r := range s.requests {
		if f.Match(r) {
			out = append(out, r.Clone())
		}
	}
	sortByCreation(out)
	return out, nil
}

func (s *Store) ListEscalatable(_ context.Context, maxLevel int) ([]*domain.EmergencyRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []*domain.EmergencyRequest{}
	for _, r := range s.requests {
		if r.Status.Escalatable() && r.EscalationLevel < maxLevel {
			out = append(out, r.Clone())
		}
	}
	sortByCreation(out)
	return out, nil
}

func sortByCreation(rs []*domain.EmergencyRequest) {
	sort.Slice(rs, func(i, j int) bool {
		if !rs[i].CreatedAt.Equal(rs[j].CreatedAt) {
			return rs[i].CreatedAt.Before(rs[j].CreatedAt)
		}
		return rs[i].ID < rs[j].ID
	})
}

// Transfers

func (s *Store) CreateTransfer(_ context.Context, t *domain.BloodTransfer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.transfers[t.ID]; ok {
		return domain.Validationf("transfer %s already exists", t.ID)
	}
	t.Version = 1
	s.transfers[t.ID] = t.Clone()
	return nil
}

func (s *Store) GetTransfer(_ context.Context, id string) (*domain.BloodTransfer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.transfers[id]
	if !ok {
		return nil, domain.NotFoundf("transfer %s not found", id)
	}
	return t.Clone(), nil
}

func (s *Store) UpdateTransfer(_ context.Context, t *domain.BloodTransfer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.transfers[t.ID]
	if !ok {
		return domain.NotFoundf("transfer %s not found", t.ID)
	}
	if cur.Version != t.Version {
		return domain.ConcurrentModificationf("transfer %s was modified", t.ID)
	}
	t.Version++
	s.transfers[t.ID] = t.Clone()
	return nil
}

// Ledgers

func (s *Store) GetLedger(_ context.Context, hospitalID string) (domain.TrustLedger, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	l, ok := s.ledgers[hospitalID]
	return l, ok, nil
}

func (s *Store) SaveLedger(_ context.Context, l domain.TrustLedger) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ledgers[l.HospitalID] = l
	return nil
}

// Hospitals

// PutHospital registers or replaces a hospital.
func (s *Store) PutHospital(h domain.Hospital) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hospitals[h.ID] = h
}

func (s *Store) GetHospital(_ context.Context, id string) (domain.Hospital, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	h, ok := s.hospitals[id]
	if !ok {
		return domain.Hospital{}, domain.NotFoundf("hospital %s not found", id)
	}
	return h, nil
}

func (s *Store) ListHospitals(_ context.Context) ([]domain.Hospital, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Hospital, 0, len(s.hospitals))
	for _, h := range s.hospitals {
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) Locate(ctx context.Context, hospitalID string) (domain.Location, error) {
	h, err := s.GetHospital(ctx, hospitalID)
	if err != nil {
		return domain.Location{}, err
	}
	return h.Location, nil
}
