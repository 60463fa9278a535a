package lifecycle

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/zoobzio/clockz"

	"bloodlink/internal/adapters/memory"
	"bloodlink/internal/domain"
	"bloodlink/internal/ports"
	"bloodlink/internal/services/matching"
	"bloodlink/internal/services/trust"
)

const requester = "REQ"

type notification struct {
	Hospitals []string
	Summary   ports.RequestSummary
	Tier      ports.Tier
}

type recordingNotifier struct {
	mu    sync.Mutex
	calls []notification
}

func (n *recordingNotifier) Notify(_ context.Context, hospitals []string, summary ports.RequestSummary, tier ports.Tier) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls = append(n.calls, notification{Hospitals: append([]string(nil), hospitals...), Summary: summary, Tier: tier})
	return nil
}

func (n *recordingNotifier) Calls() []notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]notification(nil), n.calls...)
}

type recordingSink struct {
	mu     sync.Mutex
	events []ports.AuditEvent
}

func (s *recordingSink) Emit(_ context.Context, ev ports.AuditEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
	return nil
}

func (s *recordingSink) Events(requestID string) []ports.AuditEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []ports.AuditEvent
	for _, ev := range s.events {
		if ev.RequestID == requestID {
			out = append(out, ev)
		}
	}
	return out
}

type fixture struct {
	ctx      context.Context
	svc      *Service
	store    *memory.Store
	clock    *clockz.FakeClock
	trust    *trust.Service
	notifier *recordingNotifier
	sink     *recordingSink
}

// newFixture registers the requesting hospital at the origin and twelve
// partners P01..P12 spaced about 1.1 km apart northwards, each holding ten
// units of O-. With equal trust and stock they rank in id order.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.New()
	clock := clockz.NewFakeClock()
	store.PutHospital(domain.Hospital{ID: requester, Name: "Requesting General"})
	for i := 1; i <= 12; i++ {
		id := partner(i)
		store.PutHospital(domain.Hospital{ID: id, Name: "Partner " + id, Location: domain.Location{Latitude: 0.01 * float64(i)}})
		store.SetStock(id, domain.GroupONeg, 10)
	}
	tr := trust.New(store, clock)
	f := &fixture{
		ctx:      context.Background(),
		store:    store,
		clock:    clock,
		trust:    tr,
		notifier: &recordingNotifier{},
		sink:     &recordingSink{},
	}
	f.wire(store, store)
	return f
}

func (f *fixture) wire(requests ports.RequestRepository, transfers ports.TransferRepository) {
	f.svc = New(Deps{
		Requests:  requests,
		Transfers: transfers,
		Inventory: f.store,
		Hospitals: f.store,
		Matcher:   matching.New(f.store, f.store, f.store, f.trust),
		Trust:     f.trust,
		Notifier:  f.notifier,
		Audit:     f.sink,
		Clock:     f.clock,
	})
}

// flakyStore wraps the memory store and fails request or transfer saves
// while an error is set.
type flakyStore struct {
	*memory.Store
	mu          sync.Mutex
	requestErr  error
	transferErr error
}

func (s *flakyStore) failRequests(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requestErr = err
}

func (s *flakyStore) failTransfers(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transferErr = err
}

func (s *flakyStore) UpdateRequest(ctx context.Context, r *domain.EmergencyRequest) error {
	s.mu.Lock()
	err := s.requestErr
	s.mu.Unlock()
	if err != nil {
		return err
	}
	return s.Store.UpdateRequest(ctx, r)
}

func (s *flakyStore) UpdateTransfer(ctx context.Context, t *domain.BloodTransfer) error {
	s.mu.Lock()
	err := s.transferErr
	s.mu.Unlock()
	if err != nil {
		return err
	}
	return s.Store.UpdateTransfer(ctx, t)
}

// flaky rewires the service onto a flakyStore over the same data.
func (f *fixture) flaky() *flakyStore {
	fs := &flakyStore{Store: f.store}
	f.wire(fs, fs)
	return fs
}

func goodChecklist() domain.DeliveryChecklist {
	return domain.DeliveryChecklist{
		PackagingIntact:       true,
		SealsIntact:           true,
		LabelsMatch:           true,
		DocumentationComplete: true,
		Rating:                5,
	}
}

func partner(i int) string { return fmt.Sprintf("P%02d", i) }

func (f *fixture) demand() domain.Demand {
	return domain.Demand{
		HospitalID:    requester,
		BloodGroup:    domain.GroupONeg,
		UnitsRequired: 3,
		Severity:      domain.SeverityCritical,
		Patient: domain.PatientContext{
			Age:        40,
			Diagnosis:  "post-partum haemorrhage",
			RequiredBy: f.clock.Now().Add(2 * time.Hour),
		},
		Actor: "dr.okafor",
	}
}

func (f *fixture) create(t *testing.T) *domain.EmergencyRequest {
	t.Helper()
	r, err := f.svc.Create(f.ctx, f.demand())
	require.NoError(t, err)
	return r
}

func (f *fixture) accepted(t *testing.T, hospitalID string) *domain.EmergencyRequest {
	t.Helper()
	r := f.create(t)
	r, err := f.svc.Accept(f.ctx, r.ID, hospitalID, 3, 30)
	require.NoError(t, err)
	return r
}

func (f *fixture) level(t *testing.T, hospitalID string) ports.InventoryLevel {
	t.Helper()
	lvl, err := f.store.Level(f.ctx, hospitalID, domain.GroupONeg)
	require.NoError(t, err)
	return lvl
}

func (f *fixture) ledger(t *testing.T, hospitalID string) domain.TrustLedger {
	t.Helper()
	l, err := f.trust.Ledger(f.ctx, hospitalID)
	require.NoError(t, err)
	return l
}

func actions(r *domain.EmergencyRequest) []string {
	out := make([]string, len(r.History))
	for i, e := range r.History {
		out[i] = e.Action
	}
	return out
}
