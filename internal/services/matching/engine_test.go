package matching

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bloodlink/internal/adapters/memory"
	"bloodlink/internal/domain"
)

type stubTrust map[string]domain.TrustLedger

func (s stubTrust) Ledger(_ context.Context, id string) (domain.TrustLedger, error) {
	if l, ok := s[id]; ok {
		return l, nil
	}
	return domain.TrustLedger{HospitalID: id, Scores: domain.TrustScores{Overall: domain.DefaultReputation}}, nil
}

type stubLocator map[string]domain.Location

func (s stubLocator) Locate(_ context.Context, id string) (domain.Location, error) {
	if loc, ok := s[id]; ok {
		return loc, nil
	}
	return domain.Location{}, domain.NotFoundf("hospital %s has no coordinates", id)
}

func hospital(id string, lat float64) domain.Hospital {
	return domain.Hospital{ID: id, Name: id, Location: domain.Location{Latitude: lat}}
}

func newEngine(t *testing.T, trust stubTrust) (*Engine, *memory.Store) {
	t.Helper()
	store := memory.New()
	store.PutHospital(hospital("REQ", 0))
	return New(store, store, store, trust), store
}

func request() *domain.EmergencyRequest {
	return &domain.EmergencyRequest{
		ID:            "r1",
		HospitalID:    "REQ",
		BloodGroup:    domain.GroupONeg,
		UnitsRequired: 3,
		Severity:      domain.SeverityCritical,
	}
}

func TestFindCandidatesExclusions(t *testing.T) {
	engine, store := newEngine(t, stubTrust{})
	store.SetStock("REQ", domain.GroupONeg, 50)

	store.PutHospital(hospital("NEAR", 0.036))
	store.SetStock("NEAR", domain.GroupONeg, 5)

	store.PutHospital(hospital("EMPTY", 0.036))
	store.SetStock("EMPTY", domain.GroupONeg, 0)

	store.PutHospital(hospital("OTHERGROUP", 0.036))
	store.SetStock("OTHERGROUP", domain.GroupAPos, 10)

	suspended := hospital("SUSPENDED", 0.036)
	suspended.Suspended = true
	store.PutHospital(suspended)
	store.SetStock("SUSPENDED", domain.GroupONeg, 10)

	store.PutHospital(hospital("DECLINER", 0.036))
	store.SetStock("DECLINER", domain.GroupONeg, 10)

	req := request()
	req.Declines = []domain.Decline{{HospitalID: "DECLINER"}}

	got, err := engine.FindCandidates(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "NEAR", got[0].HospitalID)
	assert.Equal(t, 5, got[0].AvailableUnits)
	assert.InDelta(t, 4.0, got[0].DistanceKm, 0.01)
}

func TestFindCandidatesOrdering(t *testing.T) {
	trust := stubTrust{
		"TRUSTED": {Scores: domain.TrustScores{Overall: 95}},
	}
	engine, store := newEngine(t, trust)
	for id, lat := range map[string]float64{"FAR": 0.3, "TRUSTED": 0.08, "B": 0.08, "A": 0.08} {
		store.PutHospital(hospital(id, lat))
		store.SetStock(id, domain.GroupONeg, 6)
	}

	got, err := engine.FindCandidates(context.Background(), request())
	require.NoError(t, err)
	ids := make([]string, len(got))
	for i, c := range got {
		ids[i] = c.HospitalID
	}
	assert.Equal(t, []string{"TRUSTED", "A", "B", "FAR"}, ids)

	again, err := engine.FindCandidates(context.Background(), request())
	require.NoError(t, err)
	assert.Equal(t, got, again)
}

func TestFindCandidatesUnknownRequester(t *testing.T) {
	engine, _ := newEngine(t, stubTrust{})
	req := request()
	req.HospitalID = "GHOST"
	_, err := engine.FindCandidates(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRankTieBreak(t *testing.T) {
	cs := []domain.Candidate{
		{HospitalID: "c", Score: 70, DistanceKm: 5},
		{HospitalID: "b", Score: 70, DistanceKm: 3},
		{HospitalID: "a", Score: 70, DistanceKm: 5},
		{HospitalID: "d", Score: 90, DistanceKm: 40},
	}
	Rank(cs)
	assert.Equal(t, "d", cs[0].HospitalID)
	assert.Equal(t, "b", cs[1].HospitalID)
	assert.Equal(t, "a", cs[2].HospitalID)
	assert.Equal(t, "c", cs[3].HospitalID)
}

func TestFindCandidatesTakesCoordinatesFromLocator(t *testing.T) {
	store := memory.New()
	store.PutHospital(hospital("REQ", 0))
	store.PutHospital(hospital("MOVED", 0.036))
	store.SetStock("MOVED", domain.GroupONeg, 5)
	store.PutHospital(hospital("UNPLACED", 0.036))
	store.SetStock("UNPLACED", domain.GroupONeg, 5)

	locator := stubLocator{
		"REQ":   {},
		"MOVED": {Latitude: 0.3},
	}
	engine := New(store, locator, store, stubTrust{})

	got, err := engine.FindCandidates(context.Background(), request())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "MOVED", got[0].HospitalID)
	assert.InDelta(t, 33.36, got[0].DistanceKm, 0.05)

	_, err = New(store, stubLocator{}, store, stubTrust{}).FindCandidates(context.Background(), request())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
