package memory

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bloodlink/internal/domain"
)

func TestRequestVersioning(t *testing.T) {
	ctx := context.Background()
	s := New()
	req := &domain.EmergencyRequest{ID: "r1", Status: domain.StatusCreated, CreatedAt: time.Unix(100, 0)}
	require.NoError(t, s.CreateRequest(ctx, req))
	assert.ErrorIs(t, s.CreateRequest(ctx, req), domain.ErrValidation)

	a, err := s.GetRequest(ctx, "r1")
	require.NoError(t, err)
	b, err := s.GetRequest(ctx, "r1")
	require.NoError(t, err)

	a.Status = domain.StatusPartnerSearch
	require.NoError(t, s.UpdateRequest(ctx, a))
	assert.Equal(t, int64(2), a.Version)

	b.Status = domain.StatusCancelled
	assert.ErrorIs(t, s.UpdateRequest(ctx, b), domain.ErrConcurrentModification)

	got, err := s.GetRequest(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPartnerSearch, got.Status)
}

func TestReadsDoNotAlias(t *testing.T) {
	ctx := context.Background()
	s := New()
	require.NoError(t, s.CreateRequest(ctx, &domain.EmergencyRequest{ID: "r1", Status: domain.StatusCreated}))

	r, err := s.GetRequest(ctx, "r1")
	require.NoError(t, err)
	r.History = append(r.History, domain.AuditEntry{Action: "X"})

	again, err := s.GetRequest(ctx, "r1")
	require.NoError(t, err)
	assert.Empty(t, again.History)
}

func TestListEscalatable(t *testing.T) {
	ctx := context.Background()
	s := New()
	base := time.Unix(1000, 0)
	for i, r := range []*domain.EmergencyRequest{
		{ID: "c", Status: domain.StatusCreated, CreatedAt: base.Add(2 * time.Minute)},
		{ID: "a", Status: domain.StatusMedicalVerificationPending, CreatedAt: base},
		{ID: "maxed", Status: domain.StatusCreated, EscalationLevel: 3, CreatedAt: base},
		{ID: "search", Status: domain.StatusPartnerSearch, CreatedAt: base},
		{ID: "done", Status: domain.StatusCancelled, CreatedAt: base},
	} {
		require.NoError(t, s.CreateRequest(ctx, r), "request %d", i)
	}
	got, err := s.ListEscalatable(ctx, 3)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "c", got[1].ID)
}

func TestLoadSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"hospitals":[
		{"id":"H1","name":"General","location":{"latitude":51.5,"longitude":-0.12},"stock":{"O-":4,"A+":9}},
		{"id":"H2","name":"St Mary","location":{"latitude":51.51,"longitude":-0.17},"suspended":true}
	]}`), 0o600))

	s := New()
	require.NoError(t, s.LoadSeed(path))

	hs, err := s.ListHospitals(context.Background())
	require.NoError(t, err)
	require.Len(t, hs, 2)
	assert.Equal(t, "General", hs[0].Name)
	assert.True(t, hs[1].Suspended)

	n, err := s.Available(context.Background(), "H1", domain.GroupONeg)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

func TestLoadSeedRejectsUnknownGroup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"hospitals":[{"id":"H1","stock":{"Z+":1}}]}`), 0o600))
	assert.Error(t, New().LoadSeed(path))
}
