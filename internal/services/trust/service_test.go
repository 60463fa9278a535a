package trust

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zoobzio/clockz"

	"bloodlink/internal/adapters/memory"
	"bloodlink/internal/domain"
)

func TestRecordOutcomeCreatesLedgerLazily(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	clock := clockz.NewFakeClock()
	svc := New(store, clock)

	_, found, err := store.GetLedger(ctx, "H9")
	require.NoError(t, err)
	assert.False(t, found)

	l, err := svc.RecordOutcome(ctx, "H9", domain.Outcome{Kind: domain.OutcomeAccepted, LatencyMinutes: 2})
	require.NoError(t, err)
	assert.Equal(t, 1, l.Counters.Accepted)
	assert.Equal(t, clock.Now(), l.UpdatedAt)
	assert.Equal(t, Compute(l.Counters), l.Scores)

	stored, found, err := store.GetLedger(ctx, "H9")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, l, stored)
}

func TestLedgerDefaultsForUnknownHospital(t *testing.T) {
	svc := New(memory.New(), nil)
	l, err := svc.Ledger(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultReputation, l.Scores.Overall)
}

func TestRecordOutcomeRequiresHospital(t *testing.T) {
	svc := New(memory.New(), nil)
	_, err := svc.RecordOutcome(context.Background(), "", domain.Outcome{Kind: domain.OutcomeAccepted})
	assert.True(t, errors.Is(err, domain.ErrValidation))
}
