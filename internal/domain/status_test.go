package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allStatuses = []Status{
	StatusCreated, StatusMedicalVerificationPending, StatusPartnerSearch, StatusPartnerAccepted,
	StatusDispatched, StatusInTransit, StatusDelivered, StatusCompleted, StatusCancelled, StatusFailed,
}

func TestTransitionTable(t *testing.T) {
	legal := map[[2]Status]bool{
		{StatusCreated, StatusMedicalVerificationPending}:         true,
		{StatusCreated, StatusPartnerAccepted}:                    true,
		{StatusMedicalVerificationPending, StatusPartnerSearch}:   true,
		{StatusMedicalVerificationPending, StatusPartnerAccepted}: true,
		{StatusPartnerSearch, StatusPartnerAccepted}:              true,
		{StatusPartnerAccepted, StatusDispatched}:                 true,
		{StatusDispatched, StatusInTransit}:                       true,
		{StatusDispatched, StatusDelivered}:                       true,
		{StatusInTransit, StatusDelivered}:                        true,
		{StatusDelivered, StatusCompleted}:                        true,
	}
	for _, from := range allStatuses {
		for _, to := range allStatuses {
			want := legal[[2]Status{from, to}]
			if !from.Terminal() && (to == StatusCancelled || to == StatusFailed) {
				want = true
			}
			assert.Equal(t, want, CanTransition(from, to), "%s -> %s", from, to)
		}
	}
}

func TestCheckTransitionError(t *testing.T) {
	err := CheckTransition(StatusDelivered, StatusPartnerAccepted)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidTransition))
	assert.False(t, errors.Is(err, ErrNotFound))

	var e *Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, StatusDelivered, e.From)
	assert.Equal(t, StatusPartnerAccepted, e.To)
}

func TestTerminalStatesAreClosed(t *testing.T) {
	for _, s := range []Status{StatusCompleted, StatusCancelled, StatusFailed} {
		assert.True(t, s.Terminal())
		assert.False(t, s.Escalatable())
		for _, to := range allStatuses {
			assert.False(t, CanTransition(s, to), "%s -> %s", s, to)
		}
	}
}

func TestLockStates(t *testing.T) {
	for _, s := range allStatuses {
		want := s == StatusPartnerAccepted || s == StatusDispatched || s == StatusInTransit
		assert.Equal(t, want, s.HoldsLock(), string(s))
	}
}

func TestParse(t *testing.T) {
	g, err := ParseBloodGroup(" o- ")
	require.NoError(t, err)
	assert.Equal(t, GroupONeg, g)
	assert.True(t, g.RhNegative())

	_, err = ParseBloodGroup("C+")
	assert.True(t, errors.Is(err, ErrValidation))

	_, err = ParseStatus("SHIPPED")
	assert.Equal(t, KindValidation, KindOf(err))
}
