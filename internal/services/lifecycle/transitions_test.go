package lifecycle

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bloodlink/internal/domain"
)

func TestCreate(t *testing.T) {
	f := newFixture(t)
	r := f.create(t)

	assert.NotEmpty(t, r.ID)
	assert.Equal(t, domain.StatusCreated, r.Status)
	assert.Equal(t, int64(1), r.Version)
	assert.Zero(t, r.EscalationLevel)
	// critical 60, due within 3h 15, three units 5, Rh negative 5
	assert.Equal(t, 85, r.UrgencyScore)
	require.Len(t, r.Candidates, 12)
	assert.Equal(t, partner(1), r.Candidates[0].HospitalID)
	assert.Equal(t, []string{domain.ActionCreated}, actions(r))
	assert.Equal(t, "dr.okafor", r.History[0].Actor)
	assert.Len(t, f.sink.Events(r.ID), 1)

	got, err := f.svc.Get(f.ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, r.ID, got.ID)
}

func TestCreateRejectsBadDemand(t *testing.T) {
	f := newFixture(t)

	d := f.demand()
	d.UnitsRequired = 0
	_, err := f.svc.Create(f.ctx, d)
	assert.ErrorIs(t, err, domain.ErrValidation)

	d = f.demand()
	d.BloodGroup = "C+"
	_, err = f.svc.Create(f.ctx, d)
	assert.ErrorIs(t, err, domain.ErrValidation)

	d = f.demand()
	d.HospitalID = "GHOST"
	_, err = f.svc.Create(f.ctx, d)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	all, err := f.svc.List(f.ctx, domain.RequestFilter{})
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestInvalidTransitionLeavesRequestUnchanged(t *testing.T) {
	f := newFixture(t)
	r := f.create(t)

	_, err := f.svc.Complete(f.ctx, r.ID, "ops")
	require.ErrorIs(t, err, domain.ErrInvalidTransition)
	var derr *domain.Error
	require.True(t, errors.As(err, &derr))
	assert.Equal(t, domain.StatusCreated, derr.From)
	assert.Equal(t, domain.StatusCompleted, derr.To)

	got, err := f.svc.Get(f.ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCreated, got.Status)
	assert.Len(t, got.History, 1)
	assert.Equal(t, r.Version, got.Version)
}

func TestVerificationPath(t *testing.T) {
	f := newFixture(t)
	r := f.create(t)

	r, err := f.svc.SubmitForVerification(f.ctx, r.ID, "dr.okafor")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusMedicalVerificationPending, r.Status)

	r, err = f.svc.Verify(f.ctx, r.ID, "haematologist")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPartnerSearch, r.Status)

	_, err = f.svc.SubmitForVerification(f.ctx, r.ID, "dr.okafor")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestAcceptInsufficientInventory(t *testing.T) {
	f := newFixture(t)
	f.store.SetStock(partner(1), domain.GroupONeg, 2)
	r := f.create(t)

	_, err := f.svc.Accept(f.ctx, r.ID, partner(1), 3, 20)
	require.ErrorIs(t, err, domain.ErrInsufficientInventory)
	var derr *domain.Error
	require.True(t, errors.As(err, &derr))
	assert.Equal(t, 2, derr.Available)
	assert.Equal(t, 3, derr.Required)

	got, err := f.svc.Get(f.ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCreated, got.Status)
	assert.Nil(t, got.Lock)
	assert.Equal(t, 2, f.level(t, partner(1)).Available)
}

func TestAcceptValidation(t *testing.T) {
	f := newFixture(t)
	r := f.create(t)

	_, err := f.svc.Accept(f.ctx, r.ID, requester, 3, 20)
	assert.ErrorIs(t, err, domain.ErrValidation)
	_, err = f.svc.Accept(f.ctx, r.ID, partner(1), 4, 20)
	assert.ErrorIs(t, err, domain.ErrValidation)
	_, err = f.svc.Accept(f.ctx, r.ID, partner(1), 3, 0)
	assert.ErrorIs(t, err, domain.ErrValidation)
	_, err = f.svc.Accept(f.ctx, "missing", partner(1), 3, 20)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.Equal(t, 10, f.level(t, partner(1)).Available)
}

func TestConcurrentAcceptHasOneWinner(t *testing.T) {
	f := newFixture(t)
	r := f.create(t)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.svc.Accept(f.ctx, r.ID, partner(i+1), 3, 15)
		}(i)
	}
	wg.Wait()

	winners := 0
	for _, err := range errs {
		if err == nil {
			winners++
			continue
		}
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	}
	assert.Equal(t, 1, winners)

	got, err := f.svc.Get(f.ctx, r.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Lock)
	reserved := f.level(t, partner(1)).Reserved + f.level(t, partner(2)).Reserved
	assert.Equal(t, 3, reserved)
	assert.Equal(t, 17, f.level(t, partner(1)).Available+f.level(t, partner(2)).Available)
}

func TestCancelReturnsReservedUnits(t *testing.T) {
	f := newFixture(t)
	r := f.accepted(t, partner(1))
	assert.Equal(t, 7, f.level(t, partner(1)).Available)

	r, err := f.svc.Cancel(f.ctx, r.ID, "dr.okafor", "patient stabilised")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, r.Status)
	assert.Nil(t, r.Lock)

	lvl := f.level(t, partner(1))
	assert.Equal(t, 10, lvl.Available)
	assert.Zero(t, lvl.Reserved)

	_, err = f.svc.Cancel(f.ctx, r.ID, "dr.okafor", "again")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestCancelAfterDispatchReleasesAndFailsTransfer(t *testing.T) {
	f := newFixture(t)
	r := f.accepted(t, partner(1))
	tr, err := f.svc.Dispatch(f.ctx, r.ID, domain.TransportInfo{Vehicle: "AMB-7", Driver: "K. Mensah"})
	require.NoError(t, err)

	_, err = f.svc.Cancel(f.ctx, r.ID, "ops", "recalled")
	require.NoError(t, err)
	assert.Equal(t, 10, f.level(t, partner(1)).Available)

	tr, err = f.svc.GetTransfer(f.ctx, tr.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TransferFailed, tr.Status)
}

func TestFailBeforeDispatchReleases(t *testing.T) {
	f := newFixture(t)
	r := f.accepted(t, partner(1))

	r, err := f.svc.Fail(f.ctx, r.ID, "ops", "partner withdrew")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusFailed, r.Status)
	assert.Equal(t, 10, f.level(t, partner(1)).Available)
	assert.Zero(t, f.ledger(t, partner(1)).Counters.Failed)
}

func TestFailAfterDispatchConsumes(t *testing.T) {
	f := newFixture(t)
	r := f.accepted(t, partner(1))
	tr, err := f.svc.Dispatch(f.ctx, r.ID, domain.TransportInfo{Vehicle: "AMB-7"})
	require.NoError(t, err)

	r, err = f.svc.Fail(f.ctx, r.ID, "ops", "vehicle collision")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusFailed, r.Status)

	lvl := f.level(t, partner(1))
	assert.Equal(t, 7, lvl.Available)
	assert.Zero(t, lvl.Reserved)
	assert.Equal(t, 3, lvl.Consumed)
	assert.Equal(t, 1, f.ledger(t, partner(1)).Counters.Failed)

	tr, err = f.svc.GetTransfer(f.ctx, tr.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TransferFailed, tr.Status)
	assert.Equal(t, "vehicle collision", tr.FailureReason)

	_, err = f.svc.UpdateTransferLocation(f.ctx, tr.ID, domain.Location{Latitude: 0.005}, f.clock.Now())
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestDecline(t *testing.T) {
	f := newFixture(t)
	r := f.create(t)

	r, err := f.svc.Decline(f.ctx, r.ID, partner(2), "no O- on shelf")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCreated, r.Status)
	require.Len(t, r.Declines, 1)
	assert.Equal(t, []string{domain.ActionCreated, domain.ActionDeclined}, actions(r))

	again, err := f.svc.Decline(f.ctx, r.ID, partner(2), "still none")
	require.NoError(t, err)
	assert.Len(t, again.Declines, 1)
	assert.Len(t, again.History, 2)
	assert.Equal(t, 1, f.ledger(t, partner(2)).Counters.Declined)

	cs, err := f.svc.Candidates(f.ctx, r.ID)
	require.NoError(t, err)
	assert.Len(t, cs, 11)
	for _, c := range cs {
		assert.NotEqual(t, partner(2), c.HospitalID)
	}

	_, err = f.svc.Decline(f.ctx, r.ID, requester, "")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestDeclineAfterAcceptance(t *testing.T) {
	f := newFixture(t)
	r := f.accepted(t, partner(1))
	_, err := f.svc.Decline(f.ctx, r.ID, partner(2), "late")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestListFilters(t *testing.T) {
	f := newFixture(t)
	a := f.create(t)
	d := f.demand()
	d.Severity = domain.SeverityModerate
	_, err := f.svc.Create(f.ctx, d)
	require.NoError(t, err)
	_, err = f.svc.Cancel(f.ctx, a.ID, "ops", "")
	require.NoError(t, err)

	got, err := f.svc.List(f.ctx, domain.RequestFilter{Status: domain.StatusCancelled})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, a.ID, got[0].ID)

	got, err = f.svc.List(f.ctx, domain.RequestFilter{Severity: domain.SeverityModerate})
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
