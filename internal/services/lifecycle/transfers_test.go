package lifecycle

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bloodlink/internal/domain"
)

func TestFullDeliveryFlow(t *testing.T) {
	f := newFixture(t)
	r := f.create(t)

	r, err := f.svc.SubmitForVerification(f.ctx, r.ID, "dr.okafor")
	require.NoError(t, err)
	r, err = f.svc.Verify(f.ctx, r.ID, "haematologist")
	require.NoError(t, err)
	r, err = f.svc.Accept(f.ctx, r.ID, partner(1), 3, 30)
	require.NoError(t, err)
	require.NotNil(t, r.Lock)
	assert.Equal(t, 3, r.Lock.Units)
	assert.Equal(t, 3, f.level(t, partner(1)).Reserved)

	tr, err := f.svc.Dispatch(f.ctx, r.ID, domain.TransportInfo{Vehicle: "AMB-7", Driver: "K. Mensah", Contact: "+44 20 7946 0000"})
	require.NoError(t, err)
	assert.Equal(t, domain.TransferDispatched, tr.Status)
	assert.Equal(t, 3, tr.Units)
	assert.Equal(t, partner(1), tr.FromHospitalID)
	assert.Equal(t, requester, tr.ToHospitalID)
	assert.Equal(t, r.Acceptance.AcceptedAt.Add(30*time.Minute), tr.ExpectedArrival)

	_, err = f.svc.Dispatch(f.ctx, r.ID, domain.TransportInfo{Vehicle: "AMB-8"})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	f.clock.Advance(5 * time.Minute)
	tr, err = f.svc.UpdateTransferLocation(f.ctx, tr.ID, domain.Location{Latitude: 0.005}, f.clock.Now())
	require.NoError(t, err)
	assert.Equal(t, domain.TransferInTransit, tr.Status)
	tr, err = f.svc.LogTemperature(f.ctx, tr.ID, 4.2, f.clock.Now())
	require.NoError(t, err)
	require.Len(t, tr.Temperatures, 1)
	assert.True(t, tr.Temperatures[0].Compliant)

	got, err := f.svc.Get(f.ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInTransit, got.Status)

	f.clock.Advance(15 * time.Minute)
	r, err = f.svc.RecordDelivery(f.ctx, tr.ID, 2, domain.DeliveryChecklist{
		PackagingIntact:       true,
		SealsIntact:           true,
		LabelsMatch:           true,
		DocumentationComplete: true,
		Rating:                5,
		ReceivedBy:            "nurse.adeyemi",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDelivered, r.Status)
	assert.Nil(t, r.Lock)

	lender := f.level(t, partner(1))
	assert.Equal(t, 7, lender.Available)
	assert.Zero(t, lender.Reserved)
	assert.Equal(t, 3, lender.Consumed)
	assert.Equal(t, 2, f.level(t, requester).Available)

	tr, err = f.svc.GetTransfer(f.ctx, tr.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TransferDelivered, tr.Status)
	assert.Equal(t, 2, tr.UnitsReceived)
	require.NotNil(t, tr.Metrics)
	assert.True(t, tr.Metrics.OnTime)
	assert.Equal(t, 100.0, tr.Metrics.TemperatureCompliant)

	r, err = f.svc.Complete(f.ctx, r.ID, "dr.okafor")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, r.Status)

	r, err = f.svc.ReturnUnits(f.ctx, r.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, r.UnitsReturned)
	assert.Zero(t, f.level(t, requester).Available)
	assert.Equal(t, 9, f.level(t, partner(1)).Available)

	_, err = f.svc.ReturnUnits(f.ctx, r.ID, 1)
	assert.ErrorIs(t, err, domain.ErrValidation)

	assert.Equal(t, []string{
		domain.ActionCreated,
		domain.ActionVerificationSent,
		domain.ActionVerified,
		domain.ActionAccepted,
		domain.ActionDispatched,
		domain.ActionInTransit,
		domain.ActionDelivered,
		domain.ActionCompleted,
		domain.ActionUnitsReturned,
	}, actions(r))
	assert.Len(t, f.sink.Events(r.ID), len(r.History))

	lent := f.ledger(t, partner(1)).Counters
	assert.Equal(t, 1, lent.Accepted)
	assert.Equal(t, 1, lent.OnTime)
	assert.Equal(t, 3, lent.UnitsLent)
	assert.Equal(t, 2, lent.UnitsReceivedBack)
	assert.Equal(t, 1, lent.Ratings)

	borrowed := f.ledger(t, requester).Counters
	assert.Equal(t, 2, borrowed.UnitsBorrowed)
	assert.Equal(t, 2, borrowed.UnitsReturned)
}

func TestLateDeliveryWithColdChainBreach(t *testing.T) {
	f := newFixture(t)
	r := f.accepted(t, partner(1))
	tr, err := f.svc.Dispatch(f.ctx, r.ID, domain.TransportInfo{Vehicle: "AMB-7"})
	require.NoError(t, err)

	_, err = f.svc.LogTemperature(f.ctx, tr.ID, 4, f.clock.Now())
	require.NoError(t, err)
	f.clock.Advance(10 * time.Minute)
	tr, err = f.svc.LogTemperature(f.ctx, tr.ID, 9.5, f.clock.Now())
	require.NoError(t, err)
	assert.False(t, tr.Temperatures[1].Compliant)

	f.clock.Advance(32 * time.Minute)
	_, err = f.svc.RecordDelivery(f.ctx, tr.ID, 3, domain.DeliveryChecklist{PackagingIntact: true, Rating: 2})
	require.NoError(t, err)

	tr, err = f.svc.GetTransfer(f.ctx, tr.ID)
	require.NoError(t, err)
	assert.False(t, tr.Metrics.OnTime)
	assert.Equal(t, 12, tr.Metrics.DelayMinutes)
	assert.Equal(t, 50.0, tr.Metrics.TemperatureCompliant)

	c := f.ledger(t, partner(1)).Counters
	assert.Equal(t, 1, c.Delayed)
	assert.Equal(t, 2, c.TemperatureReadings)
	assert.Equal(t, 1, c.CompliantReadings)
	assert.Equal(t, 1, c.Issues)
}

func TestRecordDeliveryValidation(t *testing.T) {
	f := newFixture(t)
	r := f.accepted(t, partner(1))
	tr, err := f.svc.Dispatch(f.ctx, r.ID, domain.TransportInfo{Vehicle: "AMB-7"})
	require.NoError(t, err)

	_, err = f.svc.RecordDelivery(f.ctx, tr.ID, 4, domain.DeliveryChecklist{Rating: 4})
	assert.ErrorIs(t, err, domain.ErrValidation)
	_, err = f.svc.RecordDelivery(f.ctx, tr.ID, 3, domain.DeliveryChecklist{Rating: 0})
	assert.ErrorIs(t, err, domain.ErrValidation)
	_, err = f.svc.RecordDelivery(f.ctx, "missing", 3, domain.DeliveryChecklist{Rating: 4})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	got, err := f.svc.Get(f.ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDispatched, got.Status)
	assert.Equal(t, 3, f.level(t, partner(1)).Reserved)
}

func TestTrackPointsMustAdvance(t *testing.T) {
	f := newFixture(t)
	r := f.accepted(t, partner(1))
	tr, err := f.svc.Dispatch(f.ctx, r.ID, domain.TransportInfo{Vehicle: "AMB-7"})
	require.NoError(t, err)

	at := f.clock.Now()
	_, err = f.svc.UpdateTransferLocation(f.ctx, tr.ID, domain.Location{Latitude: 0.004}, at)
	require.NoError(t, err)
	_, err = f.svc.UpdateTransferLocation(f.ctx, tr.ID, domain.Location{Latitude: 0.003}, at)
	assert.ErrorIs(t, err, domain.ErrValidation)

	tr, err = f.svc.GetTransfer(f.ctx, tr.ID)
	require.NoError(t, err)
	assert.Len(t, tr.Track, 1)
}

func TestDispatchRequiresAcceptance(t *testing.T) {
	f := newFixture(t)
	r := f.create(t)
	_, err := f.svc.Dispatch(f.ctx, r.ID, domain.TransportInfo{Vehicle: "AMB-7"})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestReturnUnitsRequiresCompletion(t *testing.T) {
	f := newFixture(t)
	r := f.accepted(t, partner(1))
	_, err := f.svc.ReturnUnits(f.ctx, r.ID, 1)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	_, err = f.svc.ReturnUnits(f.ctx, r.ID, 0)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRecordDeliveryTransferSaveFails(t *testing.T) {
	f := newFixture(t)
	flaky := f.flaky()
	r := f.accepted(t, partner(1))
	tr, err := f.svc.Dispatch(f.ctx, r.ID, domain.TransportInfo{Vehicle: "AMB-7"})
	require.NoError(t, err)

	flaky.failTransfers(errors.New("disk full"))
	_, err = f.svc.RecordDelivery(f.ctx, tr.ID, 3, goodChecklist())
	require.Error(t, err)
	flaky.failTransfers(nil)

	got, err := f.svc.Get(f.ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDispatched, got.Status)
	assert.NotNil(t, got.Lock)

	tr, err = f.svc.GetTransfer(f.ctx, tr.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TransferDispatched, tr.Status)
	assert.Nil(t, tr.Metrics)
	assert.Equal(t, 3, f.level(t, partner(1)).Reserved)
	assert.Zero(t, f.level(t, requester).Available)
	assert.Zero(t, f.ledger(t, partner(1)).Counters.Deliveries)

	r, err = f.svc.RecordDelivery(f.ctx, tr.ID, 3, goodChecklist())
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDelivered, r.Status)
}

func TestRecordDeliveryRequestSaveFailsReopensTransfer(t *testing.T) {
	f := newFixture(t)
	flaky := f.flaky()
	r := f.accepted(t, partner(1))
	tr, err := f.svc.Dispatch(f.ctx, r.ID, domain.TransportInfo{Vehicle: "AMB-7"})
	require.NoError(t, err)

	flaky.failRequests(domain.ConcurrentModificationf("request %s was modified", r.ID))
	_, err = f.svc.RecordDelivery(f.ctx, tr.ID, 3, goodChecklist())
	assert.ErrorIs(t, err, domain.ErrConcurrentModification)
	flaky.failRequests(nil)

	tr, err = f.svc.GetTransfer(f.ctx, tr.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TransferDispatched, tr.Status)
	assert.Nil(t, tr.Metrics)
	assert.Nil(t, tr.DeliveredAt)
	assert.Zero(t, tr.UnitsReceived)
	assert.Equal(t, 3, f.level(t, partner(1)).Reserved)
	assert.Zero(t, f.level(t, partner(1)).Consumed)

	r, err = f.svc.RecordDelivery(f.ctx, tr.ID, 3, goodChecklist())
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDelivered, r.Status)
	tr, err = f.svc.GetTransfer(f.ctx, tr.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TransferDelivered, tr.Status)
	require.NotNil(t, tr.Metrics)
}

func TestReturnUnitsLeavesInventoryWhenSaveFails(t *testing.T) {
	f := newFixture(t)
	flaky := f.flaky()
	r := f.accepted(t, partner(1))
	tr, err := f.svc.Dispatch(f.ctx, r.ID, domain.TransportInfo{Vehicle: "AMB-7"})
	require.NoError(t, err)
	_, err = f.svc.RecordDelivery(f.ctx, tr.ID, 3, goodChecklist())
	require.NoError(t, err)
	_, err = f.svc.Complete(f.ctx, r.ID, "dr.okafor")
	require.NoError(t, err)

	flaky.failRequests(domain.ConcurrentModificationf("request %s was modified", r.ID))
	_, err = f.svc.ReturnUnits(f.ctx, r.ID, 2)
	assert.ErrorIs(t, err, domain.ErrConcurrentModification)
	flaky.failRequests(nil)

	borrower := f.level(t, requester)
	assert.Equal(t, 3, borrower.Available)
	assert.Zero(t, borrower.Reserved)
	assert.Zero(t, borrower.Consumed)
	assert.Equal(t, 7, f.level(t, partner(1)).Available)
	got, err := f.svc.Get(f.ctx, r.ID)
	require.NoError(t, err)
	assert.Zero(t, got.UnitsReturned)
	assert.Zero(t, f.ledger(t, requester).Counters.UnitsReturned)

	got, err = f.svc.ReturnUnits(f.ctx, r.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, got.UnitsReturned)
	assert.Equal(t, 1, f.level(t, requester).Available)
	assert.Equal(t, 9, f.level(t, partner(1)).Available)
	assert.Equal(t, 2, f.ledger(t, requester).Counters.UnitsReturned)
}
