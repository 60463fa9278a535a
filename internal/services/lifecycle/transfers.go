package lifecycle

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"bloodlink/internal/domain"
)

// Dispatch creates the transfer for an accepted request and moves it to DISPATCHED.
func (s *Service) Dispatch(ctx context.Context, id string, info domain.TransportInfo) (*domain.BloodTransfer, error) {
	unlock := s.locks.Lock(id)
	defer unlock()

	r, err := s.requests.GetRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := domain.CheckTransition(r.Status, domain.StatusDispatched); err != nil {
		return nil, err
	}
	if r.Acceptance == nil || r.Lock == nil {
		return nil, domain.InvalidTransitionf(r.Status, domain.StatusDispatched, "request %s has no committed partner", r.ID)
	}
	from, err := s.hospitals.GetHospital(ctx, r.Acceptance.HospitalID)
	if err != nil {
		return nil, err
	}
	to, err := s.hospitals.GetHospital(ctx, r.HospitalID)
	if err != nil {
		return nil, err
	}
	now := s.clock.Now()
	expected := info.EstimatedArrival
	if expected.IsZero() {
		expected = r.Acceptance.AcceptedAt.Add(time.Duration(r.Acceptance.ETAMinutes) * time.Minute)
	}
	t := &domain.BloodTransfer{
		ID:              uuid.NewString(),
		RequestID:       r.ID,
		FromHospitalID:  from.ID,
		ToHospitalID:    to.ID,
		BloodGroup:      r.BloodGroup,
		Units:           r.Lock.Units,
		Status:          domain.TransferDispatched,
		Transport:       info,
		DispatchedAt:    now,
		ExpectedArrival: expected,
		Origin:          from.Location,
		Destination:     to.Location,
	}
	if err := s.transfers.CreateTransfer(ctx, t); err != nil {
		return nil, err
	}
	_, err = s.mutateLocked(ctx, id, func(r *domain.EmergencyRequest) error {
		r.TransferID = t.ID
		return s.transition(r, domain.StatusDispatched, domain.ActionDispatched, actorOr(info.Actor, from.ID),
			fmt.Sprintf("transfer %s via %s", t.ID, info.Vehicle))
	})
	if err != nil {
		t.Status = domain.TransferFailed
		t.FailureReason = "dispatch aborted: " + err.Error()
		if uerr := s.transfers.UpdateTransfer(ctx, t); uerr != nil {
			log.Printf("transfer %s: mark aborted: %v", t.ID, uerr)
		}
		return nil, err
	}
	return t, nil
}

func (s *Service) GetTransfer(ctx context.Context, id string) (*domain.BloodTransfer, error) {
	return s.transfers.GetTransfer(ctx, id)
}

// withTransfer locks the owning request and runs fn against the loaded transfer.
func (s *Service) withTransfer(ctx context.Context, transferID string, fn func(t *domain.BloodTransfer) error) (*domain.BloodTransfer, error) {
	t, err := s.transfers.GetTransfer(ctx, transferID)
	if err != nil {
		return nil, err
	}
	unlock := s.locks.Lock(t.RequestID)
	defer unlock()
	t, err = s.transfers.GetTransfer(ctx, transferID)
	if err != nil {
		return nil, err
	}
	if t.Status.Terminal() {
		return nil, domain.InvalidTransitionf("", "", "transfer %s is %s", t.ID, t.Status)
	}
	if err := fn(t); err != nil {
		return nil, err
	}
	return t, nil
}

// UpdateTransferLocation appends a GPS point. The first point marks the request IN_TRANSIT.
func (s *Service) UpdateTransferLocation(ctx context.Context, transferID string, loc domain.Location, at time.Time) (*domain.BloodTransfer, error) {
	if at.IsZero() {
		at = s.clock.Now()
	}
	return s.withTransfer(ctx, transferID, func(t *domain.BloodTransfer) error {
		if err := t.AddTrackPoint(domain.TrackPoint{At: at, Location: loc}); err != nil {
			return err
		}
		if t.Status == domain.TransferDispatched {
			_, err := s.mutateLocked(ctx, t.RequestID, func(r *domain.EmergencyRequest) error {
				return s.transition(r, domain.StatusInTransit, domain.ActionInTransit, t.FromHospitalID, "")
			})
			if err != nil {
				return err
			}
			t.Status = domain.TransferInTransit
		}
		return s.transfers.UpdateTransfer(ctx, t)
	})
}

// LogTemperature appends a cold-chain reading flagged against the storage band.
func (s *Service) LogTemperature(ctx context.Context, transferID string, celsius float64, at time.Time) (*domain.BloodTransfer, error) {
	if at.IsZero() {
		at = s.clock.Now()
	}
	reading := domain.NewTemperatureReading(at, celsius)
	t, err := s.withTransfer(ctx, transferID, func(t *domain.BloodTransfer) error {
		if err := t.AddTemperature(reading); err != nil {
			return err
		}
		return s.transfers.UpdateTransfer(ctx, t)
	})
	if err == nil && !reading.Compliant {
		log.Printf("cold chain: transfer %s read %.1fC outside %.0f-%.0fC", transferID, celsius, domain.MinStorageCelsius, domain.MaxStorageCelsius)
	}
	return t, err
}

// RecordDelivery closes the transfer, consumes the full reservation at the
// lender, credits the requester with the units actually received and updates
// both trust ledgers. The transfer is saved first; if the request cannot move
// to DELIVERED the transfer is put back as it was.
func (s *Service) RecordDelivery(ctx context.Context, transferID string, unitsReceived int, checklist domain.DeliveryChecklist) (*domain.EmergencyRequest, error) {
	if err := checklist.Validate(); err != nil {
		return nil, err
	}
	var (
		req  *domain.EmergencyRequest
		lock *domain.ResourceLock
	)
	t, err := s.withTransfer(ctx, transferID, func(t *domain.BloodTransfer) error {
		if unitsReceived < 0 || unitsReceived > t.Units {
			return domain.Validationf("unitsReceived must be between 0 and %d, got %d", t.Units, unitsReceived)
		}
		prev := t.Clone()
		now := s.clock.Now()
		metrics := t.ComputeMetrics(now)
		t.Status = domain.TransferDelivered
		t.DeliveredAt = &now
		t.UnitsReceived = unitsReceived
		t.Checklist = &checklist
		t.Metrics = &metrics
		if err := s.transfers.UpdateTransfer(ctx, t); err != nil {
			return fmt.Errorf("close transfer %s: %w", t.ID, err)
		}
		r, err := s.mutateLocked(ctx, t.RequestID, func(r *domain.EmergencyRequest) error {
			if err := s.transition(r, domain.StatusDelivered, domain.ActionDelivered, actorOr(checklist.ReceivedBy, r.HospitalID),
				fmt.Sprintf("received %d of %d units", unitsReceived, t.Units)); err != nil {
				return err
			}
			lock, r.Lock = r.Lock, nil
			return nil
		})
		if err != nil {
			lock = nil
			prev.Version = t.Version
			if uerr := s.transfers.UpdateTransfer(ctx, prev); uerr != nil {
				log.Printf("transfer %s: reopen after failed delivery: %v", t.ID, uerr)
			}
			return err
		}
		req = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	if lock != nil {
		if err := s.inventory.Consume(ctx, lock.HospitalID, lock.BloodGroup, lock.Units); err != nil {
			return req, fmt.Errorf("consume reservation: %w", err)
		}
	}
	if unitsReceived > 0 {
		if err := s.inventory.Receive(ctx, req.HospitalID, req.BloodGroup, unitsReceived); err != nil {
			return req, fmt.Errorf("credit requester inventory: %w", err)
		}
	}

	kind := domain.OutcomeDeliveredLate
	if t.Metrics.OnTime {
		kind = domain.OutcomeDeliveredOnTime
	}
	s.record(ctx, t.FromHospitalID, domain.Outcome{
		Kind:                kind,
		TemperatureReadings: t.Metrics.TemperatureReadings,
		CompliantReadings:   t.Metrics.CompliantReadings,
	})
	s.record(ctx, t.FromHospitalID, domain.Outcome{Kind: domain.OutcomeLent, Units: t.Units})
	s.record(ctx, t.FromHospitalID, domain.Outcome{Kind: domain.OutcomeRated, Rating: checklist.Rating, Issue: checklist.Issue()})
	s.record(ctx, req.HospitalID, domain.Outcome{Kind: domain.OutcomeBorrowed, Units: unitsReceived})
	return req, nil
}

// failTransfer closes an active transfer after its request was cancelled or failed.
func (s *Service) failTransfer(ctx context.Context, transferID, reason string) {
	if transferID == "" {
		return
	}
	t, err := s.transfers.GetTransfer(ctx, transferID)
	if err != nil {
		log.Printf("transfer %s: load for failure: %v", transferID, err)
		return
	}
	if t.Status.Terminal() {
		return
	}
	t.Status = domain.TransferFailed
	t.FailureReason = reason
	if err := s.transfers.UpdateTransfer(ctx, t); err != nil {
		log.Printf("transfer %s: mark failed: %v", transferID, err)
	}
}
