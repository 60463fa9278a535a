package lifecycle

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"bloodlink/internal/domain"
)

// Create validates the demand, ranks initial candidates and stores a CREATED request.
func (s *Service) Create(ctx context.Context, d domain.Demand) (*domain.EmergencyRequest, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.hospitals.GetHospital(ctx, d.HospitalID); err != nil {
		return nil, err
	}
	now := s.clock.Now()
	r := &domain.EmergencyRequest{
		ID:            uuid.NewString(),
		HospitalID:    d.HospitalID,
		CreatedAt:     now,
		BloodGroup:    d.BloodGroup,
		UnitsRequired: d.UnitsRequired,
		Severity:      d.Severity,
		Patient:       d.Patient,
		Status:        domain.StatusCreated,
		Notified:      map[string]time.Time{},
	}
	r.UrgencyScore = Urgency(r, now)
	if s.matcher != nil {
		cs, err := s.matcher.FindCandidates(ctx, r)
		if err != nil {
			log.Printf("matching: request %s: %v", r.ID, err)
		}
		r.Candidates = cs
	}
	r.Append(now, domain.ActionCreated, actorOr(d.Actor, d.HospitalID), "", domain.StatusCreated,
		fmt.Sprintf("%d units %s, %s, %d candidates", r.UnitsRequired, r.BloodGroup, r.Severity, len(r.Candidates)))
	if err := s.requests.CreateRequest(ctx, r); err != nil {
		return nil, err
	}
	s.emit(ctx, r, r.History)
	return r, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.EmergencyRequest, error) {
	return s.requests.GetRequest(ctx, id)
}

func (s *Service) List(ctx context.Context, f domain.RequestFilter) ([]*domain.EmergencyRequest, error) {
	return s.requests.ListRequests(ctx, f)
}

// Candidates recomputes the ranking for a request on demand.
func (s *Service) Candidates(ctx context.Context, id string) ([]domain.Candidate, error) {
	r, err := s.requests.GetRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.matcher.FindCandidates(ctx, r)
}

// transition moves the request along one edge and appends the audit entry.
func (s *Service) transition(r *domain.EmergencyRequest, to domain.Status, action, actor, note string) error {
	if err := domain.CheckTransition(r.Status, to); err != nil {
		return err
	}
	from := r.Status
	r.Status = to
	r.Append(s.clock.Now(), action, actor, from, to, note)
	return nil
}

func (s *Service) SubmitForVerification(ctx context.Context, id, actor string) (*domain.EmergencyRequest, error) {
	return s.mutate(ctx, id, func(r *domain.EmergencyRequest) error {
		return s.transition(r, domain.StatusMedicalVerificationPending, domain.ActionVerificationSent, actorOr(actor, r.HospitalID), "")
	})
}

func (s *Service) Verify(ctx context.Context, id, actor string) (*domain.EmergencyRequest, error) {
	return s.mutate(ctx, id, func(r *domain.EmergencyRequest) error {
		return s.transition(r, domain.StatusPartnerSearch, domain.ActionVerified, actorOr(actor, r.HospitalID), "")
	})
}

// Accept commits a partner hospital. Reserving the units and moving the
// request to PARTNER_ACCEPTED happen under the request lock; if persisting
// the request fails the reservation is returned.
func (s *Service) Accept(ctx context.Context, id, hospitalID string, unitsCommitted, etaMinutes int) (*domain.EmergencyRequest, error) {
	if strings.TrimSpace(hospitalID) == "" {
		return nil, domain.Validationf("hospital id is required")
	}
	if unitsCommitted <= 0 {
		return nil, domain.Validationf("unitsCommitted must be positive, got %d", unitsCommitted)
	}
	if etaMinutes <= 0 {
		return nil, domain.Validationf("eta must be positive, got %d minutes", etaMinutes)
	}
	if _, err := s.hospitals.GetHospital(ctx, hospitalID); err != nil {
		return nil, err
	}

	var lock *domain.ResourceLock
	var latency float64
	var late bool
	r, err := s.mutate(ctx, id, func(r *domain.EmergencyRequest) error {
		if err := domain.CheckTransition(r.Status, domain.StatusPartnerAccepted); err != nil {
			return err
		}
		if hospitalID == r.HospitalID {
			return domain.Validationf("hospital %s cannot accept its own request", hospitalID)
		}
		if unitsCommitted > r.UnitsRequired {
			return domain.Validationf("unitsCommitted %d exceeds unitsRequired %d", unitsCommitted, r.UnitsRequired)
		}
		if err := s.inventory.Reserve(ctx, hospitalID, r.BloodGroup, unitsCommitted); err != nil {
			return err
		}
		now := s.clock.Now()
		lock = &domain.ResourceLock{HospitalID: hospitalID, BloodGroup: r.BloodGroup, Units: unitsCommitted, AcquiredAt: now}
		r.Lock = lock
		r.Acceptance = &domain.Acceptance{HospitalID: hospitalID, UnitsCommitted: unitsCommitted, ETAMinutes: etaMinutes, AcceptedAt: now}
		latency = responseLatency(r, hospitalID, now)
		late = r.HasTimedOut(hospitalID)
		return s.transition(r, domain.StatusPartnerAccepted, domain.ActionAccepted, hospitalID,
			fmt.Sprintf("%d units committed, eta %d min", unitsCommitted, etaMinutes))
	})
	if err != nil {
		if lock != nil {
			if rerr := s.inventory.Release(ctx, lock.HospitalID, lock.BloodGroup, lock.Units); rerr != nil {
				log.Printf("inventory: return reservation for request %s: %v", id, rerr)
			}
		}
		return nil, err
	}
	s.record(ctx, hospitalID, domain.Outcome{Kind: domain.OutcomeAccepted, LatencyMinutes: latency, AfterTimeout: late})
	return r, nil
}

// Decline records a hospital's refusal; the request status is unchanged.
func (s *Service) Decline(ctx context.Context, id, hospitalID, reason string) (*domain.EmergencyRequest, error) {
	if strings.TrimSpace(hospitalID) == "" {
		return nil, domain.Validationf("hospital id is required")
	}
	var latency float64
	fresh, late := false, false
	r, err := s.mutate(ctx, id, func(r *domain.EmergencyRequest) error {
		if !r.Status.AwaitingPartner() {
			return domain.InvalidTransitionf(r.Status, r.Status, "request %s is %s and no longer takes responses", r.ID, r.Status)
		}
		if hospitalID == r.HospitalID {
			return domain.Validationf("hospital %s cannot decline its own request", hospitalID)
		}
		if r.Declined(hospitalID) {
			return nil
		}
		now := s.clock.Now()
		fresh = true
		latency = responseLatency(r, hospitalID, now)
		late = r.HasTimedOut(hospitalID)
		r.Declines = append(r.Declines, domain.Decline{HospitalID: hospitalID, Reason: reason, At: now})
		r.Append(now, domain.ActionDeclined, hospitalID, r.Status, r.Status, reason)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if fresh {
		s.record(ctx, hospitalID, domain.Outcome{Kind: domain.OutcomeDeclined, LatencyMinutes: latency, AfterTimeout: late})
	}
	return r, nil
}

// Cancel moves any non-terminal request to CANCELLED and returns reserved units.
func (s *Service) Cancel(ctx context.Context, id, actor, reason string) (*domain.EmergencyRequest, error) {
	var lock *domain.ResourceLock
	var transferID string
	r, err := s.mutate(ctx, id, func(r *domain.EmergencyRequest) error {
		if err := s.transition(r, domain.StatusCancelled, domain.ActionCancelled, actorOr(actor, r.HospitalID), reason); err != nil {
			return err
		}
		lock, r.Lock = r.Lock, nil
		transferID = r.TransferID
		return nil
	})
	if err != nil {
		return nil, err
	}
	if lock != nil {
		if err := s.inventory.Release(ctx, lock.HospitalID, lock.BloodGroup, lock.Units); err != nil {
			return r, fmt.Errorf("release reservation: %w", err)
		}
	}
	s.failTransfer(ctx, transferID, "cancelled: "+reason)
	return r, nil
}

// Fail moves any non-terminal request to FAILED. Units reserved but not yet
// dispatched go back to the lender; dispatched units are written off.
func (s *Service) Fail(ctx context.Context, id, actor, reason string) (*domain.EmergencyRequest, error) {
	var lock *domain.ResourceLock
	var dispatched bool
	var transferID string
	r, err := s.mutate(ctx, id, func(r *domain.EmergencyRequest) error {
		dispatched = r.Status.Dispatched()
		if err := s.transition(r, domain.StatusFailed, domain.ActionFailed, actorOr(actor, r.HospitalID), reason); err != nil {
			return err
		}
		lock, r.Lock = r.Lock, nil
		transferID = r.TransferID
		return nil
	})
	if err != nil {
		return nil, err
	}
	if lock != nil {
		if dispatched {
			err = s.inventory.Consume(ctx, lock.HospitalID, lock.BloodGroup, lock.Units)
		} else {
			err = s.inventory.Release(ctx, lock.HospitalID, lock.BloodGroup, lock.Units)
		}
		if err != nil {
			return r, fmt.Errorf("settle reservation: %w", err)
		}
		if dispatched {
			s.record(ctx, lock.HospitalID, domain.Outcome{Kind: domain.OutcomeDeliveryFailed})
		}
	}
	s.failTransfer(ctx, transferID, reason)
	return r, nil
}

// Complete closes a delivered request.
func (s *Service) Complete(ctx context.Context, id, actor string) (*domain.EmergencyRequest, error) {
	return s.mutate(ctx, id, func(r *domain.EmergencyRequest) error {
		return s.transition(r, domain.StatusCompleted, domain.ActionCompleted, actorOr(actor, r.HospitalID), "")
	})
}

// ReturnUnits settles borrowed units of a completed request back to the
// lender. The units are held at the requester until the request is saved and
// only then handed over, so a failed save leaves both inventories untouched.
func (s *Service) ReturnUnits(ctx context.Context, id string, units int) (*domain.EmergencyRequest, error) {
	if units <= 0 {
		return nil, domain.Validationf("units must be positive, got %d", units)
	}
	var (
		held          bool
		lender, owner string
		group         domain.BloodGroup
	)
	r, err := s.mutate(ctx, id, func(r *domain.EmergencyRequest) error {
		if r.Status != domain.StatusCompleted || r.Acceptance == nil {
			return domain.InvalidTransitionf(r.Status, r.Status, "units can only be returned on a completed request, request %s is %s", r.ID, r.Status)
		}
		t, err := s.transfers.GetTransfer(ctx, r.TransferID)
		if err != nil {
			return err
		}
		if outstanding := t.UnitsReceived - r.UnitsReturned; units > outstanding {
			return domain.Validationf("return of %d units exceeds %d outstanding", units, outstanding)
		}
		if err := s.inventory.Reserve(ctx, r.HospitalID, r.BloodGroup, units); err != nil {
			return err
		}
		held = true
		owner, group, lender = r.HospitalID, r.BloodGroup, r.Acceptance.HospitalID
		r.UnitsReturned += units
		r.Append(s.clock.Now(), domain.ActionUnitsReturned, r.HospitalID, r.Status, r.Status,
			fmt.Sprintf("%d units returned to %s", units, lender))
		return nil
	})
	if err != nil {
		if held {
			if rerr := s.inventory.Release(ctx, owner, group, units); rerr != nil {
				log.Printf("inventory: release held return for request %s: %v", id, rerr)
			}
		}
		return nil, err
	}
	if err := s.inventory.Consume(ctx, owner, group, units); err != nil {
		return r, fmt.Errorf("hand over returned units: %w", err)
	}
	if err := s.inventory.Receive(ctx, lender, group, units); err != nil {
		return r, fmt.Errorf("credit lender inventory: %w", err)
	}
	s.record(ctx, owner, domain.Outcome{Kind: domain.OutcomeReturned, Units: units})
	s.record(ctx, lender, domain.Outcome{Kind: domain.OutcomeReceivedBack, Units: units})
	return r, nil
}

// responseLatency measures from notification, or from creation for hospitals never notified.
func responseLatency(r *domain.EmergencyRequest, hospitalID string, now time.Time) float64 {
	from := r.CreatedAt
	if at, ok := r.Notified[hospitalID]; ok {
		from = at
	}
	if d := now.Sub(from).Minutes(); d > 0 {
		return d
	}
	return 0
}
