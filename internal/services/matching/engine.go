package matching

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"bloodlink/internal/domain"
	"bloodlink/internal/ports"
)

// TrustReader is the read side of the trust ledger.
type TrustReader interface {
	Ledger(ctx context.Context, hospitalID string) (domain.TrustLedger, error)
}

// Engine ranks partner hospitals for a request. Reads are not transactional;
// a ranking may reflect inventory that changes right after.
type Engine struct {
	hospitals ports.HospitalDirectory
	locator   ports.Locator
	inventory ports.InventoryStore
	trust     TrustReader
}

func New(hospitals ports.HospitalDirectory, locator ports.Locator, inventory ports.InventoryStore, trust TrustReader) *Engine {
	return &Engine{hospitals: hospitals, locator: locator, inventory: inventory, trust: trust}
}

// FindCandidates returns candidates ordered by score descending, then distance
// ascending, then hospital id. The requesting hospital, hospitals that already
// declined, hospitals without stock of the group and hospitals the locator
// cannot place are excluded. Coordinates for both ends come from the locator.
func (e *Engine) FindCandidates(ctx context.Context, req *domain.EmergencyRequest) ([]domain.Candidate, error) {
	origin, err := e.locator.Locate(ctx, req.HospitalID)
	if err != nil {
		return nil, fmt.Errorf("locate requesting hospital: %w", err)
	}
	hospitals, err := e.hospitals.ListHospitals(ctx)
	if err != nil {
		return nil, fmt.Errorf("list hospitals: %w", err)
	}
	out := make([]domain.Candidate, 0, len(hospitals))
	for _, h := range hospitals {
		if h.ID == req.HospitalID || h.Suspended || req.Declined(h.ID) {
			continue
		}
		available, err := e.inventory.Available(ctx, h.ID, req.BloodGroup)
		if err != nil {
			return nil, fmt.Errorf("inventory for %s: %w", h.ID, err)
		}
		if available <= 0 {
			continue
		}
		at, err := e.locator.Locate(ctx, h.ID)
		if errors.Is(err, domain.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("locate %s: %w", h.ID, err)
		}
		ledger, err := e.trust.Ledger(ctx, h.ID)
		if err != nil {
			return nil, err
		}
		km := domain.HaversineKm(origin, at)
		score := Score(Inputs{
			DistanceKm:     km,
			AvailableUnits: available,
			UnitsRequired:  req.UnitsRequired,
			TrustScore:     ledger.Scores.Overall,
			Response:       ledger.Counters,
			Severity:       req.Severity,
		})
		out = append(out, domain.Candidate{
			HospitalID:               h.ID,
			Score:                    score,
			DistanceKm:               km,
			AvailableUnits:           available,
			EstimatedResponseMinutes: EstimateResponseMinutes(km, ledger.Counters),
			Confidence:               Grade(score, available, req.UnitsRequired, ledger.Counters),
		})
	}
	Rank(out)
	return out, nil
}

// Rank sorts candidates in place.
func Rank(cs []domain.Candidate) {
	sort.SliceStable(cs, func(i, j int) bool {
		if cs[i].Score != cs[j].Score {
			return cs[i].Score > cs[j].Score
		}
		if cs[i].DistanceKm != cs[j].DistanceKm {
			return cs[i].DistanceKm < cs[j].DistanceKm
		}
		return cs[i].HospitalID < cs[j].HospitalID
	})
}
