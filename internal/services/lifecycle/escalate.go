package lifecycle

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"

	"bloodlink/internal/domain"
	"bloodlink/internal/ports"
)

// MaxEscalationLevel is the broadest notification tier.
const MaxEscalationLevel = 3

// ResponseWindow is how long a notified hospital has to answer before a later
// promotion counts it as timed out. It matches the shortest gap between the
// timer thresholds, so every timer promotion past level 1 settles the tier before it.
const ResponseWindow = 7 * time.Minute

// tierBounds are the candidate rank windows [lo, hi) for levels 1 and 2.
// Level 3 takes every remaining candidate.
var tierBounds = map[int][2]int{
	1: {0, 3},
	2: {3, 10},
}

// SelectTier returns the hospitals to notify when moving from level `from` to
// `to`. Skipped levels are included so a delayed jump still reaches the
// nearest tiers; hospitals already notified are never repeated.
func SelectTier(ranked []domain.Candidate, from, to int, notified map[string]time.Time) []string {
	seen := map[string]bool{}
	var out []string
	add := func(id string) {
		if _, done := notified[id]; done || seen[id] {
			return
		}
		seen[id] = true
		out = append(out, id)
	}
	for level := from + 1; level <= to && level <= MaxEscalationLevel; level++ {
		if level == MaxEscalationLevel {
			for _, c := range ranked {
				add(c.HospitalID)
			}
			continue
		}
		b := tierBounds[level]
		for i := b[0]; i < b[1] && i < len(ranked); i++ {
			add(ranked[i].HospitalID)
		}
	}
	return out
}

// Escalate is the scheduler's promotion path. It re-checks the request under
// its lock and reports false when the request is no longer eligible.
func (s *Service) Escalate(ctx context.Context, id string, target int) (*domain.EmergencyRequest, bool, error) {
	unlock := s.locks.Lock(id)
	defer unlock()

	r, err := s.requests.GetRequest(ctx, id)
	if err != nil {
		return nil, false, err
	}
	target = min(target, MaxEscalationLevel)
	if !r.Status.Escalatable() || target <= r.EscalationLevel {
		return r, false, nil
	}
	r, err = s.promote(ctx, id, target, domain.ActionEscalated, "escalation-scheduler")
	if err != nil {
		return nil, false, err
	}
	return r, true, nil
}

// ManualEscalate lets an operator raise the level regardless of elapsed time.
// A zero target means one level above the current one.
func (s *Service) ManualEscalate(ctx context.Context, id, actor string, target int) (*domain.EmergencyRequest, error) {
	if actor == "" {
		return nil, domain.Validationf("actor is required for manual escalation")
	}
	unlock := s.locks.Lock(id)
	defer unlock()

	r, err := s.requests.GetRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	if !r.Status.AwaitingPartner() {
		return nil, domain.InvalidTransitionf(r.Status, r.Status, "request %s is %s and cannot be escalated", r.ID, r.Status)
	}
	if target == 0 {
		target = r.EscalationLevel + 1
	}
	if target <= r.EscalationLevel || target > MaxEscalationLevel {
		return nil, domain.Validationf("escalation target %d must be above current level %d and at most %d", target, r.EscalationLevel, MaxEscalationLevel)
	}
	return s.promote(ctx, id, target, domain.ActionManualEscalation, actor)
}

// promote must be called with the request lock held.
func (s *Service) promote(ctx context.Context, id string, target int, action, actor string) (*domain.EmergencyRequest, error) {
	var (
		tier     []string
		timedOut []string
		from     int
	)
	r, err := s.mutateLocked(ctx, id, func(r *domain.EmergencyRequest) error {
		ranked, err := s.matcher.FindCandidates(ctx, r)
		if err != nil {
			return fmt.Errorf("rematch request %s: %w", r.ID, err)
		}
		now := s.clock.Now()
		from = r.EscalationLevel
		if r.Notified == nil {
			r.Notified = map[string]time.Time{}
		}
		for hospitalID, at := range r.Notified {
			if now.Sub(at) >= ResponseWindow && !r.Responded(hospitalID) {
				timedOut = append(timedOut, hospitalID)
			}
		}
		sort.Strings(timedOut)
		r.TimedOut = append(r.TimedOut, timedOut...)

		tier = SelectTier(ranked, from, target, r.Notified)
		for _, hospitalID := range tier {
			r.Notified[hospitalID] = now
		}
		r.EscalationLevel = target
		r.UrgencyScore = Urgency(r, now)
		r.Candidates = ranked

		note := fmt.Sprintf("level %d -> %d, %d hospitals notified", from, target, len(tier))
		if target == MaxEscalationLevel {
			note += ", authority alerted"
		}
		r.Append(now, action, actor, r.Status, r.Status, note)
		return nil
	})
	if err != nil {
		return nil, err
	}
	for _, hospitalID := range timedOut {
		s.record(ctx, hospitalID, domain.Outcome{Kind: domain.OutcomeTimedOut})
	}
	s.notifyTier(ctx, id, tier, target, from)
	return r, nil
}

// notifyTier re-reads the request right before handing work to the notifier
// so a request that just reached a terminal state is not broadcast.
func (s *Service) notifyTier(ctx context.Context, id string, hospitals []string, level, from int) {
	if s.notifier == nil {
		return
	}
	r, err := s.requests.GetRequest(ctx, id)
	if err != nil {
		log.Printf("escalation: reload request %s before notify: %v", id, err)
		return
	}
	if r.Status.Terminal() {
		log.Printf("escalation: request %s reached %s, skipping level %d notification", id, r.Status, level)
		return
	}
	summary := summarize(r)
	if len(hospitals) > 0 {
		if err := s.notifier.Notify(ctx, hospitals, summary, ports.Tier{Level: level}); err != nil {
			log.Printf("escalation: notify request %s level %d hospitals %v: %v", id, level, hospitals, err)
		}
	}
	if level == MaxEscalationLevel && from < MaxEscalationLevel {
		if err := s.notifier.Notify(ctx, []string{s.authorityID}, summary, ports.Tier{Level: level, Authority: true}); err != nil {
			log.Printf("escalation: alert authority %s for request %s: %v", s.authorityID, id, err)
		}
	}
}

// EscalationStats summarises requests created in [from, to).
func (s *Service) EscalationStats(ctx context.Context, from, to time.Time) (domain.EscalationStats, error) {
	if !from.IsZero() && !to.IsZero() && !from.Before(to) {
		return domain.EscalationStats{}, domain.Validationf("range start must precede its end")
	}
	rs, err := s.requests.ListRequests(ctx, domain.RequestFilter{CreatedFrom: from, CreatedTo: to})
	if err != nil {
		return domain.EscalationStats{}, err
	}
	st := domain.EscalationStats{From: from, To: to, TotalRequests: len(rs), ByLevel: map[int]int{}}
	var acceptMinutes float64
	for _, r := range rs {
		if r.EscalationLevel > 0 {
			st.Escalated++
			st.ByLevel[r.EscalationLevel]++
		}
		if r.EscalationLevel == MaxEscalationLevel {
			st.AuthorityAlerts++
		}
		for _, e := range r.History {
			switch e.Action {
			case domain.ActionEscalated:
				st.AutoPromotions++
			case domain.ActionManualEscalation:
				st.ManualPromotions++
			}
		}
		if r.Acceptance != nil {
			st.Accepted++
			acceptMinutes += r.Acceptance.AcceptedAt.Sub(r.CreatedAt).Minutes()
		}
	}
	if st.Accepted > 0 {
		st.MeanMinutesToAcceptance = acceptMinutes / float64(st.Accepted)
	}
	return st, nil
}
