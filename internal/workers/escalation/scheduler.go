package escalation

import (
	"context"
	"log"
	"time"

	"github.com/zoobzio/clockz"

	"bloodlink/internal/domain"
)

// DefaultInterval is the reference scan period.
const DefaultInterval = 2 * time.Minute

// thresholds map idle time to the escalation level it earns, highest first.
var thresholds = []struct {
	after time.Duration
	level int
}{
	{25 * time.Minute, 3},
	{15 * time.Minute, 2},
	{8 * time.Minute, 1},
}

// TargetLevel is the highest level earned after the given idle time.
func TargetLevel(elapsed time.Duration) int {
	for _, t := range thresholds {
		if elapsed >= t.after {
			return t.level
		}
	}
	return 0
}

// Source lists requests still eligible for timer-driven escalation.
type Source interface {
	ListEscalatable(ctx context.Context, maxLevel int) ([]*domain.EmergencyRequest, error)
}

// Escalator promotes one request; it re-checks eligibility under the request lock.
type Escalator interface {
	Escalate(ctx context.Context, id string, target int) (*domain.EmergencyRequest, bool, error)
}

// Report summarises one scan.
type Report struct {
	Scanned  int
	Promoted int
	Failed   int
}

type Scheduler struct {
	source    Source
	escalator Escalator
	clock     clockz.Clock
	interval  time.Duration
	maxLevel  int
}

func New(source Source, escalator Escalator, clock clockz.Clock, interval time.Duration) *Scheduler {
	if clock == nil {
		clock = clockz.RealClock
	}
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Scheduler{source: source, escalator: escalator, clock: clock, interval: interval, maxLevel: 3}
}

// Run scans every interval until ctx is done.
func (s *Scheduler) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-s.clock.After(s.interval):
			rep, err := s.Scan(ctx)
			if err != nil {
				log.Printf("escalation: scan error: %v", err)
				continue
			}
			if rep.Promoted > 0 || rep.Failed > 0 {
				log.Printf("escalation: scanned %d, promoted %d, failed %d", rep.Scanned, rep.Promoted, rep.Failed)
			}
		}
	}
}

// Scan evaluates every eligible request once. A failure on one request is
// logged and never stops the scan of the others.
func (s *Scheduler) Scan(ctx context.Context) (Report, error) {
	var rep Report
	reqs, err := s.source.ListEscalatable(ctx, s.maxLevel)
	if err != nil {
		return rep, err
	}
	now := s.clock.Now()
	for _, r := range reqs {
		if ctx.Err() != nil {
			return rep, ctx.Err()
		}
		rep.Scanned++
		if r.Status.Terminal() || !r.Status.Escalatable() {
			continue
		}
		target := TargetLevel(now.Sub(r.CreatedAt))
		if target <= r.EscalationLevel {
			continue
		}
		_, promoted, err := s.escalator.Escalate(ctx, r.ID, target)
		if err != nil {
			rep.Failed++
			log.Printf("escalation: request %s to level %d: %v", r.ID, target, err)
			continue
		}
		if promoted {
			rep.Promoted++
		}
	}
	return rep, nil
}
