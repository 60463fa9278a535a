package notifier

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"bloodlink/internal/ports"
)

var (
	// ErrQueueFull is returned by Notify when the queue has no room.
	ErrQueueFull = errors.New("notification queue full")
	// ErrStopped is returned by Notify once Run has begun shutting down.
	ErrStopped = errors.New("notification dispatcher stopped")
)

// Job is one queued notification.
type Job struct {
	HospitalIDs []string
	Summary     ports.RequestSummary
	Tier        ports.Tier
}

// Failure reports a transport error for one job.
type Failure struct {
	Job Job
	Err error
	At  time.Time
}

// Dispatcher decouples callers from the notification transport: Notify only
// enqueues, and worker goroutines deliver each job under a bounded timeout.
// Failed jobs are logged and published on Failures; they are not retried.
type Dispatcher struct {
	transport ports.Notifier
	timeout   time.Duration
	workers   int
	queue     chan Job
	failures  chan Failure

	// mu guards stopped; Notify enqueues under the read lock so no job can
	// slip in after shutdown's final drain.
	mu      sync.RWMutex
	stopped bool
}

func New(transport ports.Notifier, workers, queueSize int, timeout time.Duration) *Dispatcher {
	if workers < 1 {
		workers = 1
	}
	if queueSize < 1 {
		queueSize = 1
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Dispatcher{
		transport: transport,
		timeout:   timeout,
		workers:   workers,
		queue:     make(chan Job, queueSize),
		failures:  make(chan Failure, queueSize),
	}
}

// Notify enqueues without blocking. The context is not carried into delivery.
func (d *Dispatcher) Notify(_ context.Context, hospitalIDs []string, summary ports.RequestSummary, tier ports.Tier) error {
	if len(hospitalIDs) == 0 {
		return nil
	}
	job := Job{HospitalIDs: append([]string(nil), hospitalIDs...), Summary: summary, Tier: tier}
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.stopped {
		return ErrStopped
	}
	select {
	case d.queue <- job:
		return nil
	default:
		return ErrQueueFull
	}
}

// Failures exposes delivery failures. Unread failures are dropped once the buffer fills.
func (d *Dispatcher) Failures() <-chan Failure { return d.failures }

// Run starts the workers and blocks until ctx is done and queued jobs are drained.
func (d *Dispatcher) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for i := 0; i < d.workers; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			for {
				select {
				case job := <-d.queue:
					d.deliver(idx, job)
				case <-ctx.Done():
					d.drain(idx)
					return
				}
			}
		}(i)
	}
	<-ctx.Done()
	d.mu.Lock()
	d.stopped = true
	d.mu.Unlock()
	wg.Wait()
	// jobs accepted while the workers were draining
	d.drain(0)
}

func (d *Dispatcher) drain(idx int) {
	for {
		select {
		case job := <-d.queue:
			d.deliver(idx, job)
		default:
			return
		}
	}
}

func (d *Dispatcher) deliver(idx int, job Job) {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- d.transport.Notify(ctx, job.HospitalIDs, job.Summary, job.Tier) }()
	var err error
	select {
	case err = <-done:
	case <-ctx.Done():
		err = ctx.Err()
	}
	if err == nil {
		return
	}
	log.Printf("notify worker %d: request %s tier %d hospitals %v: %v", idx, job.Summary.RequestID, job.Tier.Level, job.HospitalIDs, err)
	select {
	case d.failures <- Failure{Job: job, Err: err, At: time.Now()}:
	default:
	}
}
