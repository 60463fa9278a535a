// Package audit combines audit sinks.
package audit

import (
	"context"
	"errors"
	"log"

	"bloodlink/internal/ports"
)

// Fanout delivers each event to every sink and joins their errors.
type Fanout []ports.AuditSink

func (f Fanout) Emit(ctx context.Context, ev ports.AuditEvent) error {
	var errs []error
	for _, s := range f {
		if err := s.Emit(ctx, ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Log writes one line per event.
type Log struct{}

func (Log) Emit(_ context.Context, ev ports.AuditEvent) error {
	if ev.OldStatus != ev.NewStatus {
		log.Printf("audit: request %s %s by %s (%s -> %s) %s", ev.RequestID, ev.Action, ev.Actor, ev.OldStatus, ev.NewStatus, ev.Note)
		return nil
	}
	log.Printf("audit: request %s %s by %s at level %d %s", ev.RequestID, ev.Action, ev.Actor, ev.Level, ev.Note)
	return nil
}
