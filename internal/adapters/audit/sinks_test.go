package audit

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"bloodlink/internal/ports"
)

type countingSink struct {
	n   int
	err error
}

func (c *countingSink) Emit(context.Context, ports.AuditEvent) error {
	c.n++
	return c.err
}

func TestFanoutReachesEverySink(t *testing.T) {
	boom := errors.New("archive full")
	a, b, c := &countingSink{}, &countingSink{err: boom}, &countingSink{}
	err := Fanout{a, b, Log{}, c}.Emit(context.Background(), ports.AuditEvent{RequestID: "r1", Action: "CREATED"})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, a.n)
	assert.Equal(t, 1, b.n)
	assert.Equal(t, 1, c.n)
}

func TestEmptyFanout(t *testing.T) {
	assert.NoError(t, Fanout(nil).Emit(context.Background(), ports.AuditEvent{}))
}
