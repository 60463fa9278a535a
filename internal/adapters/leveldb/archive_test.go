package archive

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bloodlink/internal/domain"
	"bloodlink/internal/ports"
)

var (
	_ ports.AuditSink    = (*Archive)(nil)
	_ ports.AuditHistory = (*Archive)(nil)
)

func TestHistoryIsOrderedAndScoped(t *testing.T) {
	ctx := context.Background()
	a, err := Open(t.TempDir())
	require.NoError(t, err)
	defer a.Close()

	base := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	events := []ports.AuditEvent{
		{ID: "3", RequestID: "r1", At: base.Add(2 * time.Minute), Action: domain.ActionAccepted},
		{ID: "1", RequestID: "r1", At: base, Action: domain.ActionCreated},
		{ID: "x", RequestID: "r10", At: base, Action: domain.ActionCreated},
		{ID: "2", RequestID: "r1", At: base.Add(time.Minute), Action: domain.ActionEscalated, Level: 1},
	}
	for _, ev := range events {
		require.NoError(t, a.Emit(ctx, ev))
	}

	got, err := a.History(ctx, "r1")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"1", "2", "3"}, []string{got[0].ID, got[1].ID, got[2].ID})
	assert.Equal(t, 1, got[1].Level)
	assert.True(t, got[0].At.Equal(base))

	none, err := a.History(ctx, "unknown")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestReopenKeepsEvents(t *testing.T) {
	dir := t.TempDir()
	a, err := Open(dir)
	require.NoError(t, err)
	require.NoError(t, a.Emit(context.Background(), ports.AuditEvent{ID: "1", RequestID: "r1", At: time.Now()}))
	require.NoError(t, a.Close())

	b, err := Open(dir)
	require.NoError(t, err)
	defer b.Close()
	got, err := b.History(context.Background(), "r1")
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
