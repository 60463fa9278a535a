package memory

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bloodlink/internal/domain"
)

func TestInventoryConservation(t *testing.T) {
	ctx := context.Background()
	s := New()
	s.SetStock("H1", domain.GroupBPos, 10)

	require.NoError(t, s.Reserve(ctx, "H1", domain.GroupBPos, 4))
	require.NoError(t, s.Release(ctx, "H1", domain.GroupBPos, 1))
	require.NoError(t, s.Consume(ctx, "H1", domain.GroupBPos, 2))

	lvl, err := s.Level(ctx, "H1", domain.GroupBPos)
	require.NoError(t, err)
	assert.Equal(t, 7, lvl.Available)
	assert.Equal(t, 1, lvl.Reserved)
	assert.Equal(t, 2, lvl.Consumed)
	assert.Equal(t, 10, lvl.Available+lvl.Reserved+lvl.Consumed)
}

func TestReserveInsufficient(t *testing.T) {
	ctx := context.Background()
	s := New()
	s.SetStock("H1", domain.GroupONeg, 2)

	err := s.Reserve(ctx, "H1", domain.GroupONeg, 3)
	require.Error(t, err)
	var derr *domain.Error
	require.True(t, errors.As(err, &derr))
	assert.Equal(t, domain.KindInsufficientInventory, derr.Kind)
	assert.Equal(t, 2, derr.Available)
	assert.Equal(t, 3, derr.Required)

	n, err := s.Available(ctx, "H1", domain.GroupONeg)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestReleaseAndConsumeBounds(t *testing.T) {
	ctx := context.Background()
	s := New()
	s.SetStock("H1", domain.GroupAPos, 5)
	require.NoError(t, s.Reserve(ctx, "H1", domain.GroupAPos, 2))

	assert.ErrorIs(t, s.Release(ctx, "H1", domain.GroupAPos, 3), domain.ErrValidation)
	assert.ErrorIs(t, s.Consume(ctx, "H1", domain.GroupAPos, 3), domain.ErrValidation)
	assert.ErrorIs(t, s.Reserve(ctx, "H1", domain.GroupAPos, 0), domain.ErrValidation)
	assert.ErrorIs(t, s.Receive(ctx, "H1", domain.GroupAPos, -1), domain.ErrValidation)
}

func TestConcurrentReserveNeverOversells(t *testing.T) {
	ctx := context.Background()
	s := New()
	s.SetStock("H1", domain.GroupONeg, 10)

	var wg sync.WaitGroup
	var won atomic.Int32
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if s.Reserve(ctx, "H1", domain.GroupONeg, 3) == nil {
				won.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(3), won.Load())
	lvl, err := s.Level(ctx, "H1", domain.GroupONeg)
	require.NoError(t, err)
	assert.Equal(t, 1, lvl.Available)
	assert.Equal(t, 9, lvl.Reserved)
}

func TestUnknownPoolIsEmpty(t *testing.T) {
	s := New()
	n, err := s.Available(context.Background(), "nobody", domain.GroupABNeg)
	require.NoError(t, err)
	assert.Zero(t, n)
}
