package core

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/ib-77/tryify/pkg/tryify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkerOptions(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	assert.Equal(t, 4, GetWorkerMaxCount(ctx, 4))
	assert.Equal(t, 1, GetWorkerMaxCount(ctx, 0))
	assert.Equal(t, 2, GetWorkerMaxCount(WithWorkerOptions(ctx, 2), 4))
	assert.Equal(t, 1, GetWorkerMaxCount(WithWorkerOptions(ctx, -3), 4))
}

func TestProcessOptions(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	assert.True(t, IsProcessRemainingEnabled(ctx, true))
	assert.False(t, IsProcessRemainingEnabled(WithProcessOptions(ctx, false), true))
	assert.True(t, IsProcessRemainingEnabled(WithProcessOptions(ctx, true), false))
}

func TestToChanMany_FromChanMany(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	values := []string{"a", "b", "c"}

	assert.Equal(t, values, FromChanMany(ctx, ToChanMany(ctx, values)))
}

func TestToChanMany_CancelledContext(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Empty(t, Drain(ToChanMany(ctx, []int{1, 2, 3})))
}

func TestToChanQueued(t *testing.T) {
	t.Parallel()
	ch := ToChanQueued([]int{1, 2, 3})
	assert.Equal(t, 3, len(ch))
	assert.Equal(t, []int{1, 2, 3}, Drain(ch))
}

func TestLocomotive_ProcessesAll(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	boom := errors.New("boom")
	out := make(chan tryify.Tried[int], 4)
	wg := &sync.WaitGroup{}
	succeeded := 0

	wg.Add(1)
	go Locomotive(ctx, ToChanQueued([]int{1, 2, -1, 4}), out,
		func(_ context.Context, in int) tryify.Tried[int] {
			if in < 0 {
				return tryify.Fail[int](boom)
			}
			return tryify.Success(in * 10)
		},
		CancellationHandlers[int, int]{},
		func(_ context.Context, _ tryify.Tried[int]) { succeeded++ },
		wg)
	wg.Wait()
	close(out)

	res := Drain(out)
	require.Len(t, res, 4)
	assert.Equal(t, 10, res[0].Value())
	assert.Equal(t, 20, res[1].Value())
	assert.Same(t, boom, res[2].Err())
	assert.Equal(t, 40, res[3].Value())
	assert.Equal(t, 3, succeeded)
}

func TestLocomotive_CancelledBeforeStart(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out := make(chan tryify.Tried[int], 3)
	wg := &sync.WaitGroup{}
	engineCalls := 0

	wg.Add(1)
	Locomotive(ctx, ToChanQueued([]int{1, 2, 3}), out,
		func(_ context.Context, in int) tryify.Tried[int] {
			engineCalls++
			return tryify.Success(in)
		},
		CancellationHandlers[int, int]{
			OnCancel: func(ctx context.Context, inputCh <-chan int, outCh chan<- tryify.Tried[int]) {
				for range inputCh {
					outCh <- tryify.Fail[int](ctx.Err())
				}
			},
			OnCancelUnprocessed: func(ctx context.Context, _ int, outCh chan<- tryify.Tried[int]) {
				outCh <- tryify.Fail[int](ctx.Err())
			},
		},
		nil, wg)
	close(out)

	res := Drain(out)
	assert.Zero(t, engineCalls)
	require.Len(t, res, 3)
	for _, r := range res {
		assert.True(t, r.IsCancel())
	}
}
