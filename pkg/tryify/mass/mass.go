package mass

import (
	"context"
	"sync"

	"github.com/ib-77/tryify/pkg/tryify"
	"github.com/ib-77/tryify/pkg/tryify/core"
)

// Run starts lines workers applying f to inputs from inputCh. The worker count
// can be overridden with core.WithWorkerOptions. The returned channel closes
// once every worker is done.
func Run[In, Out any](ctx context.Context, inputCh <-chan In,
	f func(In) tryify.Tried[Out], lines int) <-chan tryify.Tried[Out] {

	out := make(chan tryify.Tried[Out])
	wg := &sync.WaitGroup{}

	handlers := core.CancellationHandlers[In, Out]{
		OnCancel:            CancelRemaining[In, Out],
		OnCancelUnprocessed: CancelUnprocessed[In, Out],
		OnCancelProcessed:   DeliverProcessed[In, Out],
	}

	engine := func(_ context.Context, in In) tryify.Tried[Out] {
		res := tryify.Catch(func() tryify.Tried[Out] { return f(in) })
		if res.IsFailure() {
			return tryify.FailFrom[tryify.Tried[Out], Out](res)
		}
		return res.Value()
	}

	for range core.GetWorkerMaxCount(ctx, lines) {
		wg.Add(1)
		go core.Locomotive(ctx, inputCh, out, engine, handlers, nil, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

// Apply runs f over values and returns one outcome per value, in completion order.
func Apply[In, Out any](ctx context.Context, f func(In) tryify.Tried[Out],
	values []In, lines int) []tryify.Tried[Out] {
	return core.Drain(Run(ctx, core.ToChanQueued(values), f, lines))
}

func CancelRemaining[In, Out any](ctx context.Context, inputCh <-chan In, outCh chan<- tryify.Tried[Out]) {
	if !core.IsProcessRemainingEnabled(ctx, true) {
		return
	}
	for range inputCh {
		outCh <- tryify.Fail[Out](ctx.Err())
	}
}

func CancelUnprocessed[In, Out any](ctx context.Context, _ In, outCh chan<- tryify.Tried[Out]) {
	if core.IsProcessRemainingEnabled(ctx, true) {
		outCh <- tryify.Fail[Out](ctx.Err())
	}
}

// DeliverProcessed forwards an outcome computed before the context ended.
func DeliverProcessed[In, Out any](ctx context.Context, _ In, processed tryify.Tried[Out],
	outCh chan<- tryify.Tried[Out]) {
	if core.IsProcessRemainingEnabled(ctx, true) {
		outCh <- processed
	}
}
