package core

import (
	"context"
	"sync"

	"github.com/ib-77/tryify/pkg/tryify"
)

type CancellationHandlers[In, Out any] struct {
	OnCancel            func(ctx context.Context, inputCh <-chan In, outCh chan<- tryify.Tried[Out])
	OnCancelUnprocessed func(ctx context.Context, unprocessed In, outCh chan<- tryify.Tried[Out])
	OnCancelProcessed   func(ctx context.Context, in In, processed tryify.Tried[Out], outCh chan<- tryify.Tried[Out])
}

// Locomotive is one worker: it feeds inputs to engine and forwards outcomes
// until inputCh closes or ctx ends. wg.Done is called on return.
func Locomotive[In, Out any](ctx context.Context, inputCh <-chan In, outCh chan<- tryify.Tried[Out],
	engine func(ctx context.Context, input In) tryify.Tried[Out],
	handlers CancellationHandlers[In, Out],
	onSuccess func(ctx context.Context, out tryify.Tried[Out]), wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			if handlers.OnCancel != nil {
				handlers.OnCancel(ctx, inputCh, outCh)
			}
			return
		case in, ok := <-inputCh:
			if !ok {
				return
			}

			if ctx.Err() != nil {
				if handlers.OnCancelUnprocessed != nil {
					handlers.OnCancelUnprocessed(ctx, in, outCh)
				}
				if handlers.OnCancel != nil {
					handlers.OnCancel(ctx, inputCh, outCh)
				}
				return
			}

			pr := engine(ctx, in)

			select {
			case <-ctx.Done():
				if handlers.OnCancelProcessed != nil {
					handlers.OnCancelProcessed(ctx, in, pr, outCh)
				}
				if handlers.OnCancel != nil {
					handlers.OnCancel(ctx, inputCh, outCh)
				}
				return
			case outCh <- pr:
				if onSuccess != nil && pr.IsSuccess() {
					onSuccess(ctx, pr)
				}
			}
		}
	}
}
