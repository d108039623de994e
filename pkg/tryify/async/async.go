package async

import (
	"context"
	"errors"

	"github.com/ib-77/tryify/pkg/tryify"
	"github.com/ib-77/tryify/pkg/tryify/future"
)

// ErrNilFuture is the failure recorded when a callable hands back a nil future.
var ErrNilFuture = errors.New("async: callable returned a nil future")

func Wrap0[R any](f func() *future.Future[R]) func() *future.Future[tryify.Tried[R]] {
	return func() *future.Future[tryify.Tried[R]] {
		return settle(f)
	}
}

func Wrap1[A, R any](f func(A) *future.Future[R]) func(A) *future.Future[tryify.Tried[R]] {
	return func(a A) *future.Future[tryify.Tried[R]] {
		return settle(func() *future.Future[R] { return f(a) })
	}
}

func Wrap2[A, B, R any](f func(A, B) *future.Future[R]) func(A, B) *future.Future[tryify.Tried[R]] {
	return func(a A, b B) *future.Future[tryify.Tried[R]] {
		return settle(func() *future.Future[R] { return f(a, b) })
	}
}

func Wrap3[A, B, C, R any](f func(A, B, C) *future.Future[R]) func(A, B, C) *future.Future[tryify.Tried[R]] {
	return func(a A, b B, c C) *future.Future[tryify.Tried[R]] {
		return settle(func() *future.Future[R] { return f(a, b, c) })
	}
}

func WrapN[A, R any](f func(...A) *future.Future[R]) func(...A) *future.Future[tryify.Tried[R]] {
	return func(args ...A) *future.Future[tryify.Tried[R]] {
		return settle(func() *future.Future[R] { return f(args...) })
	}
}

// settle calls f once and returns a future resolving to f's outcome.
func settle[R any](f func() *future.Future[R]) *future.Future[tryify.Tried[R]] {
	started := tryify.Catch(f)
	if started.IsFailure() {
		return future.Resolved(tryify.FailFrom[*future.Future[R], R](started))
	}

	pending := started.Value()
	if pending == nil {
		return future.Resolved(tryify.Fail[R](ErrNilFuture))
	}

	outer, resolve, _ := future.New[tryify.Tried[R]]()
	go func() {
		v, err := pending.Wait()
		resolve(tryify.Of(v, err))
	}()
	return outer
}

// Await waits for f within ctx. A context that ends first yields Fail(ctx.Err());
// the underlying call is not interrupted.
func Await[R any](ctx context.Context, f *future.Future[tryify.Tried[R]]) tryify.Tried[R] {
	res, err := f.Await(ctx)
	if err != nil {
		return tryify.Fail[R](err)
	}
	return res
}

// AwaitAll waits for every future and returns their outcomes in input order.
func AwaitAll[R any](ctx context.Context, fs ...*future.Future[tryify.Tried[R]]) []tryify.Tried[R] {
	out := make([]tryify.Tried[R], len(fs))
	for i, f := range fs {
		out[i] = Await(ctx, f)
	}
	return out
}

// Then delivers the settled outcome of f to onSettled on another goroutine.
func Then[R any](f *future.Future[tryify.Tried[R]], onSettled func(tryify.Tried[R])) {
	f.Then(func(res tryify.Tried[R], err error) {
		if err != nil {
			res = tryify.Fail[R](err)
		}
		onSettled(res)
	})
}
