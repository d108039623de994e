package future

import (
	"context"
	"errors"
	"sync"

	"github.com/ib-77/tryify/pkg/tryify"
)

// ErrNilReason replaces a nil rejection reason.
var ErrNilReason = errors.New("future: rejected without reason")

type (
	// ResolveFunc settles a future with a value
	ResolveFunc[T any] func(T)
	// RejectFunc settles a future with an error
	RejectFunc func(error)
)

// Future is a value that settles exactly once.
type Future[T any] struct {
	once  sync.Once
	done  chan struct{}
	value T
	err   error
}

var _ tryify.Deferred = (*Future[int])(nil)

// New returns a pending future and the functions settling it.
// Only the first settlement counts; later calls are ignored.
func New[T any]() (*Future[T], ResolveFunc[T], RejectFunc) {
	f := &Future[T]{done: make(chan struct{})}
	return f, f.resolve, f.reject
}

// Go runs fn on its own goroutine. A panic in fn rejects the future.
func Go[T any](fn func() (T, error)) *Future[T] {
	f, resolve, reject := New[T]()
	go func() {
		res := tryify.CatchE(fn)
		if res.IsSuccess() {
			resolve(res.Value())
		} else {
			reject(res.Err())
		}
	}()
	return f
}

func Resolved[T any](v T) *Future[T] {
	f, resolve, _ := New[T]()
	resolve(v)
	return f
}

func Rejected[T any](err error) *Future[T] {
	f, _, reject := New[T]()
	reject(err)
	return f
}

func (f *Future[T]) resolve(v T) {
	f.once.Do(func() {
		f.value = v
		close(f.done)
	})
}

func (f *Future[T]) reject(err error) {
	if tryify.IsNil(err) {
		err = ErrNilReason
	}
	f.once.Do(func() {
		f.err = err
		close(f.done)
	})
}

// Done is closed once the future settles.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

func (f *Future[T]) Settled() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Wait blocks until the future settles.
func (f *Future[T]) Wait() (T, error) {
	<-f.done
	return f.value, f.err
}

// Await is Wait bounded by ctx. When ctx ends first it returns ctx.Err();
// the future itself keeps running and settles later. A future that has
// already settled is always reported as settled, even with an ended ctx.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	default:
	}

	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Then calls onSettled on a new goroutine once the future settles.
func (f *Future[T]) Then(onSettled func(T, error)) {
	go func() {
		onSettled(f.Wait())
	}()
}
