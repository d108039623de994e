package tryify

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrNilFailure replaces a nil error handed to Fail, so a failure always carries a reason.
var ErrNilFailure = errors.New("tryify: failure without error")

// Tried is the outcome of one invocation: either a value or a captured failure.
type Tried[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       error
	isSuccess bool
}

func Success[T any](v T) Tried[T] {
	return Tried[T]{
		value:     v,
		err:       nil,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Fail[T any](err error) Tried[T] {
	if IsNil(err) {
		err = ErrNilFailure
	}
	return Tried[T]{
		err:       err,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// raised builds a failure around exactly the object that was raised,
// a typed-nil error included.
func raised[T any](err error) Tried[T] {
	return Tried[T]{
		err:       err,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Of builds a Tried from a conventional (value, error) pair.
// A nil or typed-nil error means success.
func Of[T any](v T, err error) Tried[T] {
	if IsNil(err) {
		return Success(v)
	}
	return Fail[T](err)
}

// FailFrom moves a failure to another value type, keeping its error, id and time.
func FailFrom[In, Out any](from Tried[In]) Tried[Out] {
	return Tried[Out]{
		err:       from.err,
		isSuccess: false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (t Tried[T]) Value() T {
	return t.value
}

func (t Tried[T]) Err() error {
	return t.err
}

// Get returns the value and the failure in Go's usual order.
func (t Tried[T]) Get() (T, error) {
	return t.value, t.err
}

func (t Tried[T]) IsSuccess() bool {
	return t.isSuccess
}

func (t Tried[T]) IsFailure() bool {
	return !t.isSuccess && t.err != nil
}

// IsCancel reports a failure caused by context cancellation or deadline.
func (t Tried[T]) IsCancel() bool {
	return t.IsFailure() && IsCancellationError(t.err)
}

// IsEmpty reports the zero Tried, which holds neither a value nor a failure.
func (t Tried[T]) IsEmpty() bool {
	return t.err == nil && !t.isSuccess
}

func (t Tried[T]) CreatedAt() time.Time {
	return t.createdAt
}

func (t Tried[T]) Id() uuid.UUID {
	return t.id
}

func (t Tried[T]) String() string {
	switch {
	case t.isSuccess:
		return fmt.Sprintf("success(%v)", t.value)
	case t.err != nil:
		return fmt.Sprintf("failure(%v)", t.err)
	default:
		return "empty"
	}
}
