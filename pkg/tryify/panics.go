package tryify

import (
	"fmt"
	"runtime/debug"
)

// PanicError carries a recovered panic value that is not an error.
type PanicError struct {
	// Value is the object passed to panic, unchanged
	Value any
	// Stack of the panicking goroutine at recovery time
	Stack []byte
}

func (p *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", p.Value)
}

// FromPanic turns a recovered value into an error. Errors are returned as-is,
// anything else is boxed in a *PanicError.
func FromPanic(recovered any) error {
	if err, ok := recovered.(error); ok {
		return err
	}
	return &PanicError{Value: recovered, Stack: debug.Stack()}
}

// Recovered returns the object that was raised for a captured failure:
// the boxed value of a *PanicError, or err itself. It reports false for nil.
func Recovered(err error) (any, bool) {
	if err == nil {
		return nil, false
	}
	if p, ok := err.(*PanicError); ok {
		return p.Value, true
	}
	return err, true
}

// Catch runs fn once and converts a panic into a failed Tried.
// The panic value is kept as raised, a typed-nil error included.
func Catch[T any](fn func() T) (out Tried[T]) {
	defer func() {
		if r := recover(); r != nil {
			out = raised[T](FromPanic(r))
		}
	}()
	return Success(fn())
}

// CatchE runs fn once; a returned error or a panic becomes a failed Tried.
func CatchE[T any](fn func() (T, error)) (out Tried[T]) {
	defer func() {
		if r := recover(); r != nil {
			out = raised[T](FromPanic(r))
		}
	}()
	v, err := fn()
	return Of(v, err)
}
