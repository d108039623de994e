package tryify

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrDeferredResult is reported when a synchronous adapter meets a deferred value.
var ErrDeferredResult = errors.New("tryify: synchronous callable returned a deferred value")

var deferredType = reflect.TypeFor[Deferred]()

// IsDeferredType reports whether values of t settle later: channels and
// Deferred implementations (through a pointer receiver too).
func IsDeferredType(t reflect.Type) bool {
	if t == nil {
		return false
	}
	if t.Kind() == reflect.Chan {
		return true
	}
	if t.Implements(deferredType) {
		return true
	}
	return t.Kind() != reflect.Interface && t.Kind() != reflect.Pointer &&
		reflect.PointerTo(t).Implements(deferredType)
}

// IsDeferredValue checks the dynamic type of v.
func IsDeferredValue(v any) bool {
	if v == nil {
		return false
	}
	return IsDeferredType(reflect.TypeOf(v))
}

// MustNotBeDeferred panics when R is statically a deferred type.
// Adapter constructors call it once, before any invocation.
func MustNotBeDeferred[R any]() {
	t := reflect.TypeFor[R]()
	if IsDeferredType(t) {
		panic(fmt.Errorf("%w: %s", ErrDeferredResult, t))
	}
}

// GuardDeferred turns a successful outcome holding a deferred dynamic value
// into a failure. Only interface-typed R can hide a deferred value at run time.
func GuardDeferred[R any](t Tried[R]) Tried[R] {
	if !t.IsSuccess() {
		return t
	}
	if reflect.TypeFor[R]().Kind() != reflect.Interface {
		return t
	}
	if v := any(t.Value()); IsDeferredValue(v) {
		return Fail[R](fmt.Errorf("%w: %T", ErrDeferredResult, v))
	}
	return t
}
