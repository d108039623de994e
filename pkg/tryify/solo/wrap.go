package solo

import "github.com/ib-77/tryify/pkg/tryify"

// Wrap0 returns a version of f that reports panics as a failed Tried instead of unwinding.
// It panics right away if R is a deferred type; use package async for those.
func Wrap0[R any](f func() R) func() tryify.Tried[R] {
	tryify.MustNotBeDeferred[R]()
	return func() tryify.Tried[R] {
		return call(f)
	}
}

func Wrap1[A, R any](f func(A) R) func(A) tryify.Tried[R] {
	tryify.MustNotBeDeferred[R]()
	return func(a A) tryify.Tried[R] {
		return call(func() R { return f(a) })
	}
}

func Wrap2[A, B, R any](f func(A, B) R) func(A, B) tryify.Tried[R] {
	tryify.MustNotBeDeferred[R]()
	return func(a A, b B) tryify.Tried[R] {
		return call(func() R { return f(a, b) })
	}
}

func Wrap3[A, B, C, R any](f func(A, B, C) R) func(A, B, C) tryify.Tried[R] {
	tryify.MustNotBeDeferred[R]()
	return func(a A, b B, c C) tryify.Tried[R] {
		return call(func() R { return f(a, b, c) })
	}
}

func WrapN[A, R any](f func(...A) R) func(...A) tryify.Tried[R] {
	tryify.MustNotBeDeferred[R]()
	return func(args ...A) tryify.Tried[R] {
		return call(func() R { return f(args...) })
	}
}

// Wrap0E is Wrap0 for functions that also report failure through a returned error.
// The returned error lands in the failure slot unchanged.
func Wrap0E[R any](f func() (R, error)) func() tryify.Tried[R] {
	tryify.MustNotBeDeferred[R]()
	return func() tryify.Tried[R] {
		return callE(f)
	}
}

func Wrap1E[A, R any](f func(A) (R, error)) func(A) tryify.Tried[R] {
	tryify.MustNotBeDeferred[R]()
	return func(a A) tryify.Tried[R] {
		return callE(func() (R, error) { return f(a) })
	}
}

func Wrap2E[A, B, R any](f func(A, B) (R, error)) func(A, B) tryify.Tried[R] {
	tryify.MustNotBeDeferred[R]()
	return func(a A, b B) tryify.Tried[R] {
		return callE(func() (R, error) { return f(a, b) })
	}
}

func Wrap3E[A, B, C, R any](f func(A, B, C) (R, error)) func(A, B, C) tryify.Tried[R] {
	tryify.MustNotBeDeferred[R]()
	return func(a A, b B, c C) tryify.Tried[R] {
		return callE(func() (R, error) { return f(a, b, c) })
	}
}

func WrapNE[A, R any](f func(...A) (R, error)) func(...A) tryify.Tried[R] {
	tryify.MustNotBeDeferred[R]()
	return func(args ...A) tryify.Tried[R] {
		return callE(func() (R, error) { return f(args...) })
	}
}

func call[R any](f func() R) tryify.Tried[R] {
	return tryify.GuardDeferred(tryify.Catch(f))
}

func callE[R any](f func() (R, error)) tryify.Tried[R] {
	return tryify.GuardDeferred(tryify.CatchE(f))
}
