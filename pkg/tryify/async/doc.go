// Package async adapts future-returning callables into callables whose future
// always resolves to a tryify.Tried[R] and never rejects.
//
// The wrapped callable is invoked on the caller's goroutine; only the wait for
// its future happens elsewhere. Await converts a context ending into a failed
// Tried, so cancellation never escapes as anything but a captured failure.
package async
