// Package future provides Future[T], a value that settles once, later, with
// either a result or an error. It is the deferred value consumed and produced
// by package async.
//
// Highlights:
// - New: pending future plus resolve/reject functions
// - Go: run a (T, error) function on a goroutine, capturing panics as rejections
// - Resolved/Rejected: already settled futures
// - Wait/Await/Then/Done: blocking, context-bounded and callback consumption
package future
