// Package tryify converts panicking or error-returning callables into callables
// that return an explicit Tried[T] outcome instead.
//
// The root package holds the outcome type and the capture primitives:
// - Success/Fail/Of: construct Tried[T]
// - Catch/CatchE: run a function and turn a panic (or returned error) into a failure
// - PanicError/Recovered: carry and recover non-error panic values unchanged
// - Deferred/ErrDeferredResult: guard synchronous adapters against deferred results
//
// The adapters themselves live in package solo (synchronous) and package async
// (future-returning callables).
package tryify
