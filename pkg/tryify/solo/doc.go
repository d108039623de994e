// Package solo contains the synchronous adapters and single-value operations
// over tryify.Tried[T]. Nothing here uses goroutines or channels.
//
// Highlights:
// - Wrap0..Wrap3/WrapN: adapt a panicking function into one returning Tried[R]
// - Wrap0E..Wrap3E/WrapNE: same for functions returning (R, error)
// - Switch: move from Tried[In] to Tried[Out]
// - Map: transform successful values
// - Try: call a function (Out, error) and convert error to failure
// - Tee: side effects on success
// - Finally: reduce to a concrete value via success/error handlers
package solo
