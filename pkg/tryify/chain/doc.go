// Package chain provides a fluent wrapper around tryify.Tried[T] for composing
// wrapped calls with solo primitives.
//
// Key operations:
// - Start/FromValue/FromCall: begin a chain from a Tried[T], a value, or a guarded call
// - Then: switch to a new Tried[U] via a function
// - ThenTry: call a function (U, error) and convert error to failure
// - Map: transform the successful value (T -> U)
// - Ensure: run side effects on success without changing the result
// - Finally: collapse the chain into a final value via handlers
//
// Panics raised by any step become the chain's failure.
package chain
