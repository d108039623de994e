package tryify

import "time"

// Outcome is the read side of a Tried value
type Outcome[T any] interface {
	// Value returns the successful value, or the zero value on failure
	Value() T
	// Err returns the captured failure, or nil on success
	Err() error
	// IsSuccess returns true if the invocation returned normally
	IsSuccess() bool
	// CreatedAt time of settlement (UTC)
	CreatedAt() time.Time
}

// Deferred is implemented by values that settle later, such as *future.Future.
// Synchronous adapters refuse callables returning one.
type Deferred interface {
	Done() <-chan struct{}
	Settled() bool
}
