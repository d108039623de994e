// Package mass runs a wrapped callable over a channel of inputs with several
// workers. Every invocation is independent: outcomes arrive in completion
// order, and one failure never affects another input.
//
// On cancellation, queued inputs are reported as failures carrying ctx.Err()
// unless core.WithProcessOptions disables it; results already computed are
// still delivered.
package mass
