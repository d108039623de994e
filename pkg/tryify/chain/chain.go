package chain

import (
	"context"

	"github.com/ib-77/tryify/pkg/tryify"
	"github.com/ib-77/tryify/pkg/tryify/solo"
)

// Chain wraps a tryify.Tried with context to enable fluent chaining
type Chain[T any] struct {
	ctx    context.Context
	result tryify.Tried[T]
}

// Start creates a new chain from a tryify.Tried
func Start[T any](ctx context.Context, result tryify.Tried[T]) *Chain[T] {
	return &Chain[T]{
		ctx:    ctx,
		result: result,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](ctx context.Context, value T) *Chain[T] {
	return Start(ctx, tryify.Success(value))
}

// FromCall creates a new chain from the outcome of calling f once
func FromCall[T any](ctx context.Context, f func() T) *Chain[T] {
	return Start(ctx, solo.Wrap0(f)())
}

// Result returns the underlying tryify.Tried
func (c *Chain[T]) Result() tryify.Tried[T] {
	return c.result
}

// Then chains a function that returns tryify.Tried[U]
func Then[T, U any](c *Chain[T], onSuccess func(context.Context, T) tryify.Tried[U]) *Chain[U] {
	return &Chain[U]{
		ctx:    c.ctx,
		result: solo.Switch(c.ctx, c.result, onSuccess),
	}
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c *Chain[T], tryOnSuccess func(context.Context, T) (U, error)) *Chain[U] {
	return &Chain[U]{
		ctx:    c.ctx,
		result: solo.Try(c.ctx, c.result, tryOnSuccess),
	}
}

// Map chains a pure transformation function
func Map[T, U any](c *Chain[T], onSuccess func(context.Context, T) U) *Chain[U] {
	return &Chain[U]{
		ctx:    c.ctx,
		result: solo.Map(c.ctx, c.result, onSuccess),
	}
}

// Ensure performs a side effect without changing the result
func (c *Chain[T]) Ensure(onSuccess func(context.Context, T)) *Chain[T] {
	return &Chain[T]{
		ctx:    c.ctx,
		result: solo.Tee(c.ctx, c.result, onSuccess),
	}
}

// Finally collapses the chain into a final value using solo.Finally
func Finally[T, U any](c *Chain[T], onSuccess func(context.Context, T) U, onFailure func(context.Context, error) U) U {
	return solo.Finally(c.ctx, c.result, onSuccess, onFailure)
}
