package solo

import (
	"context"

	"github.com/ib-77/tryify/pkg/tryify"
)

func Succeed[T any](input T) tryify.Tried[T] {
	return tryify.Success(input)
}

func Fail[T any](err error) tryify.Tried[T] {
	return tryify.Fail[T](err)
}

func Switch[In any, Out any](ctx context.Context,
	input tryify.Tried[In],
	onSuccess func(ctx context.Context, r In) tryify.Tried[Out]) tryify.Tried[Out] {

	if !input.IsSuccess() {
		return tryify.FailFrom[In, Out](input)
	}

	res := tryify.Catch(func() tryify.Tried[Out] { return onSuccess(ctx, input.Value()) })
	if res.IsFailure() {
		return tryify.FailFrom[tryify.Tried[Out], Out](res)
	}
	return res.Value()
}

func Map[In any, Out any](ctx context.Context,
	input tryify.Tried[In],
	onSuccess func(ctx context.Context, r In) Out) tryify.Tried[Out] {

	if !input.IsSuccess() {
		return tryify.FailFrom[In, Out](input)
	}
	return tryify.Catch(func() Out { return onSuccess(ctx, input.Value()) })
}

func Try[In any, Out any](ctx context.Context, input tryify.Tried[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) tryify.Tried[Out] {

	if !input.IsSuccess() {
		return tryify.FailFrom[In, Out](input)
	}
	return tryify.CatchE(func() (Out, error) { return onTryExecute(ctx, input.Value()) })
}

// Tee runs onSuccess for its side effect. A panic in onSuccess turns the result
// into a failure; like a panic in Switch or Map, that failure is a new outcome
// with its own id.
func Tee[T any](ctx context.Context,
	input tryify.Tried[T],
	onSuccess func(ctx context.Context, r T)) tryify.Tried[T] {

	if !input.IsSuccess() {
		return input
	}

	res := tryify.Catch(func() struct{} {
		onSuccess(ctx, input.Value())
		return struct{}{}
	})
	if res.IsFailure() {
		return tryify.FailFrom[struct{}, T](res)
	}
	return input
}

func Finally[In, Out any](ctx context.Context, input tryify.Tried[In],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err error) Out) Out {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Value())
	}
	return onError(ctx, input.Err())
}
