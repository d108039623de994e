package core

import "context"

// ToChanMany streams values into an unbuffered channel until they run out or ctx ends.
func ToChanMany[T any](ctx context.Context, values []T) <-chan T {
	in := make(chan T)

	go func() {
		defer close(in)

		for _, v := range values {
			if ctx.Err() != nil {
				return
			}

			select {
			case in <- v:
			case <-ctx.Done():
				return
			}
		}
	}()

	return in
}

// ToChanQueued returns a closed channel already holding every value, so no
// value is lost when the context ends before workers pick it up.
func ToChanQueued[T any](values []T) <-chan T {
	in := make(chan T, len(values))
	for _, v := range values {
		in <- v
	}
	close(in)
	return in
}

// FromChanMany collects from out until it closes or ctx ends.
func FromChanMany[T any](ctx context.Context, out <-chan T) []T {
	res := make([]T, 0)
	for {
		select {
		case v, ok := <-out:
			if !ok {
				return res
			}
			res = append(res, v)
		case <-ctx.Done():
			return res
		}
	}
}

// Drain collects from out until it closes.
func Drain[T any](out <-chan T) []T {
	res := make([]T, 0)
	for v := range out {
		res = append(res, v)
	}
	return res
}
