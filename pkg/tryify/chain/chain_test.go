package chain

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/ib-77/tryify/pkg/tryify"
)

func TestFromValue_Then(t *testing.T) {
	ctx := context.Background()
	ch := Then(FromValue(ctx, 5), func(ctx context.Context, n int) tryify.Tried[int] {
		return tryify.Success(n * 2)
	})

	res := ch.Result()
	if !res.IsSuccess() {
		t.Fatalf("expected success, got error: %v", res.Err())
	}
	if got := res.Value(); got != 10 {
		t.Fatalf("expected 10, got %d", got)
	}
}

func TestFromCall_PanicStartsFailedChain(t *testing.T) {
	ctx := context.Background()
	expectedErr := errors.New("Oops!")
	called := false

	ch := Map(FromCall(ctx, func() int { panic(expectedErr) }),
		func(ctx context.Context, n int) int {
			called = true
			return n
		})

	res := ch.Result()
	if res.IsSuccess() {
		t.Fatalf("expected failure, got success: %v", res.Value())
	}
	if res.Err() != expectedErr {
		t.Fatalf("expected error %q, got %v", expectedErr, res.Err())
	}
	if called {
		t.Fatalf("Map should not run after a failure")
	}
}

func TestFromCall_Value(t *testing.T) {
	ctx := context.Background()
	res := FromCall(ctx, func() string { return "ok" }).Result()
	if !res.IsSuccess() || res.Value() != "ok" {
		t.Fatalf("expected ok, got success=%v value=%v err=%v", res.IsSuccess(), res.Value(), res.Err())
	}
}

func TestThenTry_SuccessAndError(t *testing.T) {
	ctx := context.Background()

	res1 := ThenTry(FromValue(ctx, "12"), func(ctx context.Context, s string) (int, error) {
		return strconv.Atoi(s)
	}).Result()
	if !res1.IsSuccess() || res1.Value() != 12 {
		t.Fatalf("ThenTry success: expected 12, got success=%v value=%v err=%v", res1.IsSuccess(), res1.Value(), res1.Err())
	}

	expectedErr := errors.New("bad input")
	res2 := ThenTry(FromValue(ctx, "12"), func(ctx context.Context, s string) (int, error) {
		return 0, expectedErr
	}).Result()
	if res2.IsSuccess() || res2.Err() != expectedErr {
		t.Fatalf("ThenTry error: expected %q, got success=%v err=%v", expectedErr, res2.IsSuccess(), res2.Err())
	}
}

func TestEnsure_SideEffectOnlyOnSuccess(t *testing.T) {
	ctx := context.Background()
	called := 0

	ch1 := FromValue(ctx, 2).Ensure(func(ctx context.Context, n int) { called++ })
	if !ch1.Result().IsSuccess() {
		t.Fatalf("expected success, got: %v", ch1.Result().Err())
	}

	ch2 := Start(ctx, tryify.Fail[int](errors.New("x"))).Ensure(func(ctx context.Context, n int) { called++ })
	if ch2.Result().IsSuccess() {
		t.Fatalf("expected failure, got success")
	}
	if called != 1 {
		t.Fatalf("expected side effect to be called once, got %d", called)
	}
}

func TestFinally(t *testing.T) {
	ctx := context.Background()
	onSuccess := func(ctx context.Context, n int) string { return "val:" + strconv.Itoa(n) }
	onFailure := func(ctx context.Context, err error) string { return "err:" + err.Error() }

	if out := Finally(FromValue(ctx, 7), onSuccess, onFailure); out != "val:7" {
		t.Fatalf("expected val:7, got %s", out)
	}
	if out := Finally(Start(ctx, tryify.Fail[int](errors.New("boom"))), onSuccess, onFailure); out != "err:boom" {
		t.Fatalf("expected err:boom, got %s", out)
	}
}
