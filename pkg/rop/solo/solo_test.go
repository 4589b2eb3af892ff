package solo

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/ib-77/tryfetch/pkg/rop"
)

func TestValidate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	positive := func(ctx context.Context, in int) (bool, string) { return in > 0, "not positive" }

	if out := Validate(ctx, 3, positive); !out.IsSuccess() || out.Result() != 3 {
		t.Fatalf("expected success with 3, got success=%v err=%v", out.IsSuccess(), out.Err())
	}
	if out := Validate(ctx, -3, positive); out.IsSuccess() || out.Err().Error() != "not positive" {
		t.Fatalf("expected failure 'not positive', got success=%v err=%v", out.IsSuccess(), out.Err())
	}
}

func TestFilterOrFail(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	rejected := errors.New("rejected")
	even := func(ctx context.Context, in int) bool { return in%2 == 0 }
	orFail := func(ctx context.Context, in int) error { return rejected }

	if out := FilterOrFail(ctx, Succeed(4), even, orFail); !out.IsSuccess() {
		t.Fatalf("expected 4 to pass, got err=%v", out.Err())
	}
	if out := FilterOrFail(ctx, Succeed(5), even, orFail); out.Err() != rejected {
		t.Fatalf("expected rejected, got %v", out.Err())
	}

	original := errors.New("original")
	if out := FilterOrFail(ctx, Fail[int](original), even, orFail); out.Err() != original {
		t.Fatalf("expected original failure to pass through, got %v", out.Err())
	}
}

func TestSwitchAndMap_ShortCircuit(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	err := errors.New("boom")
	called := false

	s := Switch(ctx, Fail[int](err), func(ctx context.Context, r int) rop.Result[string] {
		called = true
		return rop.Success("x")
	})
	m := Map(ctx, Fail[int](err), func(ctx context.Context, r int) string {
		called = true
		return "x"
	})

	if called {
		t.Fatalf("handlers must not run on failure")
	}
	if s.Err() != err || m.Err() != err {
		t.Fatalf("expected failure to be carried, got %v / %v", s.Err(), m.Err())
	}
}

func TestTry(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	ok := Try(ctx, Succeed("12"), func(ctx context.Context, r string) (int, error) { return strconv.Atoi(r) })
	if !ok.IsSuccess() || ok.Result() != 12 {
		t.Fatalf("expected 12, got success=%v err=%v", ok.IsSuccess(), ok.Err())
	}

	bad := Try(ctx, Succeed("x"), func(ctx context.Context, r string) (int, error) { return strconv.Atoi(r) })
	var numErr *strconv.NumError
	if bad.IsSuccess() || !errors.As(bad.Err(), &numErr) {
		t.Fatalf("expected *strconv.NumError, got %v", bad.Err())
	}
}

func TestTeeAndDoubleTee(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	seen := 0
	Tee(ctx, Succeed(1), func(ctx context.Context, r rop.Result[int]) { seen++ })
	Tee(ctx, Fail[int](errors.New("x")), func(ctx context.Context, r rop.Result[int]) { seen++ })
	if seen != 1 {
		t.Fatalf("expected Tee to run once, ran %d times", seen)
	}

	var gotErr error
	DoubleTee(ctx, Fail[int](errors.New("y")), nil, func(ctx context.Context, err error) { gotErr = err })
	if gotErr == nil || gotErr.Error() != "y" {
		t.Fatalf("expected error side effect, got %v", gotErr)
	}
}

func TestFailOnError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := errors.New("e")

	if out := FailOnError(ctx, Succeed(1), func(ctx context.Context, in int) error { return e }); out.Err() != e {
		t.Fatalf("expected e, got %v", out.Err())
	}
	if out := FailOnError(ctx, Succeed(1), func(ctx context.Context, in int) error { return nil }); !out.IsSuccess() {
		t.Fatalf("expected success, got %v", out.Err())
	}
}

func TestRecover(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	known := errors.New("known")
	unknown := errors.New("unknown")
	handle := func(ctx context.Context, err error) (string, bool) {
		if errors.Is(err, known) {
			return "handled", true
		}
		return "", false
	}

	if out := Recover(ctx, Fail[string](known), handle); !out.IsSuccess() || out.Result() != "handled" {
		t.Fatalf("expected handled, got success=%v err=%v", out.IsSuccess(), out.Err())
	}
	if out := Recover(ctx, Fail[string](unknown), handle); out.Err() != unknown {
		t.Fatalf("expected unknown to remain, got %v", out.Err())
	}
	if out := Recover(ctx, Succeed("v"), handle); out.Result() != "v" {
		t.Fatalf("expected success untouched, got %v", out.Result())
	}
}

func TestFinally(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	onSuccess := func(ctx context.Context, v int) string { return "ok:" + strconv.Itoa(v) }
	onError := func(ctx context.Context, err error) string { return "err:" + err.Error() }

	if s := Finally(ctx, Succeed(7), onSuccess, onError); s != "ok:7" {
		t.Fatalf("expected ok:7, got %q", s)
	}
	if s := Finally(ctx, Fail[int](errors.New("z")), onSuccess, onError); s != "err:z" {
		t.Fatalf("expected err:z, got %q", s)
	}
}
