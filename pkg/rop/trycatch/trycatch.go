package trycatch

import (
	"errors"

	"github.com/sourcegraph/conc/panics"

	"github.com/ib-77/tryfetch/pkg/rop"
)

// Awaitable is an in-flight computation. Get blocks until it settles.
type Awaitable[T any] interface {
	Get() (T, error)
}

// Sync invokes op exactly once and captures its outcome.
func Sync[T any](op func() (T, error)) rop.Result[T] {
	var (
		v   T
		err error
	)
	if rec := panics.Try(func() { v, err = op() }); rec != nil {
		return rop.Fail[T](rop.FromPanic(rec.Value))
	}
	return Of(v, err)
}

// Of lifts an already returned (value, error) pair.
func Of[T any](v T, err error) rop.Result[T] {
	if err != nil {
		return rop.Fail[T](err)
	}
	return rop.Success(v)
}

// Await blocks until op settles and returns its outcome.
func Await[T any](op Awaitable[T]) rop.Result[T] {
	if rop.IsNil(op) {
		return rop.Fail[T](ErrNilAwaitable)
	}
	return Sync(op.Get)
}

// Async delivers the outcome of op on the returned channel once op settles.
// The channel receives exactly one value and is then closed.
func Async[T any](op Awaitable[T]) <-chan rop.Result[T] {
	out := make(chan rop.Result[T], 1)
	go func() {
		defer close(out)
		out <- Await(op)
	}()
	return out
}

// As gives a typed view of a failure. E documents the expected kind only;
// a mismatch simply reports false.
func As[E error, T any](r rop.Result[T]) (E, bool) {
	var target E
	if r.IsSuccess() {
		return target, false
	}
	ok := errors.As(r.Err(), &target)
	return target, ok
}

var ErrNilAwaitable = errors.New("trycatch: nil awaitable")
