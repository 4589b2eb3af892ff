// Package future provides a settle-once container for a value produced on
// another goroutine. A Future satisfies trycatch.Awaitable.
package future

import (
	"context"
	"sync"

	"github.com/sourcegraph/conc/panics"

	"github.com/ib-77/tryfetch/pkg/rop"
)

// Future is usable as its zero value; New is a convenience.
type Future[T any] struct {
	init  sync.Once
	once  sync.Once
	done  chan struct{}
	value T
	err   error
}

func New[T any]() *Future[T] {
	return &Future[T]{}
}

// Go starts fn immediately and returns the Future that tracks it.
// A panic in fn settles the Future with the recovered error.
func Go[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) *Future[T] {
	f := New[T]()
	go func() {
		var (
			v   T
			err error
		)
		if rec := panics.Try(func() { v, err = fn(ctx) }); rec != nil {
			f.Error(rop.FromPanic(rec.Value))
			return
		}
		if err != nil {
			f.Error(err)
			return
		}
		f.Complete(v)
	}()
	return f
}

func Resolved[T any](v T) *Future[T] {
	f := New[T]()
	f.Complete(v)
	return f
}

func Rejected[T any](err error) *Future[T] {
	f := New[T]()
	f.Error(err)
	return f
}

// Complete settles f with v. It reports false if f was already settled.
func (f *Future[T]) Complete(v T) bool {
	return f.settle(v, nil)
}

// Error settles f with err. A nil err is stored as rop.ErrNilFailure.
func (f *Future[T]) Error(err error) bool {
	if err == nil {
		err = rop.ErrNilFailure
	}
	var zero T
	return f.settle(zero, err)
}

func (f *Future[T]) signal() chan struct{} {
	f.init.Do(func() {
		f.done = make(chan struct{})
	})
	return f.done
}

func (f *Future[T]) settle(v T, err error) bool {
	done := f.signal()
	settled := false
	f.once.Do(func() {
		f.value = v
		f.err = err
		settled = true
		close(done)
	})
	return settled
}

// Get blocks until f is settled. Every call returns the same pair.
func (f *Future[T]) Get() (T, error) {
	<-f.signal()
	return f.value, f.err
}

func (f *Future[T]) Done() <-chan struct{} {
	return f.signal()
}
