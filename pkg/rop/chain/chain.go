package chain

import (
	"context"

	"github.com/ib-77/tryfetch/pkg/rop"
	"github.com/ib-77/tryfetch/pkg/rop/solo"
)

// Chain carries one step's rop.Result together with the context every later
// step runs under.
type Chain[T any] struct {
	ctx    context.Context
	result rop.Result[T]
}

func Start[T any](ctx context.Context, first rop.Result[T]) *Chain[T] {
	return &Chain[T]{ctx: ctx, result: first}
}

func (c *Chain[T]) Result() rop.Result[T] {
	return c.result
}

func step[U any](ctx context.Context, r rop.Result[U]) *Chain[U] {
	return &Chain[U]{ctx: ctx, result: r}
}

// Then runs a fallible step on the current value.
func Then[T, U any](c *Chain[T], next func(context.Context, T) rop.Result[U]) *Chain[U] {
	return step(c.ctx, solo.Switch(c.ctx, c.result, next))
}

// Map runs a step that cannot fail.
func Map[T, U any](c *Chain[T], conv func(context.Context, T) U) *Chain[U] {
	return step(c.ctx, solo.Map(c.ctx, c.result, conv))
}

// Filter turns a value rejected by keep into the failure built by orFail.
func (c *Chain[T]) Filter(keep func(context.Context, T) bool, orFail func(context.Context, T) error) *Chain[T] {
	return step(c.ctx, solo.FilterOrFail(c.ctx, c.result, keep, orFail))
}

// Ensure observes a successful value.
func (c *Chain[T]) Ensure(observe func(context.Context, T)) *Chain[T] {
	return step(c.ctx, solo.Tee(c.ctx, c.result, func(ctx context.Context, r rop.Result[T]) {
		observe(ctx, r.Result())
	}))
}

// Catch settles the failures handle accepts; the rest pass through.
func (c *Chain[T]) Catch(handle func(context.Context, error) (T, bool)) *Chain[T] {
	return step(c.ctx, solo.Recover(c.ctx, c.result, handle))
}

// Finally ends the chain, folding either branch into a U.
func Finally[T, U any](c *Chain[T], onSuccess func(context.Context, T) U, onFailure func(context.Context, error) U) U {
	return solo.Finally(c.ctx, c.result, onSuccess, onFailure)
}
