package chain

import (
	"context"

	"github.com/ib-77/disjoint/pkg/rop"
	"github.com/ib-77/disjoint/pkg/rop/solo"
)

// Chain wraps a rop.Either with context to enable fluent chaining
type Chain[F, S any] struct {
	ctx    context.Context
	result rop.Either[F, S]
}

// Start creates a new chain from a rop.Either
func Start[F, S any](ctx context.Context, result rop.Either[F, S]) *Chain[F, S] {
	return &Chain[F, S]{
		ctx:    ctx,
		result: result,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[F, S any](ctx context.Context, value S) *Chain[F, S] {
	return &Chain[F, S]{
		ctx:    ctx,
		result: rop.Succeed[F](value),
	}
}

// Result returns the underlying rop.Either
func (c *Chain[F, S]) Result() rop.Either[F, S] {
	return c.result
}

// Then chains a function that returns rop.Either[F, U]
func Then[F, S, U any](c *Chain[F, S], onSuccess func(context.Context, S) rop.Either[F, U]) *Chain[F, U] {
	return &Chain[F, U]{
		ctx:    c.ctx,
		result: solo.Switch(c.ctx, c.result, onSuccess),
	}
}

// ThenTry chains a function that returns (U, error)
func ThenTry[F, S, U any](c *Chain[F, S], tryOnSuccess func(context.Context, S) (U, error), onErr func(error) F) *Chain[F, U] {
	return &Chain[F, U]{
		ctx:    c.ctx,
		result: solo.Try(c.ctx, c.result, tryOnSuccess, onErr),
	}
}

// Map chains a pure transformation function
func Map[F, S, U any](c *Chain[F, S], onSuccess func(context.Context, S) U) *Chain[F, U] {
	return &Chain[F, U]{
		ctx:    c.ctx,
		result: solo.Map(c.ctx, c.result, onSuccess),
	}
}

// Ensure performs a side effect without changing the result
func (c *Chain[F, S]) Ensure(onSuccess func(context.Context, S)) *Chain[F, S] {
	return &Chain[F, S]{
		ctx:    c.ctx,
		result: solo.Tee(c.ctx, c.result, onSuccess),
	}
}

// Finally collapses the chain into a final result using solo.Finally
func Finally[F, S, U any](c *Chain[F, S], onSuccess func(context.Context, S) U, onFailure func(context.Context, F) U) U {
	return solo.Finally(c.ctx, c.result, onSuccess, onFailure)
}
