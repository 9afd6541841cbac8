package tiny

import (
	"context"

	"github.com/ib-77/disjoint/pkg/rop"
	"github.com/ib-77/disjoint/pkg/rop/solo"
)

type Chain[F, S any] struct {
	ctx context.Context
	res rop.Either[F, S]
}

func Start[F, S any](ctx context.Context, r rop.Either[F, S]) Chain[F, S] {
	return Chain[F, S]{ctx: ctx, res: r}
}

func FromValue[F, S any](ctx context.Context, v S) Chain[F, S] {
	return Start(ctx, rop.Succeed[F](v))
}

func (c Chain[F, S]) Result() rop.Either[F, S] {
	return c.res
}

// Then composes functions that already return rop.Either[F, S]
func (c Chain[F, S]) Then(onSuccess func(ctx context.Context, s S) rop.Either[F, S]) Chain[F, S] {
	return Chain[F, S]{ctx: c.ctx, res: solo.Switch(c.ctx, c.res, onSuccess)}
}

// ThenTry composes functions that return (S, error), like repo calls
func (c Chain[F, S]) ThenTry(try func(ctx context.Context, s S) (S, error), onErr func(error) F) Chain[F, S] {
	return Chain[F, S]{ctx: c.ctx, res: solo.Try(c.ctx, c.res, try, onErr)}
}

// Map transforms the successful value to a new value
func (c Chain[F, S]) Map(onSuccess func(ctx context.Context, s S) S) Chain[F, S] {
	return Chain[F, S]{ctx: c.ctx, res: solo.Map(c.ctx, c.res, onSuccess)}
}

func (c Chain[F, S]) RepeatUntil(onSuccess func(ctx context.Context, s S) rop.Either[F, S],
	until func(ctx context.Context, s S) bool) Chain[F, S] {

	if c.res.IsFailure() {
		return c
	}

	for {
		c = c.Then(onSuccess)

		s, ok := c.res.Success()
		if !ok || !until(c.ctx, s) {
			return c
		}
	}
}

func (c Chain[F, S]) While(onSuccess func(ctx context.Context, s S) rop.Either[F, S],
	while func(ctx context.Context, s S) bool) Chain[F, S] {

	for {
		s, ok := c.res.Success()
		if !ok || !while(c.ctx, s) {
			return c
		}
		c = c.Then(onSuccess)
	}
}

// Or returns the first successful chain, or the first failure when none
// succeeded.
func (c Chain[F, S]) Or(alternatives ...Chain[F, S]) Chain[F, S] {
	if c.res.IsSuccess() {
		return c
	}
	for _, alt := range alternatives {
		if alt.res.IsSuccess() {
			return alt
		}
	}
	return c
}

// And returns the first failing chain, or the last one when all succeeded.
func (c Chain[F, S]) And(required ...Chain[F, S]) Chain[F, S] {
	last := c
	for _, ch := range append([]Chain[F, S]{c}, required...) {
		if ch.res.IsFailure() {
			return ch
		}
		last = ch
	}
	return last
}

// Ensure triggers side effects for success/failure without changing the result
func (c Chain[F, S]) Ensure(onSuccess func(context.Context, S), onFailure func(context.Context, F)) Chain[F, S] {
	rop.Match(c.res,
		func(f F) {
			if onFailure != nil {
				onFailure(c.ctx, f)
			}
		},
		func(s S) {
			if onSuccess != nil {
				onSuccess(c.ctx, s)
			}
		})
	return c
}

// Finally collapses the chain to a final value, delegating to solo.Finally
func (c Chain[F, S]) Finally(
	onSuccess func(context.Context, S) S,
	onFailure func(context.Context, F) S,
) S {
	return solo.Finally(c.ctx, c.res, onSuccess, onFailure)
}
