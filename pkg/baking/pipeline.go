package baking

import (
	"context"

	"github.com/ib-77/disjoint/pkg/rop"
	"github.com/ib-77/disjoint/pkg/rop/chain"
)

type Order struct {
	Item        string
	Ingredients []string
	Temperature int
	Fragile     bool
	Score       int
}

// Steps holds the functions Bake runs, in order. Tests swap single steps
// to observe which of them ran.
type Steps struct {
	Validate func(ingredients []string) rop.Either[Error, OkVal]
	Cook     func(ingredients []string, temperature int) rop.Either[Error, OkVal]
	Pack     func(item string, isFragile bool) rop.Either[Error, OkVal]
	Deliver  func(item string) bool
	Rate     func(score int) rop.Either[Error, OkVal]
}

func DefaultSteps() Steps {
	return Steps{
		Validate: ValidateIngredients,
		Cook:     Cook,
		Pack:     Pack,
		Deliver:  Deliver,
		Rate:     Rate,
	}
}

// Bake runs validate, cook, pack, deliver and rate with the default steps.
func Bake(ctx context.Context, order Order) rop.Either[Error, OkVal] {
	return DefaultSteps().Bake(ctx, order)
}

// Bake stops at the first failing step and returns its failure unchanged.
func (s Steps) Bake(ctx context.Context, order Order) rop.Either[Error, OkVal] {
	validated := chain.Start(ctx, s.Validate(order.Ingredients))

	cooked := chain.Then(validated, func(context.Context, OkVal) rop.Either[Error, OkVal] {
		return s.Cook(order.Ingredients, order.Temperature)
	})
	packed := chain.Then(cooked, func(context.Context, OkVal) rop.Either[Error, OkVal] {
		return s.Pack(order.Item, order.Fragile)
	})
	delivered := chain.Map(packed, func(context.Context, OkVal) bool {
		return s.Deliver(order.Item)
	})
	rated := chain.Then(delivered, func(context.Context, bool) rop.Either[Error, OkVal] {
		return s.Rate(order.Score)
	})

	return rated.Result()
}
