package baking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/disjoint/pkg/rop"
)

const pie = "baked cherry pie"

var goodIngredients = []string{"sugar", "water", "flower", "cherries"}

func TestInterleavedResultChecking(t *testing.T) {
	t.Parallel()
	ingredients := []string{"sugar", "water", "flower"}

	prepped := ValidateIngredients(ingredients)
	v, ok := prepped.Success()
	require.True(t, ok)
	assert.Equal(t, "Ingredients ok", v.Message)

	cooked := rop.Bind(prepped, func(OkVal) rop.Either[Error, OkVal] { return Cook(ingredients, 180) })
	v, ok = cooked.Success()
	require.True(t, ok)
	assert.Equal(t, "Cooked [sugar water flower] ok", v.Message)

	packed := rop.Bind(cooked, func(OkVal) rop.Either[Error, OkVal] { return Pack(pie, false) })
	v, ok = packed.Success()
	require.True(t, ok)
	assert.Equal(t, "Packed baked cherry pie ok", v.Message)

	// the success type changes from OkVal to bool
	delivered := rop.Map(packed, func(OkVal) bool { return Deliver(pie) })
	d, ok := delivered.Success()
	require.True(t, ok)
	assert.True(t, d)
}

func TestHappyPath_RatingAppended(t *testing.T) {
	t.Parallel()
	res := Bake(context.Background(), Order{
		Item: pie, Ingredients: goodIngredients, Temperature: 180, Score: 5,
	})
	assert.Equal(t, rop.Succeed[Error](OkVal{Message: "Rated Ok"}), res)
}

// spySteps wraps the default steps and records the name of each one that ran.
func spySteps(calls *[]string) Steps {
	d := DefaultSteps()
	return Steps{
		Validate: func(in []string) rop.Either[Error, OkVal] {
			*calls = append(*calls, "validate")
			return d.Validate(in)
		},
		Cook: func(in []string, temp int) rop.Either[Error, OkVal] {
			*calls = append(*calls, "cook")
			return d.Cook(in, temp)
		},
		Pack: func(item string, fragile bool) rop.Either[Error, OkVal] {
			*calls = append(*calls, "pack")
			return d.Pack(item, fragile)
		},
		Deliver: func(item string) bool {
			*calls = append(*calls, "deliver")
			return d.Deliver(item)
		},
		Rate: func(score int) rop.Either[Error, OkVal] {
			*calls = append(*calls, "rate")
			return d.Rate(score)
		},
	}
}

func TestShortCircuit(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		order     Order
		want      Error
		wantCalls []string
	}{
		{
			name:      "bad ingredients",
			order:     Order{Item: pie, Ingredients: []string{"sugar", "water", "flower", "poison"}, Temperature: 180, Score: 5},
			want:      BadIngredients{},
			wantCalls: []string{"validate"},
		},
		{
			name:      "temperature too low",
			order:     Order{Item: pie, Ingredients: goodIngredients, Temperature: 130, Score: 5},
			want:      TemperatureTooLow{},
			wantCalls: []string{"validate", "cook"},
		},
		{
			name:      "packing failed",
			order:     Order{Item: pie, Ingredients: goodIngredients, Temperature: 180, Fragile: true, Score: 5},
			want:      PackingFailed{},
			wantCalls: []string{"validate", "cook", "pack"},
		},
		{
			name:      "poor rating",
			order:     Order{Item: pie, Ingredients: goodIngredients, Temperature: 180, Score: 1},
			want:      PoorRating{MinRequiredScore: 2},
			wantCalls: []string{"validate", "cook", "pack", "deliver", "rate"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls []string
			res := spySteps(&calls).Bake(context.Background(), tt.order)

			f, ok := res.Failure()
			require.True(t, ok, "expected failure, got %v", res)
			assert.Equal(t, tt.want, f)
			assert.Equal(t, tt.wantCalls, calls)
		})
	}
}

func TestPoorRating_ExhaustiveMatch(t *testing.T) {
	t.Parallel()
	res := Bake(context.Background(), Order{Item: pie, Ingredients: goodIngredients, Temperature: 180, Score: 1})
	f, ok := res.Failure()
	require.True(t, ok)

	switch e := f.(type) {
	case BadIngredients, TemperatureTooLow, PackingFailed:
		t.Fatalf("unexpected %T", e)
	case PoorRating:
		assert.Equal(t, MinRatingScore, e.MinRequiredScore)
	default:
		t.Fatalf("unknown baking error %T", e)
	}
}

func TestPoorRating_Default(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 3, NewPoorRating().MinRequiredScore)
	assert.EqualError(t, NewPoorRating(), "poor rating: at least 3 required")
}
