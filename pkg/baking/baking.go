package baking

import (
	"fmt"
	"slices"

	"github.com/ib-77/disjoint/pkg/rop"
)

const (
	MinTemperature   = 180
	MinRatingScore   = 2
	DefaultMinRating = 3
)

// Error is the closed set of baking failures.
type Error interface {
	error
	bakingError()
}

type BadIngredients struct{}
type TemperatureTooLow struct{}
type PackingFailed struct{}

// PoorRating optionally reports the minimum score that would have passed.
type PoorRating struct {
	MinRequiredScore int
}

func NewPoorRating() PoorRating {
	return PoorRating{MinRequiredScore: DefaultMinRating}
}

func (BadIngredients) bakingError()    {}
func (TemperatureTooLow) bakingError() {}
func (PackingFailed) bakingError()     {}
func (PoorRating) bakingError()        {}

func (BadIngredients) Error() string    { return "bad ingredients" }
func (TemperatureTooLow) Error() string { return "temperature too low" }
func (PackingFailed) Error() string     { return "packing failed" }

func (e PoorRating) Error() string {
	return fmt.Sprintf("poor rating: at least %d required", e.MinRequiredScore)
}

type OkVal struct {
	Message string
}

func ValidateIngredients(ingredients []string) rop.Either[Error, OkVal] {
	if slices.Contains(ingredients, "poison") {
		return rop.Fail[OkVal, Error](BadIngredients{})
	}
	return rop.Succeed[Error](OkVal{Message: "Ingredients ok"})
}

func Cook(ingredients []string, temperature int) rop.Either[Error, OkVal] {
	if temperature < MinTemperature {
		return rop.Fail[OkVal, Error](TemperatureTooLow{})
	}
	return rop.Succeed[Error](OkVal{Message: fmt.Sprintf("Cooked %v ok", ingredients)})
}

// Pack fails for fragile items; they cannot be packed yet.
func Pack(item string, isFragile bool) rop.Either[Error, OkVal] {
	if isFragile {
		return rop.Fail[OkVal, Error](PackingFailed{})
	}
	return rop.Succeed[Error](OkVal{Message: fmt.Sprintf("Packed %s ok", item)})
}

// Deliver always succeeds.
func Deliver(item string) bool {
	return true
}

func Rate(score int) rop.Either[Error, OkVal] {
	if score < MinRatingScore {
		return rop.Fail[OkVal, Error](PoorRating{MinRequiredScore: MinRatingScore})
	}
	return rop.Succeed[Error](OkVal{Message: "Rated Ok"})
}
