package solo

import (
	"context"

	"github.com/ib-77/disjoint/pkg/rop"
)

func Succeed[F, S any](input S) rop.Either[F, S] {
	return rop.Succeed[F](input)
}

func Fail[S, F any](failure F) rop.Either[F, S] {
	return rop.Fail[S](failure)
}

func Validate[F, S any](ctx context.Context, input S,
	validate func(ctx context.Context, in S) (isValid bool, failure F)) rop.Either[F, S] {
	return AndValidate(ctx, rop.Succeed[F](input), validate)
}

func AndValidate[F, S any](ctx context.Context, input rop.Either[F, S],
	validate func(ctx context.Context, in S) (valid bool, failure F)) rop.Either[F, S] {

	s, ok := input.Success()
	if !ok {
		return input
	}

	if isValid, failure := validate(ctx, s); !isValid {
		return rop.Fail[S](failure)
	}
	return input
}

// ValidateAll runs every validator against input. With breakOnError the
// first failure is returned; otherwise failures are combined with merge.
func ValidateAll[F, S any](
	ctx context.Context,
	input rop.Either[F, S],
	breakOnError bool, // exit on first error
	merge func(acc, next F) F,
	inputsF ...func(ctx context.Context, in rop.Either[F, S]) rop.Either[F, S]) rop.Either[F, S] {

	var (
		acc    F
		failed bool
	)
	return Join(
		ctx,
		input,
		breakOnError,
		func(ctx context.Context, current rop.Either[F, S]) rop.Either[F, S] {
			if f, ok := current.Failure(); ok {
				if failed {
					acc = merge(acc, f)
				} else {
					acc, failed = f, true
				}
			}

			if !failed {
				return current
			}
			return rop.Fail[S](acc)
		},
		inputsF...,
	)
}

// Switch is the context-aware bind.
func Switch[F, In, Out any](ctx context.Context,
	input rop.Either[F, In],
	onSuccess func(ctx context.Context, r In) rop.Either[F, Out]) rop.Either[F, Out] {

	return rop.Bind(input, func(r In) rop.Either[F, Out] {
		return onSuccess(ctx, r)
	})
}

func Map[F, In, Out any](ctx context.Context,
	input rop.Either[F, In],
	onSuccess func(ctx context.Context, r In) Out) rop.Either[F, Out] {

	return rop.Map(input, func(r In) Out {
		return onSuccess(ctx, r)
	})
}

func Tee[F, S any](ctx context.Context,
	input rop.Either[F, S],
	onSuccess func(ctx context.Context, r S)) rop.Either[F, S] {

	if s, ok := input.Success(); ok {
		onSuccess(ctx, s)
	}
	return input
}

func TeeIf[F, S any](ctx context.Context,
	input rop.Either[F, S],
	condition func(ctx context.Context, r S) bool,
	onSuccessAndCondition func(ctx context.Context, r S)) rop.Either[F, S] {

	if s, ok := input.Success(); ok {
		if condition(ctx, s) {
			onSuccessAndCondition(ctx, s)
		}
	}
	return input
}

func DoubleTee[F, S any](ctx context.Context, input rop.Either[F, S],
	onSuccess func(ctx context.Context, r S),
	onFailure func(ctx context.Context, f F)) rop.Either[F, S] {

	rop.Match(input,
		func(f F) { onFailure(ctx, f) },
		func(s S) { onSuccess(ctx, s) })
	return input
}

func DoubleMap[F, In, Out any](ctx context.Context, input rop.Either[F, In],
	onSuccess func(ctx context.Context, r In) Out,
	onFailure func(ctx context.Context, f F)) rop.Either[F, Out] {

	if f, ok := input.Failure(); ok {
		onFailure(ctx, f)
		return rop.Fail[Out](f)
	}
	return Map(ctx, input, onSuccess)
}

// Try calls a function returning (Out, error) and converts a non-nil error
// into a failure via onErr.
func Try[F, In, Out any](ctx context.Context, input rop.Either[F, In],
	onTryExecute func(ctx context.Context, r In) (Out, error),
	onErr func(err error) F) rop.Either[F, Out] {

	return rop.Bind(input, func(r In) rop.Either[F, Out] {
		out, err := onTryExecute(ctx, r)
		if err != nil {
			return rop.Fail[Out](onErr(err))
		}
		return rop.Succeed[F](out)
	})
}

func FailOnError[F, S any](ctx context.Context, input rop.Either[F, S],
	maybeFailure func(ctx context.Context, in S) (F, bool)) rop.Either[F, S] {

	if s, ok := input.Success(); ok {
		if f, failed := maybeFailure(ctx, s); failed {
			return rop.Fail[S](f)
		}
	}
	return input
}

func Finally[F, In, Out any](ctx context.Context, input rop.Either[F, In],
	onSuccess func(ctx context.Context, r In) Out,
	onFailure func(ctx context.Context, f F) Out) Out {

	return rop.Fold(input,
		func(f F) Out { return onFailure(ctx, f) },
		func(r In) Out { return onSuccess(ctx, r) })
}

func Join[F, S any](ctx context.Context,
	input rop.Either[F, S],
	breakOnError bool, // exit on first error
	concat func(ctx context.Context, current rop.Either[F, S]) rop.Either[F, S],
	inputsF ...func(ctx context.Context, in rop.Either[F, S]) rop.Either[F, S]) rop.Either[F, S] {

	if len(inputsF) == 0 || concat == nil || ctx.Err() != nil {
		return input
	}

	finalResult := concat(ctx, inputsF[0](ctx, input))

	if ctx.Err() != nil {
		return finalResult
	}

	if finalResult.IsSuccess() || !breakOnError {
		for _, in := range inputsF[1:] {
			if ctx.Err() != nil {
				return finalResult
			}

			nextRes := concat(ctx, in(ctx, finalResult))
			if nextRes.IsFailure() && breakOnError {
				return nextRes
			}
			finalResult = nextRes
		}
	}
	return finalResult
}
