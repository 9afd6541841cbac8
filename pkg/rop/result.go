package rop

import "fmt"

// Either holds exactly one of a failure value F or a success value S.
// Values are only produced by Fail and Succeed.
type Either[F, S any] struct {
	failure   F
	success   S
	isSuccess bool
}

func Succeed[F, S any](s S) Either[F, S] {
	return Either[F, S]{
		success:   s,
		isSuccess: true,
	}
}

func Fail[S, F any](f F) Either[F, S] {
	return Either[F, S]{
		failure:   f,
		isSuccess: false,
	}
}

func (e Either[F, S]) IsSuccess() bool {
	return e.isSuccess
}

func (e Either[F, S]) IsFailure() bool {
	return !e.isSuccess
}

// Success returns the success value and true, or the zero S and false.
func (e Either[F, S]) Success() (S, bool) {
	if e.isSuccess {
		return e.success, true
	}
	var zero S
	return zero, false
}

// Failure returns the failure value and true, or the zero F and false.
func (e Either[F, S]) Failure() (F, bool) {
	if !e.isSuccess {
		return e.failure, true
	}
	var zero F
	return zero, false
}

func (e Either[F, S]) SuccessOr(def S) S {
	if e.isSuccess {
		return e.success
	}
	return def
}

func (e Either[F, S]) String() string {
	if e.isSuccess {
		return fmt.Sprintf("Success(%v)", e.success)
	}
	return fmt.Sprintf("Failure(%v)", e.failure)
}
