package rop

import "fmt"

// Map applies f to the success value. A failure is returned unchanged and
// f is not called.
func Map[F, S, S2 any](e Either[F, S], f func(S) S2) Either[F, S2] {
	if e.isSuccess {
		return Succeed[F](f(e.success))
	}
	return Fail[S2](e.failure)
}

// Bind passes the success value to f and returns its result as is.
// A failure is returned unchanged and f is not called.
func Bind[F, S, S2 any](e Either[F, S], f func(S) Either[F, S2]) Either[F, S2] {
	if e.isSuccess {
		return f(e.success)
	}
	return Fail[S2](e.failure)
}

// MapFailure converts the failure value, typically to widen a narrow
// failure type into a larger sum type before binding.
func MapFailure[F, F2, S any](e Either[F, S], g func(F) F2) Either[F2, S] {
	if e.isSuccess {
		return Succeed[F2](e.success)
	}
	return Fail[S](g(e.failure))
}

func Fold[F, S, Out any](e Either[F, S], onFailure func(F) Out, onSuccess func(S) Out) Out {
	if e.isSuccess {
		return onSuccess(e.success)
	}
	return onFailure(e.failure)
}

// Match runs exactly one of the handlers. Nil handlers are skipped.
func Match[F, S any](e Either[F, S], onFailure func(F), onSuccess func(S)) {
	if e.isSuccess {
		if onSuccess != nil {
			onSuccess(e.success)
		}
		return
	}
	if onFailure != nil {
		onFailure(e.failure)
	}
}

// Catch runs f and converts a returned error, or a panic raised inside f,
// into a failure built by onFault.
func Catch[F, S any](f func() (S, error), onFault func(error) F) (res Either[F, S]) {
	defer func() {
		if r := recover(); r != nil {
			err, ok := r.(error)
			if !ok {
				err = fmt.Errorf("panic: %v", r)
			}
			res = Fail[S](onFault(err))
		}
	}()

	s, err := f()
	if err != nil {
		return Fail[S](onFault(err))
	}
	return Succeed[F](s)
}
