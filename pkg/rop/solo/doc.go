// Package solo contains single-value, synchronous railway primitives that
// operate on rop.Either[F, S]. Every callback receives a context.Context and
// runs at most once; failures pass through untouched.
//
// Highlights:
// - Succeed/Fail: construct Either[F, S]
// - Validate/AndValidate/ValidateAll: apply validation producing a failure on invalid input
// - Switch: bind from Either[F, In] to Either[F, Out]
// - Map/DoubleMap: transform successful values (with an optional failure hook)
// - Try: call a function (Out, error) and convert the error to a failure
// - Tee/TeeIf/DoubleTee: side-effect helpers
// - Finally: reduce to a concrete value via success/failure handlers
package solo
