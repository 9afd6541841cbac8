// Package chain provides a fluent wrapper around rop.Either[F, S]
// for building synchronous railway chains using solo primitives.
//
// It composes functions like Switch, Map, Try, Tee, and Finally behind a
// convenient Chain[F, S] type. Then, ThenTry, Map and Finally are free
// functions so that each step may change the success type while the
// failure type stays fixed.
//
// Key operations:
// - Start/FromValue: begin a chain from an Either[F, S] or value
// - Then: switch to a new Either[F, U] via a function
// - ThenTry: call a function (U, error) and convert the error to a failure
// - Map: transform the successful value (S -> U)
// - Ensure: run side effects on success without changing the result
// - Finally: collapse the chain into a final value via handlers
package chain
