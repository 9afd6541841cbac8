// Package account implements Account, an immutable value object holding a
// non-negative balance, on top of rop.Either.
//
// Every way to obtain or update an Account validates first and reports
// rule violations (NegativeAmount, NotEnoughFunds) as the failure branch of
// an Either. Unexpected infrastructure faults raised while recording a
// transfer are caught and reported as TransactionFailed, so callers handle
// all outcomes in one place.
package account
