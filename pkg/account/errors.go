package account

import "fmt"

// Error is the closed set of account failures. Only the variants declared
// in this package implement it.
type Error interface {
	error
	accountError()
}

// NegativeAmount is returned when an initial balance or an amount is below zero.
type NegativeAmount struct{}

// NotEnoughFunds is returned when a withdrawal would drive the balance below zero.
type NotEnoughFunds struct{}

// AccountNotFound is returned by repositories for unknown users.
type AccountNotFound struct{}

// TransactionFailed wraps an unexpected infrastructure fault raised during
// a transfer.
type TransactionFailed struct {
	Cause error
}

func (NegativeAmount) accountError()    {}
func (NotEnoughFunds) accountError()    {}
func (AccountNotFound) accountError()   {}
func (TransactionFailed) accountError() {}

func (NegativeAmount) Error() string  { return "negative amount" }
func (NotEnoughFunds) Error() string  { return "not enough funds" }
func (AccountNotFound) Error() string { return "account not found" }

func (e TransactionFailed) Error() string {
	if e.Cause == nil {
		return "transaction failed"
	}
	return fmt.Sprintf("transaction failed: %v", e.Cause)
}

func (e TransactionFailed) Unwrap() error {
	return e.Cause
}

// AsError lifts a single variant into Error, typically through
// rop.MapFailure before binding into a chain typed on Error.
func AsError[E Error](e E) Error {
	return e
}
