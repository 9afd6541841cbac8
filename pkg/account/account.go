package account

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ib-77/disjoint/pkg/rop"
)

// Account is an immutable monetary balance. The balance is never negative:
// every way of obtaining an Account goes through validation, and updates
// return a new value.
type Account struct {
	balance decimal.Decimal
}

// Create is the smart constructor for Account.
func Create(initialBalance decimal.Decimal) rop.Either[NegativeAmount, Account] {
	return applyAmount(initialBalance, func(d decimal.Decimal) Account {
		return Account{balance: d}
	})
}

// CreateOrAbort is Create for callers that already know the balance is valid.
// It panics on a negative balance and must not be used in production paths;
// it exists for tests and demos that want to skip unwrapping an Either.
func CreateOrAbort(initialBalance decimal.Decimal) Account {
	acc, ok := Create(initialBalance).Success()
	if !ok {
		panic(fmt.Errorf("account: create with balance %s: %w", initialBalance, NegativeAmount{}))
	}
	return acc
}

func applyAmount(amount decimal.Decimal, fn func(decimal.Decimal) Account) rop.Either[NegativeAmount, Account] {
	if amount.IsNegative() {
		return rop.Fail[Account](NegativeAmount{})
	}
	return rop.Succeed[NegativeAmount](fn(amount))
}

func (a Account) Balance() decimal.Decimal {
	return a.balance
}

// Deposit returns a new account holding balance + amount.
func (a Account) Deposit(amount decimal.Decimal) rop.Either[NegativeAmount, Account] {
	return applyAmount(amount, func(d decimal.Decimal) Account {
		return Account{balance: a.balance.Add(d)}
	})
}

// Withdraw returns a new account holding balance - amount. A negative amount
// is reported before insufficient funds are checked.
func (a Account) Withdraw(amount decimal.Decimal) rop.Either[Error, Account] {
	if amount.IsNegative() {
		return rop.Fail[Account, Error](NegativeAmount{})
	}

	remaining := a.balance.Sub(amount)
	if remaining.IsNegative() {
		return rop.Fail[Account, Error](NotEnoughFunds{})
	}
	return rop.Succeed[Error](Account{balance: remaining})
}

// Equal reports whether both accounts hold numerically equal balances.
func (a Account) Equal(other Account) bool {
	return a.balance.Equal(other.balance)
}

func (a Account) String() string {
	return "Account(" + a.balance.String() + ")"
}
