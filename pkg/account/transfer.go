package account

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/ib-77/disjoint/pkg/rop"
	"github.com/ib-77/disjoint/pkg/rop/tiny"
)

// Pair holds both accounts after a successful transfer.
type Pair struct {
	Debtor   Account
	Creditor Account
}

// RemoteLedger records a validated transfer on an external system. It may
// fail for infrastructure reasons (network, I/O).
type RemoteLedger interface {
	Record(debtor, creditor Account, amount decimal.Decimal) error
}

// LedgerFunc adapts a plain function to RemoteLedger.
type LedgerFunc func(debtor, creditor Account, amount decimal.Decimal) error

func (f LedgerFunc) Record(debtor, creditor Account, amount decimal.Decimal) error {
	return f(debtor, creditor, amount)
}

var nopLedger = LedgerFunc(func(Account, Account, decimal.Decimal) error { return nil })

// Transfer withdraws amount from debtor and deposits it to creditor.
// The creditor is only touched when the withdrawal succeeded.
func Transfer(debtor, creditor Account, amount decimal.Decimal) rop.Either[Error, Pair] {
	return TransferVia(nopLedger, debtor, creditor, amount)
}

// TransferVia is Transfer with an external ledger that is called once both
// legs validated. An error or panic from the ledger is reported as
// TransactionFailed.
func TransferVia(ledger RemoteLedger, debtor, creditor Account, amount decimal.Decimal) rop.Either[Error, Pair] {
	if ledger == nil {
		ledger = nopLedger
	}

	legs := rop.Bind(debtor.Withdraw(amount), func(d Account) rop.Either[Error, Pair] {
		credited := rop.MapFailure(creditor.Deposit(amount), AsError[NegativeAmount])
		return rop.Map(credited, func(c Account) Pair {
			return Pair{Debtor: d, Creditor: c}
		})
	})

	return rop.Bind(legs, func(p Pair) rop.Either[Error, Pair] {
		return rop.Catch(func() (Pair, error) {
			return p, ledger.Record(debtor, creditor, amount)
		}, transactionFailed)
	})
}

func transactionFailed(cause error) Error {
	return TransactionFailed{Cause: cause}
}

// Operation is one step applied to an account by Apply.
type Operation func(Account) rop.Either[Error, Account]

func DepositOp(amount decimal.Decimal) Operation {
	return func(a Account) rop.Either[Error, Account] {
		return rop.MapFailure(a.Deposit(amount), AsError[NegativeAmount])
	}
}

func WithdrawOp(amount decimal.Decimal) Operation {
	return func(a Account) rop.Either[Error, Account] {
		return a.Withdraw(amount)
	}
}

// Apply runs ops in order and stops at the first failure.
func Apply(ctx context.Context, acc Account, ops ...Operation) rop.Either[Error, Account] {
	c := tiny.FromValue[Error](ctx, acc)
	for _, op := range ops {
		c = c.Then(func(_ context.Context, a Account) rop.Either[Error, Account] {
			return op(a)
		})
	}
	return c.Result()
}
