package account

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/ib-77/disjoint/pkg/rop"
)

func amount(n int64) decimal.Decimal {
	return decimal.NewFromInt(n)
}

func requireAccount[F any](t *testing.T, res rop.Either[F, Account], want int64) Account {
	t.Helper()
	acc, ok := res.Success()
	require.True(t, ok, "expected success, got %v", res)
	assert.True(t, acc.Balance().Equal(amount(want)), "expected balance %d, got %s", want, acc.Balance())
	return acc
}

func requireFailure[F, S any](t *testing.T, res rop.Either[F, S]) F {
	t.Helper()
	f, ok := res.Failure()
	require.True(t, ok, "expected failure, got %v", res)
	return f
}

func TestCreate(t *testing.T) {
	t.Parallel()
	res := Create(amount(100))
	assert.True(t, res.IsSuccess())
	requireAccount(t, res, 100)
}

func TestCreate_NegativeAmount(t *testing.T) {
	t.Parallel()
	assert.Equal(t, NegativeAmount{}, requireFailure(t, Create(amount(-100))))
}

func TestCreate_Zero(t *testing.T) {
	t.Parallel()
	requireAccount(t, Create(decimal.Zero), 0)
}

func TestCreateOrAbort(t *testing.T) {
	t.Parallel()
	acc := CreateOrAbort(amount(100))
	assert.True(t, acc.Equal(requireAccount(t, Create(amount(100)), 100)))
	assert.Equal(t, "Account(100)", acc.String())
}

func TestCreateOrAbort_Panics(t *testing.T) {
	t.Parallel()
	assert.PanicsWithError(t, "account: create with balance -100: negative amount", func() {
		CreateOrAbort(amount(-100))
	})
}

func TestDeposit(t *testing.T) {
	t.Parallel()
	acc := CreateOrAbort(amount(100))
	requireAccount(t, acc.Deposit(amount(100)), 200)
	// original value is untouched
	assert.True(t, acc.Balance().Equal(amount(100)))
}

func TestDeposit_NegativeAmount(t *testing.T) {
	t.Parallel()
	acc := CreateOrAbort(amount(100))
	assert.Equal(t, NegativeAmount{}, requireFailure(t, acc.Deposit(amount(-100))))
}

func TestDeposit_Fractional(t *testing.T) {
	t.Parallel()
	acc := CreateOrAbort(decimal.RequireFromString("0.1"))
	res := acc.Deposit(decimal.RequireFromString("0.2"))
	got, ok := res.Success()
	require.True(t, ok)
	assert.True(t, got.Balance().Equal(decimal.RequireFromString("0.3")), "got %s", got.Balance())
}

func TestWithdraw(t *testing.T) {
	t.Parallel()
	acc := CreateOrAbort(amount(100))
	requireAccount(t, acc.Withdraw(amount(50)), 50)
}

func TestWithdraw_WholeBalance(t *testing.T) {
	t.Parallel()
	acc := CreateOrAbort(amount(100))
	requireAccount(t, acc.Withdraw(amount(100)), 0)
}

func TestWithdraw_NegativeAmount(t *testing.T) {
	t.Parallel()
	acc := CreateOrAbort(amount(100))
	assert.Equal(t, Error(NegativeAmount{}), requireFailure(t, acc.Withdraw(amount(-50))))
}

func TestWithdraw_NotEnoughFunds(t *testing.T) {
	t.Parallel()
	acc := CreateOrAbort(amount(100))
	assert.Equal(t, Error(NotEnoughFunds{}), requireFailure(t, acc.Withdraw(amount(200))))
	assert.True(t, acc.Balance().Equal(amount(100)))
}

func TestNegativeAmount_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		neg := decimal.NewFromInt(rapid.Int64Range(-1_000_000, -1).Draw(rt, "neg"))
		start := decimal.NewFromInt(rapid.Int64Range(0, 1_000_000).Draw(rt, "start"))
		acc, ok := Create(start).Success()
		if !ok {
			rt.Fatalf("valid start %s rejected", start)
		}

		if f, ok := Create(neg).Failure(); !ok || f != (NegativeAmount{}) {
			rt.Fatalf("Create(%s) = %v", neg, Create(neg))
		}
		if f, ok := acc.Deposit(neg).Failure(); !ok || f != (NegativeAmount{}) {
			rt.Fatalf("Deposit(%s) = %v", neg, acc.Deposit(neg))
		}
		if f, ok := acc.Withdraw(neg).Failure(); !ok || f != Error(NegativeAmount{}) {
			rt.Fatalf("Withdraw(%s) = %v", neg, acc.Withdraw(neg))
		}
	})
}

func TestBalanceNeverNegative_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		acc := CreateOrAbort(decimal.NewFromInt(rapid.Int64Range(0, 1000).Draw(rt, "start")))
		steps := rapid.IntRange(1, 20).Draw(rt, "steps")
		for i := 0; i < steps; i++ {
			amt := decimal.NewFromInt(rapid.Int64Range(-50, 500).Draw(rt, "amount"))
			var res rop.Either[Error, Account]
			if rapid.Bool().Draw(rt, "deposit") {
				res = DepositOp(amt)(acc)
			} else {
				res = WithdrawOp(amt)(acc)
			}
			if next, ok := res.Success(); ok {
				acc = next
			}
			if acc.Balance().IsNegative() {
				rt.Fatalf("balance went negative: %s", acc.Balance())
			}
		}
	})
}

func TestErrorMessages(t *testing.T) {
	t.Parallel()
	assert.EqualError(t, NegativeAmount{}, "negative amount")
	assert.EqualError(t, NotEnoughFunds{}, "not enough funds")
	assert.EqualError(t, AccountNotFound{}, "account not found")
	assert.EqualError(t, TransactionFailed{}, "transaction failed")
}
