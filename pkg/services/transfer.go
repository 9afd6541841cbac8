package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/ib-77/disjoint/pkg/account"
	"github.com/ib-77/disjoint/pkg/rop"
	"github.com/ib-77/disjoint/pkg/rop/chain"
	"github.com/ib-77/disjoint/pkg/rop/solo"
)

// TransferMoney moves money between two account values the caller holds.
type TransferMoney struct {
	ledger account.RemoteLedger
	logger *zap.Logger
}

func NewTransferMoney(ledger account.RemoteLedger, logger *zap.Logger) *TransferMoney {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TransferMoney{ledger: ledger, logger: logger}
}

func (s *TransferMoney) Execute(ctx context.Context, debtor, creditor account.Account,
	amount decimal.Decimal) rop.Either[account.Error, account.Pair] {

	res := account.TransferVia(s.ledger, debtor, creditor, amount)
	return solo.DoubleTee(ctx, res,
		func(_ context.Context, p account.Pair) {
			s.logger.Info("transfer completed",
				zap.Stringer("amount", amount),
				zap.Stringer("debtor_balance", p.Debtor.Balance()),
				zap.Stringer("creditor_balance", p.Creditor.Balance()))
		},
		func(_ context.Context, f account.Error) {
			s.logger.Warn("transfer rejected", zap.Stringer("amount", amount), zap.Error(f))
		})
}

// TransferBetweenUsers loads both accounts, transfers and saves both only
// when every step succeeded.
type TransferBetweenUsers struct {
	repo   account.Repository
	ledger account.RemoteLedger
	logger *zap.Logger
}

func NewTransferBetweenUsers(repo account.Repository, ledger account.RemoteLedger, logger *zap.Logger) *TransferBetweenUsers {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TransferBetweenUsers{repo: repo, ledger: ledger, logger: logger}
}

func (s *TransferBetweenUsers) Execute(ctx context.Context, debtorID, creditorID uuid.UUID,
	amount decimal.Decimal) rop.Either[account.Error, account.Pair] {

	log := s.logger.With(
		zap.Stringer("debtor_id", debtorID),
		zap.Stringer("creditor_id", creditorID),
		zap.Stringer("amount", amount))

	debtor := chain.Start(ctx, findAccount(s.repo, debtorID))
	transferred := chain.Then(debtor, func(_ context.Context, d account.Account) rop.Either[account.Error, account.Pair] {
		return rop.Bind(findAccount(s.repo, creditorID), func(c account.Account) rop.Either[account.Error, account.Pair] {
			return account.TransferVia(s.ledger, d, c, amount)
		})
	})

	saved := transferred.Ensure(func(_ context.Context, p account.Pair) {
		// a self transfer nets to zero; saving both legs would mint money
		if debtorID == creditorID {
			return
		}
		s.repo.Save(debtorID, p.Debtor)
		s.repo.Save(creditorID, p.Creditor)
	})

	return solo.DoubleTee(ctx, saved.Result(),
		func(context.Context, account.Pair) { log.Info("transfer between users saved") },
		func(_ context.Context, f account.Error) { log.Warn("transfer between users failed", zap.Error(f)) })
}

func findAccount(repo account.Repository, userID uuid.UUID) rop.Either[account.Error, account.Account] {
	return rop.MapFailure(repo.FindBy(userID), account.AsError[account.AccountNotFound])
}
