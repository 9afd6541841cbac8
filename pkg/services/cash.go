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

// DepositCash adds cash to a stored account. The result carries no value;
// the saved account is the side effect.
type DepositCash struct {
	repo   account.Repository
	logger *zap.Logger
}

func NewDepositCash(repo account.Repository, logger *zap.Logger) *DepositCash {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DepositCash{repo: repo, logger: logger}
}

func (s *DepositCash) Execute(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) rop.Either[account.Error, struct{}] {
	return updateStored(ctx, s.repo, s.logger.With(zap.String("op", "deposit")), userID, amount,
		account.DepositOp(amount))
}

// WithdrawCash takes cash from a stored account.
type WithdrawCash struct {
	repo   account.Repository
	logger *zap.Logger
}

func NewWithdrawCash(repo account.Repository, logger *zap.Logger) *WithdrawCash {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WithdrawCash{repo: repo, logger: logger}
}

func (s *WithdrawCash) Execute(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) rop.Either[account.Error, struct{}] {
	return updateStored(ctx, s.repo, s.logger.With(zap.String("op", "withdraw")), userID, amount,
		account.WithdrawOp(amount))
}

// updateStored loads, applies op and saves exactly once on success.
func updateStored(ctx context.Context, repo account.Repository, log *zap.Logger,
	userID uuid.UUID, amount decimal.Decimal, op account.Operation) rop.Either[account.Error, struct{}] {

	log = log.With(zap.Stringer("user_id", userID), zap.Stringer("amount", amount))

	found := chain.Start(ctx, findAccount(repo, userID))
	updated := chain.Then(found, func(_ context.Context, acc account.Account) rop.Either[account.Error, account.Account] {
		return op(acc)
	})
	saved := updated.Ensure(func(_ context.Context, acc account.Account) {
		repo.Save(userID, acc)
		log.Info("account saved", zap.Stringer("balance", acc.Balance()))
	})
	done := chain.Map(saved, func(context.Context, account.Account) struct{} {
		return struct{}{}
	})

	return solo.DoubleTee(ctx, done.Result(),
		func(context.Context, struct{}) {},
		func(_ context.Context, f account.Error) { log.Warn("account update rejected", zap.Error(f)) })
}
