package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/ib-77/disjoint/pkg/account"
	"github.com/ib-77/disjoint/pkg/account/memory"
	"github.com/ib-77/disjoint/pkg/rop"
	"github.com/ib-77/disjoint/pkg/rop/solo"
	"github.com/ib-77/disjoint/pkg/services"
)

var errAccountExists = errors.New("account already exists")

func parseUserID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid user id %q: %w", s, err)
	}
	return id, nil
}

func parseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return d, nil
}

// report prints the outcome and turns a failure into a command error.
func report[F error, S any](cmd *cobra.Command, op string, res rop.Either[F, S], onSuccess func(S) string) error {
	return rop.Fold(res,
		func(f F) error { return fmt.Errorf("%s: %w", op, f) },
		func(s S) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), onSuccess(s))
			return err
		})
}

func (a *app) openCmd() *cobra.Command {
	var userID string

	c := &cobra.Command{
		Use:   "open <balance>",
		Short: "Open an account with an initial balance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			balance, err := parseAmount(args[0])
			if err != nil {
				return err
			}
			id := uuid.New()
			if userID != "" {
				if id, err = parseUserID(userID); err != nil {
					return err
				}
			}

			repo, err := openLedger(a.cfg.LedgerFile, true)
			if err != nil {
				return err
			}
			if repo.FindBy(id).IsSuccess() {
				return fmt.Errorf("open %s: %w", id, errAccountExists)
			}

			created := solo.Tee(cmd.Context(), account.Create(balance), func(_ context.Context, acc account.Account) {
				repo.Save(id, acc)
			})
			if err := report(cmd, "open", created, func(acc account.Account) string {
				return fmt.Sprintf("%s %s", id, acc.Balance())
			}); err != nil {
				return err
			}
			return memory.WriteYAML(a.cfg.LedgerFile, repo)
		},
	}

	c.Flags().StringVar(&userID, "user", "", "user id (generated when omitted)")
	return c
}

func (a *app) balanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "balance <user-id>",
		Short: "Print the balance of an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseUserID(args[0])
			if err != nil {
				return err
			}
			repo, err := openLedger(a.cfg.LedgerFile, false)
			if err != nil {
				return err
			}
			return report(cmd, "balance", repo.FindBy(id), func(acc account.Account) string {
				return acc.Balance().String()
			})
		},
	}
}

type cashService interface {
	Execute(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) rop.Either[account.Error, struct{}]
}

func (a *app) cashCmd(use, short string, build func(account.Repository) cashService) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <user-id> <amount>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseUserID(args[0])
			if err != nil {
				return err
			}
			amt, err := parseAmount(args[1])
			if err != nil {
				return err
			}
			repo, err := openLedger(a.cfg.LedgerFile, false)
			if err != nil {
				return err
			}

			res := build(repo).Execute(cmd.Context(), id, amt)
			if err := report(cmd, use, res, func(struct{}) string {
				acc, _ := repo.FindBy(id).Success()
				return acc.Balance().String()
			}); err != nil {
				return err
			}
			return memory.WriteYAML(a.cfg.LedgerFile, repo)
		},
	}
}

func (a *app) depositCmd() *cobra.Command {
	return a.cashCmd("deposit", "Deposit cash into an account", func(repo account.Repository) cashService {
		return services.NewDepositCash(repo, a.logger)
	})
}

func (a *app) withdrawCmd() *cobra.Command {
	return a.cashCmd("withdraw", "Withdraw cash from an account", func(repo account.Repository) cashService {
		return services.NewWithdrawCash(repo, a.logger)
	})
}

func (a *app) transferCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "transfer <from-user-id> <to-user-id> <amount>",
		Short: "Transfer money between two accounts",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := parseUserID(args[0])
			if err != nil {
				return err
			}
			to, err := parseUserID(args[1])
			if err != nil {
				return err
			}
			amt, err := parseAmount(args[2])
			if err != nil {
				return err
			}
			repo, err := openLedger(a.cfg.LedgerFile, false)
			if err != nil {
				return err
			}

			res := services.NewTransferBetweenUsers(repo, nil, a.logger).Execute(cmd.Context(), from, to, amt)
			if err := report(cmd, "transfer", res, func(p account.Pair) string {
				return fmt.Sprintf("%s %s\n%s %s", from, p.Debtor.Balance(), to, p.Creditor.Balance())
			}); err != nil {
				return err
			}
			return memory.WriteYAML(a.cfg.LedgerFile, repo)
		},
	}
}
