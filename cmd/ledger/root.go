package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type app struct {
	cfg    config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: loadConfig(), logger: zap.NewNop()}

	cmd := &cobra.Command{
		Use:          "ledger",
		Short:        "Ledger: accounts and pies composed with disjoint results",
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			logger, err := newLogger(a.cfg.Debug)
			if err != nil {
				return err
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			_ = a.logger.Sync()
		},
	}

	cmd.PersistentFlags().StringVar(&a.cfg.LedgerFile, "ledger", a.cfg.LedgerFile, "ledger YAML file (env LEDGER_FILE)")
	cmd.PersistentFlags().BoolVar(&a.cfg.Debug, "debug", a.cfg.Debug, "enable development logging (env LEDGER_DEBUG)")

	cmd.AddCommand(
		a.openCmd(),
		a.balanceCmd(),
		a.depositCmd(),
		a.withdrawCmd(),
		a.transferCmd(),
		a.bakeCmd(),
	)
	return cmd
}
