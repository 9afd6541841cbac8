package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"go.uber.org/zap"

	"github.com/ib-77/disjoint/pkg/account/memory"
)

type config struct {
	LedgerFile string
	Debug      bool
}

func loadConfig() config {
	return config{
		LedgerFile: getEnvOrDefault("LEDGER_FILE", "ledger.yaml"),
		Debug:      getEnvAsBool("LEDGER_DEBUG", false),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnvOrDefault(key, strconv.FormatBool(defaultValue))
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}

// openLedger loads the ledger file, or starts empty when allowMissing is set
// and the file does not exist yet.
func openLedger(path string, allowMissing bool) (*memory.Repository, error) {
	repo, err := memory.LoadYAML(path)
	if err == nil {
		return repo, nil
	}
	if allowMissing && errors.Is(err, os.ErrNotExist) {
		return memory.NewRepository(), nil
	}
	return nil, fmt.Errorf("open ledger: %w", err)
}
