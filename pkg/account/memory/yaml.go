package memory

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/ib-77/disjoint/pkg/account"
)

type yamlLedger struct {
	Accounts []yamlAccount `yaml:"accounts"`
}

type yamlAccount struct {
	UserID  string `yaml:"user_id"`
	Balance string `yaml:"balance"`
}

// OpError wraps a ledger file failure with the operation and path.
type OpError struct {
	Op   string
	Path string
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}
	base := e.Op
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// LoadYAML reads a ledger file into a new Repository. Every balance goes
// through account.Create, so a negative balance rejects the whole file.
func LoadYAML(path string) (*Repository, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &OpError{Op: "memory.load_yaml", Path: path, Err: err}
	}

	repo, err := DecodeYAML(b)
	if err != nil {
		return nil, &OpError{Op: "memory.load_yaml", Path: path, Err: err}
	}
	return repo, nil
}

func DecodeYAML(b []byte) (*Repository, error) {
	var dto yamlLedger
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return nil, err
	}

	repo := NewRepository()
	for i, entry := range dto.Accounts {
		userID, err := uuid.Parse(entry.UserID)
		if err != nil {
			return nil, fmt.Errorf("accounts[%d]: user_id: %w", i, err)
		}
		balance, err := decimal.NewFromString(entry.Balance)
		if err != nil {
			return nil, fmt.Errorf("accounts[%d]: balance: %w", i, err)
		}

		created := account.Create(balance)
		if f, failed := created.Failure(); failed {
			return nil, fmt.Errorf("accounts[%d]: balance %s: %w", i, balance, f)
		}
		acc, _ := created.Success()
		repo.Save(userID, acc)
	}
	return repo, nil
}

func EncodeYAML(repo *Repository) ([]byte, error) {
	var dto yamlLedger
	for _, e := range repo.Snapshot() {
		dto.Accounts = append(dto.Accounts, yamlAccount{
			UserID:  e.UserID.String(),
			Balance: e.Balance.String(),
		})
	}
	return yaml.Marshal(dto)
}

// WriteYAML stores repo in path, replacing the file.
func WriteYAML(path string, repo *Repository) error {
	b, err := EncodeYAML(repo)
	if err != nil {
		return &OpError{Op: "memory.write_yaml", Path: path, Err: err}
	}
	if err := os.WriteFile(path, b, 0o600); err != nil {
		return &OpError{Op: "memory.write_yaml", Path: path, Err: err}
	}
	return nil
}
