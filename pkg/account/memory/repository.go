package memory

import (
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ib-77/disjoint/pkg/account"
	"github.com/ib-77/disjoint/pkg/rop"
)

// Repository is an in-memory account.Repository safe for concurrent use.
type Repository struct {
	mu       sync.RWMutex
	accounts map[uuid.UUID]account.Account
}

var _ account.Repository = (*Repository)(nil)

func NewRepository() *Repository {
	return &Repository{accounts: make(map[uuid.UUID]account.Account)}
}

func (r *Repository) FindBy(userID uuid.UUID) rop.Either[account.AccountNotFound, account.Account] {
	r.mu.RLock()
	defer r.mu.RUnlock()

	acc, ok := r.accounts[userID]
	if !ok {
		return rop.Fail[account.Account](account.AccountNotFound{})
	}
	return rop.Succeed[account.AccountNotFound](acc)
}

func (r *Repository) Save(userID uuid.UUID, acc account.Account) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.accounts[userID] = acc
}

// Entry is one user's balance as listed by Snapshot.
type Entry struct {
	UserID  uuid.UUID
	Balance decimal.Decimal
}

// Snapshot lists all stored accounts ordered by user id.
func (r *Repository) Snapshot() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Entry, 0, len(r.accounts))
	for id, acc := range r.accounts {
		out = append(out, Entry{UserID: id, Balance: acc.Balance()})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].UserID.String() < out[j].UserID.String()
	})
	return out
}
