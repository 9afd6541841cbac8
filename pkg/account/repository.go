package account

import (
	"github.com/google/uuid"

	"github.com/ib-77/disjoint/pkg/rop"
)

// Repository stores accounts per user. Implementations own durability and
// concurrency control; Account itself carries no identity, so Save is
// keyed by the user id.
type Repository interface {
	FindBy(userID uuid.UUID) rop.Either[AccountNotFound, Account]
	Save(userID uuid.UUID, acc Account)
}
