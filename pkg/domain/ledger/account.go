// Package ledger defines the core entities of the account ledger: the
// Account balance holder, the immutable Operation ledger entry, and the
// Transfer pairing two operations into one money movement.
package ledger

import (
	"time"

	"github.com/google/uuid"

	"github.com/akuniutka/bank-api-sub000/pkg/domain/common"
	"github.com/akuniutka/bank-api-sub000/pkg/domain/money"
)

// Account holds a user's balance.
// Invariants:
//   - ID is the owning user's identifier, assigned externally.
//   - Balance is never negative and always carries two fractional digits.
//   - Balance changes only through IncreaseBalance and DecreaseBalance, and
//     each either succeeds and updates the balance or fails and leaves it
//     unchanged.
type Account struct {
	ID        uuid.UUID
	Balance   money.Money
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewAccount creates an account for the given user with a 0.00 balance.
func NewAccount(userID uuid.UUID) *Account {
	now := time.Now().UTC()
	return &Account{
		ID:        userID,
		Balance:   money.Zero(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IncreaseBalance adds amount to the balance. The amount must be strictly
// positive.
func (a *Account) IncreaseBalance(amount money.Money) error {
	if !amount.IsPositive() {
		return common.E(common.KindInvalidAmount, "amount is not positive")
	}
	a.Balance = a.Balance.Add(amount)
	a.UpdatedAt = time.Now().UTC()
	return nil
}

// DecreaseBalance subtracts amount from the balance. The amount must be
// strictly positive and must not exceed the current balance.
func (a *Account) DecreaseBalance(amount money.Money) error {
	if !amount.IsPositive() {
		return common.E(common.KindInvalidAmount, "amount is not positive")
	}
	if a.Balance.LessThan(amount) {
		return common.E(common.KindInsufficientFunds, "insufficient balance")
	}
	a.Balance = a.Balance.Sub(amount)
	a.UpdatedAt = time.Now().UTC()
	return nil
}
