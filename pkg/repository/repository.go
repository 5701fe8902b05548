// Package repository defines the persistence abstraction the ledger core
// consumes. The core never implements these interfaces itself; a store
// implementation (see infra/repository) provides them and is expected to
// honor the transactional semantics of UnitOfWork.
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/akuniutka/bank-api-sub000/pkg/domain/ledger"
)

// ErrNotFound is returned by repositories when no record matches.
var ErrNotFound = errors.New("record not found")

// AccountRepository defines account data access.
type AccountRepository interface {
	// Get returns the account with the given id, or ErrNotFound. Inside a
	// unit of work the read locks the account row until the transaction
	// ends, serializing concurrent balance mutations on the same account.
	Get(ctx context.Context, id uuid.UUID) (*ledger.Account, error)
	Create(ctx context.Context, account *ledger.Account) error
	Update(ctx context.Context, account *ledger.Account) error
}

// OperationRepository defines append-only ledger entry access.
type OperationRepository interface {
	// Create persists the operation and assigns its id.
	Create(ctx context.Context, op *ledger.Operation) error
	// ListByAccount returns the account's operations with date in [from, to),
	// newest first. A nil bound leaves that side of the window open.
	ListByAccount(ctx context.Context, accountID uuid.UUID, from, to *time.Time) ([]*ledger.Operation, error)
}

// TransferRepository defines transfer record access.
type TransferRepository interface {
	// Create persists the transfer and assigns its id.
	Create(ctx context.Context, transfer *ledger.Transfer) error
}

// UnitOfWork is the transaction boundary for multi-step mutations. All
// repositories obtained from one UnitOfWork inside Do share a single store
// transaction, so a balance update and its ledger append commit together or
// not at all.
type UnitOfWork interface {
	// Do executes fn within a transaction. The UnitOfWork passed to fn is
	// bound to that transaction; a non-nil error from fn rolls everything
	// back.
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error

	AccountRepository() AccountRepository
	OperationRepository() OperationRepository
	TransferRepository() TransferRepository
}
