package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/akuniutka/bank-api-sub000/pkg/repository"
)

// UoW provides the transaction boundary and repository access in one
// abstraction. Repositories obtained inside Do are bound to the running
// database transaction, so a balance update and its ledger append commit or
// roll back together.
type UoW struct {
	db *gorm.DB
	tx *gorm.DB
}

// NewUoW creates a unit of work on the given *gorm.DB.
func NewUoW(db *gorm.DB) *UoW {
	return &UoW{db: db}
}

// Do runs fn inside a database transaction. A non-nil error from fn rolls
// the transaction back. Calling Do on a UoW already bound to a transaction
// joins that transaction instead of opening a new one.
func (u *UoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	if u.tx != nil {
		return fn(u)
	}
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&UoW{db: u.db, tx: tx})
	})
}

// session returns the running transaction, or the root connection outside Do.
func (u *UoW) session() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

// AccountRepository returns an account repository bound to the current session.
func (u *UoW) AccountRepository() repository.AccountRepository {
	return NewAccountRepository(u.session())
}

// OperationRepository returns an operation repository bound to the current session.
func (u *UoW) OperationRepository() repository.OperationRepository {
	return NewOperationRepository(u.session())
}

// TransferRepository returns a transfer repository bound to the current session.
func (u *UoW) TransferRepository() repository.TransferRepository {
	return NewTransferRepository(u.session())
}
