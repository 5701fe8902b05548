package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/akuniutka/bank-api-sub000/pkg/domain/ledger"
	"github.com/akuniutka/bank-api-sub000/pkg/repository"
)

type transferRepository struct {
	db *gorm.DB
}

// NewTransferRepository creates a transfer repository on the given session.
func NewTransferRepository(db *gorm.DB) repository.TransferRepository {
	return &transferRepository{db: db}
}

// Create inserts the transfer record, assigning its id.
func (r *transferRepository) Create(ctx context.Context, transfer *ledger.Transfer) error {
	if transfer.ID == uuid.Nil {
		transfer.ID = uuid.New()
	}
	row := Transfer{
		ID:       transfer.ID,
		DebitID:  transfer.DebitID,
		CreditID: transfer.CreditID,
	}
	return r.db.WithContext(ctx).Create(&row).Error
}
