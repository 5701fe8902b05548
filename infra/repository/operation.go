package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/akuniutka/bank-api-sub000/pkg/domain/ledger"
	"github.com/akuniutka/bank-api-sub000/pkg/domain/money"
	"github.com/akuniutka/bank-api-sub000/pkg/repository"
)

type operationRepository struct {
	db *gorm.DB
}

// NewOperationRepository creates an operation repository on the given session.
func NewOperationRepository(db *gorm.DB) repository.OperationRepository {
	return &operationRepository{db: db}
}

// Create inserts the ledger entry, assigning its id.
func (r *operationRepository) Create(ctx context.Context, op *ledger.Operation) error {
	if op.ID == uuid.Nil {
		op.ID = uuid.New()
	}
	row := Operation{
		ID:        op.ID,
		AccountID: op.AccountID,
		Type:      string(op.Type),
		Amount:    op.Amount.Decimal(),
		Date:      op.Date,
	}
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r *operationRepository) ListByAccount(
	ctx context.Context,
	accountID uuid.UUID,
	from, to *time.Time,
) ([]*ledger.Operation, error) {
	q := r.db.WithContext(ctx).Where("account_id = ?", accountID)
	if from != nil {
		q = q.Where("date >= ?", *from)
	}
	if to != nil {
		q = q.Where("date < ?", *to)
	}

	var rows []Operation
	if err := q.Order("date DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	ops := make([]*ledger.Operation, 0, len(rows))
	for i := range rows {
		ops = append(ops, mapOperationRow(&rows[i]))
	}
	return ops, nil
}

func mapOperationRow(row *Operation) *ledger.Operation {
	return &ledger.Operation{
		ID:        row.ID,
		AccountID: row.AccountID,
		Type:      ledger.OperationType(row.Type),
		Amount:    money.New(row.Amount),
		Date:      row.Date,
	}
}
