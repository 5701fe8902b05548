package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/akuniutka/bank-api-sub000/pkg/domain/ledger"
	"github.com/akuniutka/bank-api-sub000/pkg/domain/money"
	"github.com/akuniutka/bank-api-sub000/pkg/repository"
)

type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates an account repository on the given session.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

// Get reads the account row with FOR UPDATE so that inside a transaction the
// read-modify-write on one account is serialized against concurrent callers.
func (r *accountRepository) Get(ctx context.Context, id uuid.UUID) (*ledger.Account, error) {
	var row Account
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return mapAccountRow(&row), nil
}

func (r *accountRepository) Create(ctx context.Context, account *ledger.Account) error {
	row := Account{
		ID:        account.ID,
		Balance:   account.Balance.Decimal(),
		CreatedAt: account.CreatedAt,
		UpdatedAt: account.UpdatedAt,
	}
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r *accountRepository) Update(ctx context.Context, account *ledger.Account) error {
	return r.db.WithContext(ctx).
		Model(&Account{}).
		Where("id = ?", account.ID).
		Updates(map[string]any{
			"balance":    account.Balance.Decimal(),
			"updated_at": time.Now().UTC(),
		}).Error
}

func mapAccountRow(row *Account) *ledger.Account {
	return &ledger.Account{
		ID:        row.ID,
		Balance:   money.New(row.Balance),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
