// Package repository implements the store abstraction from pkg/repository on
// gorm with postgres. It maps the domain entities to rows and provides the
// transactional unit of work the services run on.
package repository

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Account is an account row. The balance column is numeric(19,2) so the
// database representation carries exactly the core's two fractional digits.
type Account struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Balance   decimal.Decimal `gorm:"type:numeric(19,2);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for the Account model.
func (Account) TableName() string {
	return "accounts"
}

// Operation is a ledger entry row. Rows are only ever inserted.
type Operation struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	AccountID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Type      string          `gorm:"type:varchar(32);not null"`
	Amount    decimal.Decimal `gorm:"type:numeric(19,2);not null"`
	Date      time.Time       `gorm:"not null;index"`
}

// TableName specifies the table name for the Operation model.
func (Operation) TableName() string {
	return "operations"
}

// Transfer is a transfer row pairing two operation ids.
type Transfer struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	DebitID   uuid.UUID `gorm:"type:uuid;not null"`
	CreditID  uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt time.Time
}

// TableName specifies the table name for the Transfer model.
func (Transfer) TableName() string {
	return "transfers"
}
