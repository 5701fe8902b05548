package ledger

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/akuniutka/bank-api-sub000/pkg/domain/common"
	"github.com/akuniutka/bank-api-sub000/pkg/domain/money"
)

// OperationType tags a ledger entry with the kind of balance change it records.
type OperationType string

const (
	TypeDeposit          OperationType = "DEPOSIT"
	TypeWithdrawal       OperationType = "WITHDRAWAL"
	TypeOutgoingTransfer OperationType = "OUTGOING_TRANSFER"
	TypeIncomingTransfer OperationType = "INCOMING_TRANSFER"
)

// ErrUnknownOperationType is returned when an operation is constructed with a
// type outside the closed set above.
var ErrUnknownOperationType = errors.New("unknown operation type")

// Valid reports whether t is one of the four known operation types.
func (t OperationType) Valid() bool {
	switch t {
	case TypeDeposit, TypeWithdrawal, TypeOutgoingTransfer, TypeIncomingTransfer:
		return true
	}
	return false
}

// Debits reports whether operations of this type decrease the account balance.
func (t OperationType) Debits() bool {
	return t == TypeWithdrawal || t == TypeOutgoingTransfer
}

// Label returns the human-readable word exposed outside the core.
func (t OperationType) Label() string {
	switch t {
	case TypeDeposit:
		return "deposit"
	case TypeWithdrawal:
		return "withdrawal"
	case TypeOutgoingTransfer:
		return "outgoing transfer"
	case TypeIncomingTransfer:
		return "incoming transfer"
	}
	return "unknown"
}

// Operation is an immutable ledger entry recording a single balance change on
// one account. ID is uuid.Nil until the store assigns it on persist. Once
// persisted an operation is never mutated: the ledger is append-only.
type Operation struct {
	ID        uuid.UUID
	AccountID uuid.UUID
	Type      OperationType
	Amount    money.Money
	Date      time.Time
}

// NewOperation creates a ledger entry for the given account. The amount must
// be strictly positive and the date must be set; for cash operations the
// caller passes "now", for transfer legs both legs share one caller-supplied
// date.
func NewOperation(
	accountID uuid.UUID,
	opType OperationType,
	amount money.Money,
	date time.Time,
) (*Operation, error) {
	if accountID == uuid.Nil {
		return nil, common.ErrNullUserID
	}
	if !opType.Valid() {
		return nil, ErrUnknownOperationType
	}
	if !amount.IsPositive() {
		return nil, common.E(common.KindInvalidAmount, "amount is not positive")
	}
	if date.IsZero() {
		return nil, errors.New("operation date is required")
	}
	return &Operation{
		AccountID: accountID,
		Type:      opType,
		Amount:    amount,
		Date:      date,
	}, nil
}
