package ledger

import (
	"time"

	"github.com/google/uuid"

	"github.com/akuniutka/bank-api-sub000/pkg/domain/common"
)

// Transfer pairs a debit and a credit operation into one atomic money
// movement between two accounts. It owns only the pairing: the operations
// persist independently and can be looked up without it.
type Transfer struct {
	ID        uuid.UUID
	DebitID   uuid.UUID
	CreditID  uuid.UUID
	CreatedAt time.Time
}

// NewTransfer links two persisted operations into a transfer.
// Invariants enforced:
//   - Both legs are present, persisted, and distinct.
//   - The debit leg is an outgoing transfer, the credit leg an incoming one.
//   - The legs reference two different accounts.
//   - The legs carry equal amounts and an identical date.
func NewTransfer(debit, credit *Operation) (*Transfer, error) {
	if debit == nil || credit == nil {
		return nil, common.E(common.KindInvalidTransfer, "transfer leg is missing")
	}
	if debit.ID == uuid.Nil || credit.ID == uuid.Nil {
		return nil, common.E(common.KindInvalidTransfer, "transfer leg is not persisted")
	}
	if debit.ID == credit.ID {
		return nil, common.E(common.KindInvalidTransfer, "transfer legs are the same operation")
	}
	if debit.Type != TypeOutgoingTransfer {
		return nil, common.E(common.KindInvalidTransfer, "wrong debit operation type")
	}
	if credit.Type != TypeIncomingTransfer {
		return nil, common.E(common.KindInvalidTransfer, "wrong credit operation type")
	}
	if debit.AccountID == credit.AccountID {
		return nil, common.E(common.KindInvalidTransfer, "transfer within one account")
	}
	if !debit.Amount.Equal(credit.Amount) {
		return nil, common.E(common.KindInvalidTransfer, "transfer legs amount mismatch")
	}
	if !debit.Date.Equal(credit.Date) {
		return nil, common.E(common.KindInvalidTransfer, "transfer legs date mismatch")
	}
	return &Transfer{
		DebitID:  debit.ID,
		CreditID: credit.ID,
	}, nil
}
