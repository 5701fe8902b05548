package ledger_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akuniutka/bank-api-sub000/pkg/domain/common"
	"github.com/akuniutka/bank-api-sub000/pkg/domain/ledger"
)

func persistedOperation(
	t *testing.T,
	accountID uuid.UUID,
	opType ledger.OperationType,
	amt string,
	date time.Time,
) *ledger.Operation {
	t.Helper()
	op, err := ledger.NewOperation(accountID, opType, amount(t, amt), date)
	require.NoError(t, err)
	op.ID = uuid.New()
	return op
}

func TestNewOperation(t *testing.T) {
	t.Parallel()
	now := time.Now().UTC()

	t.Run("creates an unpersisted entry", func(t *testing.T) {
		t.Parallel()
		accountID := uuid.New()
		op, err := ledger.NewOperation(accountID, ledger.TypeDeposit, amount(t, "0.01"), now)
		require.NoError(t, err)
		assert.Equal(t, uuid.Nil, op.ID)
		assert.Equal(t, accountID, op.AccountID)
		assert.Equal(t, ledger.TypeDeposit, op.Type)
		assert.Equal(t, "0.01", op.Amount.String())
		assert.Equal(t, now, op.Date)
	})

	t.Run("rejects a missing account", func(t *testing.T) {
		t.Parallel()
		_, err := ledger.NewOperation(uuid.Nil, ledger.TypeDeposit, amount(t, "0.01"), now)
		assert.ErrorIs(t, err, common.ErrNullUserID)
	})

	t.Run("rejects an unknown type", func(t *testing.T) {
		t.Parallel()
		_, err := ledger.NewOperation(uuid.New(), ledger.OperationType("REFUND"), amount(t, "0.01"), now)
		assert.ErrorIs(t, err, ledger.ErrUnknownOperationType)
	})

	t.Run("rejects a non-positive amount", func(t *testing.T) {
		t.Parallel()
		_, err := ledger.NewOperation(uuid.New(), ledger.TypeDeposit, amount(t, "0"), now)
		assert.ErrorIs(t, err, common.ErrInvalidAmount)
	})

	t.Run("rejects a zero date", func(t *testing.T) {
		t.Parallel()
		_, err := ledger.NewOperation(uuid.New(), ledger.TypeDeposit, amount(t, "0.01"), time.Time{})
		assert.Error(t, err)
	})
}

func TestOperationTypeLabel(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "deposit", ledger.TypeDeposit.Label())
	assert.Equal(t, "withdrawal", ledger.TypeWithdrawal.Label())
	assert.Equal(t, "outgoing transfer", ledger.TypeOutgoingTransfer.Label())
	assert.Equal(t, "incoming transfer", ledger.TypeIncomingTransfer.Label())
}

func TestNewTransfer(t *testing.T) {
	t.Parallel()
	date := time.Now().UTC()
	payer := uuid.New()
	payee := uuid.New()

	t.Run("pairs two matching legs", func(t *testing.T) {
		t.Parallel()
		debit := persistedOperation(t, payer, ledger.TypeOutgoingTransfer, "10.00", date)
		credit := persistedOperation(t, payee, ledger.TypeIncomingTransfer, "10.00", date)
		tr, err := ledger.NewTransfer(debit, credit)
		require.NoError(t, err)
		assert.Equal(t, debit.ID, tr.DebitID)
		assert.Equal(t, credit.ID, tr.CreditID)
	})

	t.Run("rejects invalid pairings", func(t *testing.T) {
		t.Parallel()
		debit := persistedOperation(t, payer, ledger.TypeOutgoingTransfer, "10.00", date)
		credit := persistedOperation(t, payee, ledger.TypeIncomingTransfer, "10.00", date)

		unpersisted, err := ledger.NewOperation(payer, ledger.TypeOutgoingTransfer, amount(t, "10.00"), date)
		require.NoError(t, err)

		tests := []struct {
			name   string
			debit  *ledger.Operation
			credit *ledger.Operation
			reason string
		}{
			{"missing debit", nil, credit, "transfer leg is missing"},
			{"missing credit", debit, nil, "transfer leg is missing"},
			{"unpersisted leg", unpersisted, credit, "transfer leg is not persisted"},
			{"same operation twice", debit, debit, "transfer legs are the same operation"},
			{
				"wrong debit type",
				persistedOperation(t, payer, ledger.TypeWithdrawal, "10.00", date),
				credit,
				"wrong debit operation type",
			},
			{
				"wrong credit type",
				debit,
				persistedOperation(t, payee, ledger.TypeDeposit, "10.00", date),
				"wrong credit operation type",
			},
			{
				"same account on both legs",
				debit,
				persistedOperation(t, payer, ledger.TypeIncomingTransfer, "10.00", date),
				"transfer within one account",
			},
			{
				"amount mismatch",
				debit,
				persistedOperation(t, payee, ledger.TypeIncomingTransfer, "9.99", date),
				"transfer legs amount mismatch",
			},
			{
				"date mismatch",
				debit,
				persistedOperation(t, payee, ledger.TypeIncomingTransfer, "10.00", date.Add(time.Second)),
				"transfer legs date mismatch",
			},
		}
		for _, tt := range tests {
			tt := tt
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()
				_, err := ledger.NewTransfer(tt.debit, tt.credit)
				require.EqualError(t, err, tt.reason)
				assert.ErrorIs(t, err, common.ErrInvalidTransfer)
			})
		}
	})
}
