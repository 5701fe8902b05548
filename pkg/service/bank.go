package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/akuniutka/bank-api-sub000/pkg/domain/common"
	"github.com/akuniutka/bank-api-sub000/pkg/repository"
)

// BankService is the user-facing facade over the ledger services. Its only
// logic is composing the services and re-classifying their failures for the
// caller: the same root condition is reported with a use-case specific reason
// depending on which operation raised it.
type BankService struct {
	accounts   *AccountService
	operations *OperationService
	transfers  *TransferService
	logger     *slog.Logger
}

// NewBankService composes the facade from its collaborators.
func NewBankService(
	accounts *AccountService,
	operations *OperationService,
	transfers *TransferService,
	logger *slog.Logger,
) *BankService {
	return &BankService{
		accounts:   accounts,
		operations: operations,
		transfers:  transfers,
		logger:     logger,
	}
}

// NewBank wires the full service stack over one unit of work and returns the
// facade.
func NewBank(uow repository.UnitOfWork, logger *slog.Logger) *BankService {
	accounts := NewAccountService(uow, logger)
	operations := NewOperationService(uow, accounts, logger)
	transfers := NewTransferService(uow, operations, logger)
	return NewBankService(accounts, operations, transfers, logger)
}

// Entry is one row of a user's operation history as exposed to callers:
// the timestamp, the human-readable type label, and the amount.
type Entry struct {
	Date   time.Time
	Type   string
	Amount decimal.Decimal
}

// GetBalance returns the user's current balance with two fractional digits.
// An unknown user is reported as a balance-specific not-found condition.
func (s *BankService) GetBalance(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	a, err := s.accounts.Get(ctx, userID)
	if err != nil {
		return decimal.Decimal{}, retagNotFound(err, "user balance not found")
	}
	return a.Balance.Decimal(), nil
}

// PutMoney credits the user's account. An unknown user here is a
// client-input error, not a lookup error, and keeps the default reason.
func (s *BankService) PutMoney(ctx context.Context, userID uuid.UUID, amount *decimal.Decimal) error {
	_, err := s.operations.CreateDeposit(ctx, userID, amount)
	return err
}

// TakeMoney debits the user's account.
func (s *BankService) TakeMoney(ctx context.Context, userID uuid.UUID, amount *decimal.Decimal) error {
	_, err := s.operations.CreateWithdrawal(ctx, userID, amount)
	return err
}

// TransferMoney moves amount from payer to payee atomically.
func (s *BankService) TransferMoney(
	ctx context.Context,
	payerID, payeeID uuid.UUID,
	amount *decimal.Decimal,
) error {
	_, err := s.transfers.CreateTransfer(ctx, payerID, payeeID, amount)
	return err
}

// GetOperationList returns the user's operation history within the optional
// date window, newest first. An existing user with no matching operations
// gets an empty list.
func (s *BankService) GetOperationList(
	ctx context.Context,
	userID uuid.UUID,
	dateFrom, dateTo *time.Time,
) ([]Entry, error) {
	ops, err := s.operations.GetUserOperations(ctx, userID, dateFrom, dateTo)
	if err != nil {
		return nil, retagNotFound(err, "user operations not found")
	}
	entries := make([]Entry, 0, len(ops))
	for _, op := range ops {
		entries = append(entries, Entry{
			Date:   op.Date,
			Type:   op.Type.Label(),
			Amount: op.Amount.Decimal(),
		})
	}
	return entries, nil
}

// retagNotFound swaps the reason of a user-not-found failure for a use-case
// specific one, leaving every other failure untouched.
func retagNotFound(err error, reason string) error {
	if errors.Is(err, common.ErrUserNotFound) {
		return common.E(common.KindUserNotFound, reason)
	}
	return err
}
