package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/akuniutka/bank-api-sub000/pkg/domain/common"
	"github.com/akuniutka/bank-api-sub000/pkg/domain/ledger"
	"github.com/akuniutka/bank-api-sub000/pkg/domain/money"
	"github.com/akuniutka/bank-api-sub000/pkg/repository"
)

// OperationService mutates balances and appends the matching ledger entries
// as one unit, and range-queries operation history.
type OperationService struct {
	uow      repository.UnitOfWork
	accounts *AccountService
	logger   *slog.Logger
}

// NewOperationService creates an OperationService sharing the given unit of
// work with the account service.
func NewOperationService(
	uow repository.UnitOfWork,
	accounts *AccountService,
	logger *slog.Logger,
) *OperationService {
	return &OperationService{uow: uow, accounts: accounts, logger: logger}
}

// CreateDeposit credits the user's account and appends a DEPOSIT entry dated
// now. Both happen in one transaction or not at all.
func (s *OperationService) CreateDeposit(
	ctx context.Context,
	userID uuid.UUID,
	amount *decimal.Decimal,
) (*ledger.Operation, error) {
	return s.createCash(ctx, userID, amount, ledger.TypeDeposit)
}

// CreateWithdrawal debits the user's account and appends a WITHDRAWAL entry
// dated now.
func (s *OperationService) CreateWithdrawal(
	ctx context.Context,
	userID uuid.UUID,
	amount *decimal.Decimal,
) (*ledger.Operation, error) {
	return s.createCash(ctx, userID, amount, ledger.TypeWithdrawal)
}

// CreateOutgoingTransfer debits the user's account and appends an
// OUTGOING_TRANSFER entry with the caller-supplied date, so both legs of one
// transfer share an identical timestamp.
func (s *OperationService) CreateOutgoingTransfer(
	ctx context.Context,
	userID uuid.UUID,
	amount *decimal.Decimal,
	date time.Time,
) (*ledger.Operation, error) {
	return s.createDated(ctx, userID, amount, ledger.TypeOutgoingTransfer, date)
}

// CreateIncomingTransfer credits the user's account and appends an
// INCOMING_TRANSFER entry with the caller-supplied date.
func (s *OperationService) CreateIncomingTransfer(
	ctx context.Context,
	userID uuid.UUID,
	amount *decimal.Decimal,
	date time.Time,
) (*ledger.Operation, error) {
	return s.createDated(ctx, userID, amount, ledger.TypeIncomingTransfer, date)
}

func (s *OperationService) createCash(
	ctx context.Context,
	userID uuid.UUID,
	amount *decimal.Decimal,
	opType ledger.OperationType,
) (*ledger.Operation, error) {
	return s.createDated(ctx, userID, amount, opType, time.Now().UTC())
}

func (s *OperationService) createDated(
	ctx context.Context,
	userID uuid.UUID,
	amount *decimal.Decimal,
	opType ledger.OperationType,
	date time.Time,
) (*ledger.Operation, error) {
	var op *ledger.Operation
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		var err error
		op, err = s.create(ctx, uow, userID, amount, opType, date)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("operation recorded",
		"user_id", userID, "type", opType, "amount", op.Amount)
	return op, nil
}

// create applies one balance change and its ledger append against the given
// unit of work. TransferService calls it twice within a single transaction.
func (s *OperationService) create(
	ctx context.Context,
	uow repository.UnitOfWork,
	userID uuid.UUID,
	amount *decimal.Decimal,
	opType ledger.OperationType,
	date time.Time,
) (*ledger.Operation, error) {
	if userID == uuid.Nil {
		return nil, common.ErrNullUserID
	}
	if err := money.Assert(amount, false); err != nil {
		return nil, err
	}
	a, err := s.accounts.get(ctx, uow, userID)
	if err != nil {
		return nil, err
	}

	value := money.New(*amount)
	if opType.Debits() {
		err = a.DecreaseBalance(value)
	} else {
		err = a.IncreaseBalance(value)
	}
	if err != nil {
		return nil, err
	}
	if err = uow.AccountRepository().Update(ctx, a); err != nil {
		s.logger.Error("balance update failed", "user_id", userID, "error", err)
		return nil, err
	}

	op, err := ledger.NewOperation(a.ID, opType, value, date)
	if err != nil {
		return nil, err
	}
	if err = uow.OperationRepository().Create(ctx, op); err != nil {
		s.logger.Error("ledger append failed", "user_id", userID, "error", err)
		return nil, err
	}
	return op, nil
}

// GetUserOperations returns the user's operations with date in [dateFrom,
// dateTo), newest first. Nil bounds leave the window open on that side. An
// account with no matching operations yields an empty slice, not an error.
func (s *OperationService) GetUserOperations(
	ctx context.Context,
	userID uuid.UUID,
	dateFrom, dateTo *time.Time,
) ([]*ledger.Operation, error) {
	a, err := s.accounts.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	ops, err := s.uow.OperationRepository().ListByAccount(ctx, a.ID, dateFrom, dateTo)
	if err != nil {
		s.logger.Error("operation list failed", "user_id", userID, "error", err)
		return nil, err
	}
	if ops == nil {
		ops = []*ledger.Operation{}
	}
	return ops, nil
}
