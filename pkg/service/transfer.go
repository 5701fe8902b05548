package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/akuniutka/bank-api-sub000/pkg/domain/common"
	"github.com/akuniutka/bank-api-sub000/pkg/domain/ledger"
	"github.com/akuniutka/bank-api-sub000/pkg/repository"
)

// TransferService moves money between two accounts as one atomic unit: the
// debit leg, the credit leg, and the transfer record linking them commit
// together or not at all.
type TransferService struct {
	uow        repository.UnitOfWork
	operations *OperationService
	logger     *slog.Logger
}

// NewTransferService creates a TransferService sharing the given unit of work
// with the operation service.
func NewTransferService(
	uow repository.UnitOfWork,
	operations *OperationService,
	logger *slog.Logger,
) *TransferService {
	return &TransferService{uow: uow, operations: operations, logger: logger}
}

// CreateTransfer debits the payer, credits the payee with the same amount and
// timestamp, and persists the transfer pairing the two legs. If any step
// fails — the payee not existing included — the payer's balance and ledger
// are left exactly as before the call.
func (s *TransferService) CreateTransfer(
	ctx context.Context,
	payerID, payeeID uuid.UUID,
	amount *decimal.Decimal,
) (*ledger.Transfer, error) {
	if payerID == uuid.Nil || payeeID == uuid.Nil {
		return nil, common.ErrNullUserID
	}
	if payerID == payeeID {
		return nil, common.E(common.KindInvalidTransfer, "payer and payee are the same")
	}

	date := time.Now().UTC()
	var transfer *ledger.Transfer
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		debit, err := s.operations.create(ctx, uow, payerID, amount, ledger.TypeOutgoingTransfer, date)
		if err != nil {
			return err
		}
		credit, err := s.operations.create(ctx, uow, payeeID, amount, ledger.TypeIncomingTransfer, date)
		if err != nil {
			return err
		}
		transfer, err = ledger.NewTransfer(debit, credit)
		if err != nil {
			return err
		}
		return uow.TransferRepository().Create(ctx, transfer)
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("transfer recorded",
		"payer_id", payerID, "payee_id", payeeID, "amount", amount)
	return transfer, nil
}
