// Package service implements the ledger use cases on top of the store
// abstraction: account resolution, cash operations, transfers, and the
// user-facing BankService facade.
package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/akuniutka/bank-api-sub000/pkg/domain/common"
	"github.com/akuniutka/bank-api-sub000/pkg/domain/ledger"
	"github.com/akuniutka/bank-api-sub000/pkg/repository"
)

// AccountService resolves, creates, and persists accounts over the store.
type AccountService struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// NewAccountService creates an AccountService using the given unit of work.
func NewAccountService(uow repository.UnitOfWork, logger *slog.Logger) *AccountService {
	return &AccountService{uow: uow, logger: logger}
}

// Get resolves the account owned by userID.
func (s *AccountService) Get(ctx context.Context, userID uuid.UUID) (*ledger.Account, error) {
	return s.get(ctx, s.uow, userID)
}

// get resolves an account against the given unit of work so callers running
// inside a transaction read through that transaction.
func (s *AccountService) get(
	ctx context.Context,
	uow repository.UnitOfWork,
	userID uuid.UUID,
) (*ledger.Account, error) {
	if userID == uuid.Nil {
		return nil, common.ErrNullUserID
	}
	a, err := uow.AccountRepository().Get(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, common.ErrUserNotFound
	}
	if err != nil {
		s.logger.Error("account lookup failed", "user_id", userID, "error", err)
		return nil, err
	}
	return a, nil
}

// GetOrCreate resolves the account owned by userID, registering a fresh one
// with a 0.00 balance on first contact.
func (s *AccountService) GetOrCreate(ctx context.Context, userID uuid.UUID) (*ledger.Account, error) {
	a, err := s.get(ctx, s.uow, userID)
	if errors.Is(err, common.ErrUserNotFound) {
		a = ledger.NewAccount(userID)
		if err = s.uow.AccountRepository().Create(ctx, a); err != nil {
			s.logger.Error("account creation failed", "user_id", userID, "error", err)
			return nil, err
		}
		s.logger.Info("account created", "user_id", userID)
		return a, nil
	}
	return a, err
}

// Save persists the account's current state.
func (s *AccountService) Save(ctx context.Context, account *ledger.Account) error {
	return s.save(ctx, s.uow, account)
}

func (s *AccountService) save(
	ctx context.Context,
	uow repository.UnitOfWork,
	account *ledger.Account,
) error {
	if err := uow.AccountRepository().Update(ctx, account); err != nil {
		s.logger.Error("account update failed", "user_id", account.ID, "error", err)
		return err
	}
	return nil
}
