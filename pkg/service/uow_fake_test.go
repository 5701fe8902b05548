package service_test

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/akuniutka/bank-api-sub000/pkg/domain/ledger"
	"github.com/akuniutka/bank-api-sub000/pkg/repository"
)

// fakeStore is an in-memory store with copy-on-transaction semantics: Do
// works on a clone and copies it back only when the function succeeds, so a
// failed transaction leaves the committed state untouched.
type fakeStore struct {
	accounts   map[uuid.UUID]*ledger.Account
	operations []*ledger.Operation
	transfers  []*ledger.Transfer

	failOperations bool
	failTransfers  bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{accounts: make(map[uuid.UUID]*ledger.Account)}
}

func (s *fakeStore) clone() *fakeStore {
	c := newFakeStore()
	for id, a := range s.accounts {
		cp := *a
		c.accounts[id] = &cp
	}
	c.operations = append([]*ledger.Operation(nil), s.operations...)
	c.transfers = append([]*ledger.Transfer(nil), s.transfers...)
	c.failOperations = s.failOperations
	c.failTransfers = s.failTransfers
	return c
}

type fakeUoW struct {
	store *fakeStore
	inTx  bool
}

func newFakeUoW() *fakeUoW {
	return &fakeUoW{store: newFakeStore()}
}

func (u *fakeUoW) Do(_ context.Context, fn func(uow repository.UnitOfWork) error) error {
	if u.inTx {
		return fn(u)
	}
	work := u.store.clone()
	if err := fn(&fakeUoW{store: work, inTx: true}); err != nil {
		return err
	}
	*u.store = *work
	return nil
}

func (u *fakeUoW) AccountRepository() repository.AccountRepository {
	return &fakeAccountRepo{s: u.store}
}

func (u *fakeUoW) OperationRepository() repository.OperationRepository {
	return &fakeOperationRepo{s: u.store}
}

func (u *fakeUoW) TransferRepository() repository.TransferRepository {
	return &fakeTransferRepo{s: u.store}
}

type fakeAccountRepo struct{ s *fakeStore }

func (r *fakeAccountRepo) Get(_ context.Context, id uuid.UUID) (*ledger.Account, error) {
	a, ok := r.s.accounts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *fakeAccountRepo) Create(_ context.Context, account *ledger.Account) error {
	cp := *account
	r.s.accounts[account.ID] = &cp
	return nil
}

func (r *fakeAccountRepo) Update(_ context.Context, account *ledger.Account) error {
	if _, ok := r.s.accounts[account.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *account
	r.s.accounts[account.ID] = &cp
	return nil
}

type fakeOperationRepo struct{ s *fakeStore }

func (r *fakeOperationRepo) Create(_ context.Context, op *ledger.Operation) error {
	if r.s.failOperations {
		return errors.New("operation store failed")
	}
	if op.ID == uuid.Nil {
		op.ID = uuid.New()
	}
	cp := *op
	r.s.operations = append(r.s.operations, &cp)
	return nil
}

func (r *fakeOperationRepo) ListByAccount(
	_ context.Context,
	accountID uuid.UUID,
	from, to *time.Time,
) ([]*ledger.Operation, error) {
	var ops []*ledger.Operation
	for _, op := range r.s.operations {
		if op.AccountID != accountID {
			continue
		}
		if from != nil && op.Date.Before(*from) {
			continue
		}
		if to != nil && !op.Date.Before(*to) {
			continue
		}
		cp := *op
		ops = append(ops, &cp)
	}
	sort.Slice(ops, func(i, j int) bool { return ops[i].Date.After(ops[j].Date) })
	return ops, nil
}

type fakeTransferRepo struct{ s *fakeStore }

func (r *fakeTransferRepo) Create(_ context.Context, transfer *ledger.Transfer) error {
	if r.s.failTransfers {
		return errors.New("transfer store failed")
	}
	if transfer.ID == uuid.Nil {
		transfer.ID = uuid.New()
	}
	cp := *transfer
	r.s.transfers = append(r.s.transfers, &cp)
	return nil
}
