package mocks

import (
	"context"

	"ledgerapi/internal/model"
	"ledgerapi/internal/repository"

	"github.com/stretchr/testify/mock"
)

type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) Create(ctx context.Context, acc *model.Account) (*model.Account, error) {
	args := m.Called(ctx, acc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Account), args.Error(1)
}

func (m *MockAccountRepository) FindByID(ctx context.Context, id string) (*model.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Account), args.Error(1)
}

func (m *MockAccountRepository) Apply(ctx context.Context, txn *model.Transaction) (*model.Transaction, error) {
	args := m.Called(ctx, txn)
	if f, ok := args.Get(0).(func(context.Context, *model.Transaction) *model.Transaction); ok {
		return f(ctx, txn), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Transaction), args.Error(1)
}

func (m *MockAccountRepository) ListTransactions(ctx context.Context, accountID string, pq repository.PageQuery) (*repository.PageResult[model.Transaction], error) {
	args := m.Called(ctx, accountID, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Transaction]), args.Error(1)
}
