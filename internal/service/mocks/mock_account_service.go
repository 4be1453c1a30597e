package mocks

import (
	"context"

	"ledgerapi/internal/model"
	"ledgerapi/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) Create(ctx context.Context, ownerName string, openingBalance int64) (*model.Account, error) {
	args := m.Called(ctx, ownerName, openingBalance)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Account), args.Error(1)
}

func (m *MockAccountService) Get(ctx context.Context, id string) (*model.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Account), args.Error(1)
}

func (m *MockAccountService) Deposit(ctx context.Context, id string, amount int64) (*model.Transaction, error) {
	args := m.Called(ctx, id, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Transaction), args.Error(1)
}

func (m *MockAccountService) Withdraw(ctx context.Context, id string, amount int64) (*model.Transaction, error) {
	args := m.Called(ctx, id, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Transaction), args.Error(1)
}

func (m *MockAccountService) Transactions(ctx context.Context, id string, limit, offset int) (*service.TransactionListResult, error) {
	args := m.Called(ctx, id, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.TransactionListResult), args.Error(1)
}

func (m *MockAccountService) ExportStatement(ctx context.Context, id string) (*service.StatementExportResult, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.StatementExportResult), args.Error(1)
}
