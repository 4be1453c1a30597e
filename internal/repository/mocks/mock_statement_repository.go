package mocks

import (
	"context"

	"ledgerapi/internal/model"
	"ledgerapi/internal/repository"

	"github.com/stretchr/testify/mock"
)

type MockStatementRepository struct {
	mock.Mock
}

func (m *MockStatementRepository) Create(ctx context.Context, exp *model.StatementExport) (*model.StatementExport, error) {
	args := m.Called(ctx, exp)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.StatementExport), args.Error(1)
}

func (m *MockStatementRepository) ListByAccount(ctx context.Context, accountID string, pq repository.PageQuery) (*repository.PageResult[model.StatementExport], error) {
	args := m.Called(ctx, accountID, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.StatementExport]), args.Error(1)
}
