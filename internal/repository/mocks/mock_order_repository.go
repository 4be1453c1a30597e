package mocks

import (
	"context"

	"ledgerapi/internal/model"
	"ledgerapi/internal/repository"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(ctx context.Context, o *model.Order) (*model.Order, error) {
	args := m.Called(ctx, o)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id string) (*model.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockOrderRepository) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Order], error) {
	args := m.Called(ctx, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Order]), args.Error(1)
}

func (m *MockOrderRepository) AddItem(ctx context.Context, item *model.OrderItem) (*model.OrderItem, int64, error) {
	args := m.Called(ctx, item)
	var out *model.OrderItem
	if f, ok := args.Get(0).(func(context.Context, *model.OrderItem) *model.OrderItem); ok {
		out = f(ctx, item)
	} else if args.Get(0) != nil {
		out = args.Get(0).(*model.OrderItem)
	}
	var total int64
	if f, ok := args.Get(1).(func(context.Context, *model.OrderItem) int64); ok {
		total = f(ctx, item)
	} else {
		total = args.Get(1).(int64)
	}
	return out, total, args.Error(2)
}

func (m *MockOrderRepository) ListItems(ctx context.Context, orderID string) ([]model.OrderItem, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.OrderItem), args.Error(1)
}
