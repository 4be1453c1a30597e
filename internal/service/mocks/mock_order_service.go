package mocks

import (
	"context"

	"ledgerapi/internal/model"
	"ledgerapi/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) Create(ctx context.Context, customerName string) (*model.Order, error) {
	args := m.Called(ctx, customerName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockOrderService) Get(ctx context.Context, id string) (*service.OrderDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.OrderDetail), args.Error(1)
}

func (m *MockOrderService) List(ctx context.Context, limit, offset int) (*service.OrderListResult, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.OrderListResult), args.Error(1)
}

func (m *MockOrderService) AddItem(ctx context.Context, orderID string, in service.ItemInput) (*service.OrderItemResult, error) {
	args := m.Called(ctx, orderID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.OrderItemResult), args.Error(1)
}

func (m *MockOrderService) Summary(ctx context.Context, orderID string) (string, error) {
	args := m.Called(ctx, orderID)
	return args.String(0), args.Error(1)
}

func (m *MockOrderService) Archive(ctx context.Context, orderID string) (*service.OrderArchiveResult, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.OrderArchiveResult), args.Error(1)
}
