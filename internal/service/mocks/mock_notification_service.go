package mocks

import (
	"context"

	"ledgerapi/internal/model"
	"ledgerapi/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) Send(ctx context.Context, channel, recipient, subject, body string) (*model.Notification, error) {
	args := m.Called(ctx, channel, recipient, subject, body)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Notification), args.Error(1)
}

func (m *MockNotificationService) List(ctx context.Context, limit, offset int) (*service.NotificationListResult, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.NotificationListResult), args.Error(1)
}
