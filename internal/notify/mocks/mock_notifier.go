package mocks

import (
	"context"

	"ledgerapi/internal/notify"

	"github.com/stretchr/testify/mock"
)

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Channel() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockNotifier) Send(ctx context.Context, msg notify.Message) (string, error) {
	args := m.Called(ctx, msg)
	return args.String(0), args.Error(1)
}
