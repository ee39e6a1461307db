package mocks

import (
	"context"

	"doctrack/internal/model"
	"doctrack/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockNotificationService struct {
	mock.Mock
}

var _ service.NotificationService = (*MockNotificationService)(nil)

func (m *MockNotificationService) List(ctx context.Context) ([]model.Notification, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Notification), args.Error(1)
}

func (m *MockNotificationService) ClearAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
