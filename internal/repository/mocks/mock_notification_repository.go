package mocks

import (
	"context"

	"doctrack/internal/model"
	"doctrack/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockNotificationRepository struct {
	mock.Mock
}

var _ repository.NotificationRepository = (*MockNotificationRepository)(nil)

func (m *MockNotificationRepository) Add(ctx context.Context, n *model.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepository) List(ctx context.Context) ([]model.Notification, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Notification), args.Error(1)
}

func (m *MockNotificationRepository) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
