package mocks

import (
	"context"

	"doctrack/internal/model"
	"doctrack/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockSearchService struct {
	mock.Mock
}

var _ service.SearchService = (*MockSearchService)(nil)

func (m *MockSearchService) Lookup(ctx context.Context, user model.User, q string) (*model.Document, error) {
	args := m.Called(ctx, user, q)
	return document(args)
}

func (m *MockSearchService) Recent(ctx context.Context, user model.User) ([]string, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockSearchService) ClearRecent(ctx context.Context, user model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
