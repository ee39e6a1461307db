package mocks

import (
	"context"

	"doctrack/internal/model"
	"doctrack/internal/search"
	"doctrack/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockDocumentService struct {
	mock.Mock
}

var _ service.DocumentService = (*MockDocumentService)(nil)

func (m *MockDocumentService) Register(ctx context.Context, actor model.User, branch model.Branch, in service.RegisterInput) (*model.Document, error) {
	args := m.Called(ctx, actor, branch, in)
	return document(args)
}

func (m *MockDocumentService) Approve(ctx context.Context, actor model.User, id string) (*model.Document, error) {
	args := m.Called(ctx, actor, id)
	return document(args)
}

func (m *MockDocumentService) Reject(ctx context.Context, actor model.User, id string, reasons []model.RejectionReason) (*model.Document, error) {
	args := m.Called(ctx, actor, id, reasons)
	return document(args)
}

func (m *MockDocumentService) Get(ctx context.Context, id string) (*model.Document, error) {
	args := m.Called(ctx, id)
	return document(args)
}

func (m *MockDocumentService) Filter(ctx context.Context, c search.Criteria) ([]model.Document, error) {
	args := m.Called(ctx, c)
	return documents(args)
}

func (m *MockDocumentService) ControlQueue(ctx context.Context, status string) ([]model.Document, error) {
	args := m.Called(ctx, status)
	return documents(args)
}

func (m *MockDocumentService) ProcurementQueue(ctx context.Context, c search.ProcurementCriteria) ([]model.Document, error) {
	args := m.Called(ctx, c)
	return documents(args)
}

func document(args mock.Arguments) (*model.Document, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Document), args.Error(1)
}

func documents(args mock.Arguments) ([]model.Document, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Document), args.Error(1)
}
