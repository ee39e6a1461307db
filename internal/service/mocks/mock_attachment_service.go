package mocks

import (
	"context"
	"io"

	"doctrack/internal/model"
	"doctrack/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockAttachmentService struct {
	mock.Mock
}

var _ service.AttachmentService = (*MockAttachmentService)(nil)

func (m *MockAttachmentService) Upload(ctx context.Context, docID string, r io.Reader, filename, contentType string, size int64) (*model.Attachment, error) {
	args := m.Called(ctx, docID, r, filename, contentType, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Attachment), args.Error(1)
}

func (m *MockAttachmentService) Link(ctx context.Context, docID, attachmentID string) (string, error) {
	args := m.Called(ctx, docID, attachmentID)
	return args.String(0), args.Error(1)
}
