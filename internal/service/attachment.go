package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"doctrack/internal/model"
	"doctrack/internal/repository"
	"doctrack/internal/storage"
)

// AttachmentService stores files against documents and hands out download links.
type AttachmentService interface {
	// Upload streams r to object storage and records it on the document.
	// The stored object is removed again if the metadata cannot be saved.
	Upload(ctx context.Context, docID string, r io.Reader, filename, contentType string, size int64) (*model.Attachment, error)

	// Link returns a time-limited download URL for one attachment.
	Link(ctx context.Context, docID, attachmentID string) (string, error)
}

type attachmentService struct {
	store  storage.Storage
	repo   repository.DocumentRepository
	expiry time.Duration
}

func NewAttachmentService(store storage.Storage, repo repository.DocumentRepository, expiry time.Duration) AttachmentService {
	if expiry <= 0 {
		expiry = 15 * time.Minute
	}
	return &attachmentService{store: store, repo: repo, expiry: expiry}
}

func (s *attachmentService) Upload(ctx context.Context, docID string, r io.Reader, filename, contentType string, size int64) (*model.Attachment, error) {
	ctx, span := tracer.Start(ctx, "AttachmentService.Upload", trace.WithAttributes(attribute.String("document.id", docID)))
	defer span.End()

	if docID == "" {
		return nil, ErrIDRequired
	}
	if r == nil {
		return nil, ErrReaderNil
	}
	if _, err := s.repo.FindByID(ctx, docID); err != nil {
		return nil, mapNotFound(err)
	}

	att := model.Attachment{
		ID:        uuid.NewString(),
		Name:      filename,
		MediaType: contentType,
	}
	key := storage.AttachmentKey(docID, att.ID, filename)

	objInfo, err := s.store.Put(ctx, key, r, storage.PutObjectOptions{
		Size:        size,
		ContentType: contentType,
		Metadata: map[string]string{
			"original-filename": filename,
			"document-id":       docID,
		},
	})
	if err != nil {
		if errors.Is(err, storage.ErrDisabled) {
			return nil, ErrAttachmentsDisabled
		}
		return nil, fmt.Errorf("upload to storage: %w", err)
	}
	att.Size = objInfo.Size
	att.Locator = objInfo.Key

	if _, err := s.repo.AddAttachment(ctx, docID, att); err != nil {
		// Rollback: delete the object from storage
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("db save failed: %w", mapNotFound(err))
	}
	return &att, nil
}

func (s *attachmentService) Link(ctx context.Context, docID, attachmentID string) (string, error) {
	if docID == "" || attachmentID == "" {
		return "", ErrIDRequired
	}
	doc, err := s.repo.FindByID(ctx, docID)
	if err != nil {
		return "", mapNotFound(err)
	}
	for _, a := range doc.Attachments {
		if a.ID != attachmentID {
			continue
		}
		u, err := s.store.PresignGet(ctx, a.Locator, a.Name, s.expiry)
		if errors.Is(err, storage.ErrDisabled) {
			return "", ErrAttachmentsDisabled
		}
		if err != nil {
			return "", fmt.Errorf("presign: %w", err)
		}
		return u, nil
	}
	return "", ErrNotFound
}
