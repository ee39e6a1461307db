package repository

import (
	"context"
	"errors"

	"doctrack/internal/model"
)

// ErrNotFound is returned when no document or record matches the given ID.
var ErrNotFound = errors.New("record not found")

// Transition describes one status change applied by UpdateStatus.
type Transition struct {
	Status model.DocStatus
	// ReplaceRejection controls whether RejectionReason and RejectionReasons overwrite the stored values.
	ReplaceRejection bool
	RejectionReason  string
	RejectionReasons []model.RejectionReason
	// Entry is appended to the document history when non-nil.
	Entry *model.HistoryEntry
}

// DocumentRepository holds the authoritative ordered sequence of documents, most recent first.
// Documents are only appended or updated; there is no delete path.
type DocumentRepository interface {
	// Add assigns a fresh ID, forces status PENDING and stores the document at the front.
	Add(ctx context.Context, doc *model.Document) (*model.Document, error)

	// UpdateStatus applies t to the document with the given ID.
	// It returns ErrNotFound and changes nothing when the ID is unknown.
	UpdateStatus(ctx context.Context, id string, t Transition) (*model.Document, error)

	// AddAttachment appends attachment metadata to a document.
	AddAttachment(ctx context.Context, id string, att model.Attachment) (*model.Document, error)

	// FindByID returns a document by its ID or ErrNotFound.
	FindByID(ctx context.Context, id string) (*model.Document, error)

	// All returns a copy of every document in store order.
	All(ctx context.Context) ([]model.Document, error)
}
