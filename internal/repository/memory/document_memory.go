package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"doctrack/internal/model"
	"doctrack/internal/repository"
)

// DocumentMemory is an in-process implementation of repository.DocumentRepository.
// Contents are lost when the process exits.
type DocumentMemory struct {
	mu   sync.RWMutex
	docs []model.Document
	now  func() time.Time
}

// NewDocumentMemory creates a store preloaded with initial, kept in the given order.
func NewDocumentMemory(initial ...model.Document) *DocumentMemory {
	docs := make([]model.Document, 0, len(initial))
	for _, d := range initial {
		docs = append(docs, d.Clone())
	}
	return &DocumentMemory{docs: docs, now: time.Now}
}

var _ repository.DocumentRepository = (*DocumentMemory)(nil)

func (r *DocumentMemory) Add(_ context.Context, doc *model.Document) (*model.Document, error) {
	if err := doc.CheckDetails(); err != nil {
		return nil, err
	}
	stored := doc.Clone()
	stored.ID = uuid.NewString()
	stored.Status = model.StatusPending
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = r.now().UTC()
	}
	if stored.Attachments == nil {
		stored.Attachments = []model.Attachment{}
	}
	if stored.History == nil {
		stored.History = []model.HistoryEntry{}
	}

	r.mu.Lock()
	r.docs = append([]model.Document{stored}, r.docs...)
	r.mu.Unlock()

	out := stored.Clone()
	return &out, nil
}

func (r *DocumentMemory) UpdateStatus(_ context.Context, id string, t repository.Transition) (*model.Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, repository.ErrNotFound
	}
	d := r.docs[i].Clone()
	d.Status = t.Status
	if t.ReplaceRejection {
		d.RejectionReason = t.RejectionReason
		d.RejectionReasons = append([]model.RejectionReason(nil), t.RejectionReasons...)
	}
	if t.Entry != nil {
		d.History = append(d.History, *t.Entry)
	}
	r.docs[i] = d

	out := d.Clone()
	return &out, nil
}

func (r *DocumentMemory) AddAttachment(_ context.Context, id string, att model.Attachment) (*model.Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, repository.ErrNotFound
	}
	d := r.docs[i].Clone()
	d.Attachments = append(d.Attachments, att)
	r.docs[i] = d

	out := d.Clone()
	return &out, nil
}

func (r *DocumentMemory) FindByID(_ context.Context, id string) (*model.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, repository.ErrNotFound
	}
	out := r.docs[i].Clone()
	return &out, nil
}

func (r *DocumentMemory) All(_ context.Context) ([]model.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Document, len(r.docs))
	for i, d := range r.docs {
		out[i] = d.Clone()
	}
	return out, nil
}

// indexOf must be called with r.mu held.
func (r *DocumentMemory) indexOf(id string) int {
	for i := range r.docs {
		if r.docs[i].ID == id {
			return i
		}
	}
	return -1
}
