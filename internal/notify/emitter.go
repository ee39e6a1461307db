// Package notify creates the transient alerts raised by lifecycle events.
package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"doctrack/internal/locale"
	"doctrack/internal/model"
	"doctrack/internal/repository"
)

// Emitter writes notifications to a repository, stamping each with a
// locale-formatted clock string.
type Emitter struct {
	repo   repository.NotificationRepository
	locale locale.Locale
	now    func() time.Time
}

// Option customizes an Emitter.
type Option func(*Emitter)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(e *Emitter) { e.now = now }
}

// WithLocationClock renders timestamps in loc.
func WithLocationClock(loc *time.Location) Option {
	return func(e *Emitter) { e.now = func() time.Time { return time.Now().In(loc) } }
}

func NewEmitter(repo repository.NotificationRepository, l locale.Locale, opts ...Option) *Emitter {
	e := &Emitter{repo: repo, locale: l, now: time.Now}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Emit stores a new unread notification at the front of the list.
func (e *Emitter) Emit(ctx context.Context, title, message, docID string) (*model.Notification, error) {
	now := e.now()
	n := &model.Notification{
		ID:        uuid.NewString(),
		Title:     title,
		Message:   message,
		Timestamp: e.locale.Clock(now),
		DocID:     docID,
		CreatedAt: now.UTC(),
	}
	if err := e.repo.Add(ctx, n); err != nil {
		return nil, fmt.Errorf("store notification: %w", err)
	}
	return n, nil
}

// List returns notifications, most recent first.
func (e *Emitter) List(ctx context.Context) ([]model.Notification, error) {
	return e.repo.List(ctx)
}

// ClearAll deletes every notification.
func (e *Emitter) ClearAll(ctx context.Context) error {
	return e.repo.Clear(ctx)
}
