package memory

import (
	"context"
	"sync"

	"doctrack/internal/model"
	"doctrack/internal/repository"
)

// NotificationMemory keeps notifications in process memory, most recent first.
type NotificationMemory struct {
	mu    sync.RWMutex
	items []model.Notification
}

func NewNotificationMemory() *NotificationMemory {
	return &NotificationMemory{}
}

var _ repository.NotificationRepository = (*NotificationMemory)(nil)

func (r *NotificationMemory) Add(_ context.Context, n *model.Notification) error {
	r.mu.Lock()
	r.items = append([]model.Notification{*n}, r.items...)
	r.mu.Unlock()
	return nil
}

func (r *NotificationMemory) List(_ context.Context) ([]model.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]model.Notification{}, r.items...), nil
}

func (r *NotificationMemory) Clear(_ context.Context) error {
	r.mu.Lock()
	r.items = nil
	r.mu.Unlock()
	return nil
}
