package repository

import (
	"context"

	"doctrack/internal/model"
)

// NotificationRepository keeps user-facing alerts, most recent first.
type NotificationRepository interface {
	Add(ctx context.Context, n *model.Notification) error
	List(ctx context.Context) ([]model.Notification, error)
	// Clear deletes every notification.
	Clear(ctx context.Context) error
}
