package service

import (
	"context"

	"doctrack/internal/model"
	"doctrack/internal/notify"
)

// NotificationService exposes the notification list. *notify.Emitter satisfies it.
type NotificationService interface {
	List(ctx context.Context) ([]model.Notification, error)
	ClearAll(ctx context.Context) error
}

var _ NotificationService = (*notify.Emitter)(nil)
