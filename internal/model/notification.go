package model

import "time"

// Notification is a transient alert shown to users after certain lifecycle events.
type Notification struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Timestamp string    `json:"timestamp"`
	Read      bool      `json:"read"`
	DocID     string    `json:"docId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
