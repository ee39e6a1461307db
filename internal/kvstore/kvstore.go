// Package kvstore provides the small string slots used for per-user client state.
package kvstore

import "context"

// Slot is a string key-value store. Get reports ok=false for a missing key.
type Slot interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
