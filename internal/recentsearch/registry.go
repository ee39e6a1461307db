package recentsearch

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"doctrack/internal/kvstore"
)

// Registry hands out one Cache per user, each under its own slot key.
type Registry struct {
	mu     sync.Mutex
	slot   kvstore.Slot
	log    *zap.Logger
	caches map[string]*Cache
}

func NewRegistry(slot kvstore.Slot, log *zap.Logger) *Registry {
	if log == nil {
		log = zap.NewNop()
	}
	return &Registry{slot: slot, log: log, caches: make(map[string]*Cache)}
}

// For returns the cache of userID, loading it on first use.
func (r *Registry) For(ctx context.Context, userID string) (*Cache, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c, ok := r.caches[userID]; ok {
		return c, nil
	}
	c, err := Load(ctx, r.slot, SlotKey(userID), r.log)
	if err != nil {
		return nil, err
	}
	r.caches[userID] = c
	return c, nil
}

// SlotKey namespaces Key by user.
func SlotKey(userID string) string {
	if userID == "" {
		return Key
	}
	return Key + ":" + userID
}
