// Package recentsearch keeps the short list of queries a user looked up,
// mirrored to a kvstore slot so it survives restarts.
package recentsearch

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"doctrack/internal/kvstore"
)

// Key is the slot key the list is stored under.
const Key = "qt_recent_searches"

// Limit is the maximum number of queries kept.
const Limit = 5

// Cache is a capped, de-duplicated, most-recent-first list of queries.
type Cache struct {
	mu    sync.Mutex
	slot  kvstore.Slot
	key   string
	log   *zap.Logger
	items []string
}

// Load builds a Cache from whatever is stored under key. Unreadable data
// starts an empty list.
func Load(ctx context.Context, slot kvstore.Slot, key string, log *zap.Logger) (*Cache, error) {
	if log == nil {
		log = zap.NewNop()
	}
	c := &Cache{slot: slot, key: key, log: log, items: []string{}}

	raw, ok, err := slot.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", key, err)
	}
	if !ok {
		return c, nil
	}
	var stored []string
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		log.Debug("discarding unreadable recent searches", zap.String("key", key), zap.Error(err))
		return c, nil
	}
	if len(stored) > Limit {
		stored = stored[:Limit]
	}
	c.items = stored
	return c, nil
}

// Items returns a copy of the list.
func (c *Cache) Items() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string{}, c.items...)
}

// Add moves q to the front, dropping an earlier copy and anything past Limit.
// Blank queries are ignored.
func (c *Cache) Add(ctx context.Context, q string) error {
	if strings.TrimSpace(q) == "" {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	next := make([]string, 0, Limit)
	next = append(next, q)
	for _, v := range c.items {
		if v != q && len(next) < Limit {
			next = append(next, v)
		}
	}

	b, err := json.Marshal(next)
	if err != nil {
		return err
	}
	if err := c.slot.Set(ctx, c.key, string(b)); err != nil {
		return fmt.Errorf("write %s: %w", c.key, err)
	}
	c.items = next
	return nil
}

// Clear empties the list and removes the stored slot.
func (c *Cache) Clear(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.slot.Delete(ctx, c.key); err != nil {
		return fmt.Errorf("delete %s: %w", c.key, err)
	}
	c.items = []string{}
	return nil
}
