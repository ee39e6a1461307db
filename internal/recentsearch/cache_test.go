package recentsearch

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"doctrack/internal/kvstore"
)

func newSlot(t *testing.T) *kvstore.SQLite {
	t.Helper()
	s, err := kvstore.OpenSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestCache_AddDedupesAndCaps(t *testing.T) {
	ctx := context.Background()
	c, err := Load(ctx, newSlot(t), Key, nil)
	require.NoError(t, err)

	for _, q := range []string{"a", "b", "c", "d", "e", "f"} {
		require.NoError(t, c.Add(ctx, q))
	}
	assert.Equal(t, []string{"f", "e", "d", "c", "b"}, c.Items())

	require.NoError(t, c.Add(ctx, "d"))
	assert.Equal(t, []string{"d", "f", "e", "c", "b"}, c.Items())

	require.NoError(t, c.Add(ctx, "d"))
	assert.Equal(t, []string{"d", "f", "e", "c", "b"}, c.Items())
}

func TestCache_AddIgnoresBlank(t *testing.T) {
	ctx := context.Background()
	c, err := Load(ctx, newSlot(t), Key, nil)
	require.NoError(t, err)

	require.NoError(t, c.Add(ctx, "   "))
	require.NoError(t, c.Add(ctx, ""))
	assert.Empty(t, c.Items())
}

func TestCache_PersistsToSlot(t *testing.T) {
	ctx := context.Background()
	slot := newSlot(t)

	c, err := Load(ctx, slot, Key, nil)
	require.NoError(t, err)
	require.NoError(t, c.Add(ctx, "QT-MK-1402-0842"))

	raw, ok, err := slot.Get(ctx, Key)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `["QT-MK-1402-0842"]`, raw)

	reloaded, err := Load(ctx, slot, Key, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"QT-MK-1402-0842"}, reloaded.Items())
}

func TestCache_CorruptSlotIsEmpty(t *testing.T) {
	ctx := context.Background()
	slot := newSlot(t)
	require.NoError(t, slot.Set(ctx, Key, "{not json"))

	c, err := Load(ctx, slot, Key, nil)
	require.NoError(t, err)
	assert.Empty(t, c.Items())

	require.NoError(t, c.Add(ctx, "x"))
	assert.Equal(t, []string{"x"}, c.Items())
}

func TestCache_Clear(t *testing.T) {
	ctx := context.Background()
	slot := newSlot(t)
	c, err := Load(ctx, slot, Key, nil)
	require.NoError(t, err)
	require.NoError(t, c.Add(ctx, "x"))

	require.NoError(t, c.Clear(ctx))

	assert.Empty(t, c.Items())
	_, ok, err := slot.Get(ctx, Key)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRegistry_SeparatesUsers(t *testing.T) {
	ctx := context.Background()
	r := NewRegistry(newSlot(t), nil)

	alice, err := r.For(ctx, "u1")
	require.NoError(t, err)
	bob, err := r.For(ctx, "u2")
	require.NoError(t, err)

	require.NoError(t, alice.Add(ctx, "letters"))
	assert.Equal(t, []string{"letters"}, alice.Items())
	assert.Empty(t, bob.Items())

	again, err := r.For(ctx, "u1")
	require.NoError(t, err)
	assert.Same(t, alice, again)
	assert.Equal(t, "qt_recent_searches:u1", SlotKey("u1"))
}
