package repository

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/shenikar/geo_checkin_service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func TestMemoryCacheStore_ExpiresLazily(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)}
	store := NewMemoryCacheStore(10, clock.Now)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k", &models.CacheEntry{Payload: json.RawMessage(`[1]`), CreatedAt: clock.now}, time.Minute))

	clock.now = clock.now.Add(59 * time.Second)
	got, err := store.Get(ctx, "k")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, json.RawMessage(`[1]`), got.Payload)

	clock.now = clock.now.Add(time.Second)
	got, err = store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.Equal(t, 0, store.Len())
}

func TestMemoryCacheStore_ReturnsCopies(t *testing.T) {
	store := NewMemoryCacheStore(10, nil)
	ctx := context.Background()
	payload := json.RawMessage(`[1]`)

	require.NoError(t, store.Set(ctx, "k", &models.CacheEntry{Payload: payload, CreatedAt: time.Now()}, time.Minute))
	payload[1] = '2'

	got, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, json.RawMessage(`[1]`), got.Payload)
}

func TestMemoryCacheStore_EvictsWhenFull(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)}
	store := NewMemoryCacheStore(2, clock.Now)
	ctx := context.Background()
	entry := &models.CacheEntry{Payload: json.RawMessage(`[]`), CreatedAt: clock.now}

	require.NoError(t, store.Set(ctx, "old", entry, time.Second))
	require.NoError(t, store.Set(ctx, "fresh", entry, time.Hour))
	clock.now = clock.now.Add(2 * time.Second)
	require.NoError(t, store.Set(ctx, "new", entry, time.Hour))

	assert.Equal(t, 2, store.Len())
	got, err := store.Get(ctx, "fresh")
	require.NoError(t, err)
	assert.NotNil(t, got)
	got, err = store.Get(ctx, "new")
	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestMemoryCacheStore_Delete(t *testing.T) {
	store := NewMemoryCacheStore(0, nil)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k", &models.CacheEntry{Payload: json.RawMessage(`[]`)}, time.Minute))
	require.NoError(t, store.Delete(ctx, "k"))

	got, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Nil(t, got)
}
