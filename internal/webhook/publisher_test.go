package webhook

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMiniRedisClient(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func sampleEvent() WebhookEvent {
	return WebhookEvent{
		Type:         EventCheckinAccepted,
		CheckinID:    uuid.MustParse("8c1c2b3e-2f6b-4c55-9f0e-7d7c7a1b2c3d"),
		UserID:       "u1",
		PlaceID:      42,
		CheckinCount: 3,
		Timestamp:    time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestRedisWebhookPublisher_Publish(t *testing.T) {
	mr, client := newMiniRedisClient(t)
	publisher := NewRedisWebhookPublisher(client)

	require.NoError(t, publisher.Publish(context.Background(), sampleEvent()))

	items, err := mr.List(webhookQueueKey)
	require.NoError(t, err)
	require.Len(t, items, 1)

	var got WebhookEvent
	require.NoError(t, json.Unmarshal([]byte(items[0]), &got))
	assert.Equal(t, sampleEvent(), got)
}

func TestRedisWebhookPublisher_RedisDown(t *testing.T) {
	mr, client := newMiniRedisClient(t)
	publisher := NewRedisWebhookPublisher(client)
	mr.Close()

	err := publisher.Publish(context.Background(), sampleEvent())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to publish webhook event")
}
