package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/geo_checkin_service/internal/models"
	"github.com/shenikar/geo_checkin_service/internal/service"
)

type SearchCacheRepository struct {
	redisClient *redis.Client
}

func NewSearchCacheRepository(redisClient *redis.Client) service.CacheStore {
	return &SearchCacheRepository{redisClient: redisClient}
}

// Get пытается получить результат поиска из Redis; nil, nil при промахе
func (r *SearchCacheRepository) Get(ctx context.Context, key string) (*models.CacheEntry, error) {
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get search results from cache: %w", err)
	}

	entry := &models.CacheEntry{}
	if err := json.Unmarshal(val, entry); err != nil {
		return nil, fmt.Errorf("failed to unmarshal search cache entry: %w", err)
	}
	return entry, nil
}

// Set сохраняет результат поиска в Redis. TTL в Redis освобождает брошенные ключи,
// свежесть записи дополнительно проверяется при чтении
func (r *SearchCacheRepository) Set(ctx context.Context, key string, entry *models.CacheEntry, ttl time.Duration) error {
	val, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal search cache entry: %w", err)
	}
	if err := r.redisClient.Set(ctx, key, val, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set search results in cache: %w", err)
	}
	return nil
}

// Delete удаляет результат поиска из Redis кэша
func (r *SearchCacheRepository) Delete(ctx context.Context, key string) error {
	if err := r.redisClient.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to invalidate search cache: %w", err)
	}
	return nil
}
