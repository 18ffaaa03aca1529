package service

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shenikar/geo_checkin_service/internal/geo"
	"github.com/shenikar/geo_checkin_service/internal/metrics"
	"github.com/shenikar/geo_checkin_service/internal/models"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

const (
	cacheKeyPrefix = "nearby_places:"
	// DefaultSearchCacheTTL - срок жизни результата поиска мест по умолчанию
	DefaultSearchCacheTTL = 300 * time.Second
)

// CachedSearchService кеширует поиск мест по округленным координатам.
// Поиск пользователей всегда идет в хранилище: их координаты часто меняются.
type CachedSearchService struct {
	next    SearchService
	store   CacheStore
	ttl     time.Duration
	now     func() time.Time
	group   singleflight.Group
	logger  *logrus.Logger
	metrics *metrics.Metrics
}

// NewCachedSearchService оборачивает next кешем со сроком жизни ttl.
// now задает источник времени для проверки устаревания записей.
func NewCachedSearchService(next SearchService, store CacheStore, ttl time.Duration, now func() time.Time, logger *logrus.Logger, m *metrics.Metrics) *CachedSearchService {
	if ttl <= 0 {
		ttl = DefaultSearchCacheTTL
	}
	if now == nil {
		now = time.Now
	}
	return &CachedSearchService{
		next:    next,
		store:   store,
		ttl:     ttl,
		now:     now,
		logger:  logger,
		metrics: m,
	}
}

// CacheKey строит ключ кеша: lat и lng округляются до 4 знаков, радиус до 1.
// Близкие запросы (в пределах ~11 м) попадают в одну запись.
func CacheKey(center geo.Coordinate, radiusKm float64) string {
	raw := fmt.Sprintf("%.4f:%.4f:%.1f",
		normalizeZero(geo.RoundTo(center.Lat, 4)),
		normalizeZero(geo.RoundTo(center.Lng, 4)),
		normalizeZero(geo.RoundTo(radiusKm, 1)),
	)
	sum := md5.Sum([]byte(raw))
	return cacheKeyPrefix + hex.EncodeToString(sum[:])
}

// SearchNearbyPlaces возвращает закешированный результат или считает его заново
func (c *CachedSearchService) SearchNearbyPlaces(ctx context.Context, center geo.Coordinate, radiusKm float64) ([]*models.NearbyPlace, error) {
	if err := validateSearch(center, radiusKm); err != nil {
		return nil, err
	}

	key := CacheKey(center, radiusKm)
	log := c.logger.WithFields(logrus.Fields{
		"service":   "search_cache",
		"method":    "SearchNearbyPlaces",
		"cache_key": key,
	})

	if cached, ok := c.lookup(ctx, key, log); ok {
		return trimToRadius(cached, radiusKm), nil
	}

	// Одновременные промахи по одному ключу считаются один раз
	v, err, shared := c.group.Do(key, func() (any, error) {
		detached := context.WithoutCancel(ctx)
		results, err := c.next.SearchNearbyPlaces(detached, center, radiusKm)
		if err != nil {
			return nil, err
		}
		c.save(detached, key, results, log)
		return results, nil
	})
	if err != nil {
		return nil, err
	}
	if shared {
		log.Debug("Cache miss shared with concurrent request")
	}
	return trimToRadius(v.([]*models.NearbyPlace), radiusKm), nil
}

// SearchNearbyUsers не кешируется
func (c *CachedSearchService) SearchNearbyUsers(ctx context.Context, center geo.Coordinate, radiusKm float64) ([]*models.NearbyUser, error) {
	return c.next.SearchNearbyUsers(ctx, center, radiusKm)
}

// Invalidate удаляет запись для заданного запроса
func (c *CachedSearchService) Invalidate(ctx context.Context, center geo.Coordinate, radiusKm float64) error {
	if err := c.store.Delete(ctx, CacheKey(center, radiusKm)); err != nil {
		return fmt.Errorf("service: could not invalidate search cache: %w", err)
	}
	return nil
}

func (c *CachedSearchService) lookup(ctx context.Context, key string, log *logrus.Entry) ([]*models.NearbyPlace, bool) {
	entry, err := c.store.Get(ctx, key)
	if err != nil {
		c.metrics.IncCacheLookup(metrics.CacheError)
		log.WithError(err).Warn("Failed to read search cache, falling back to store")
		return nil, false
	}
	if entry == nil {
		c.metrics.IncCacheLookup(metrics.CacheMiss)
		return nil, false
	}
	if entry.Expired(c.now(), c.ttl) {
		c.metrics.IncCacheLookup(metrics.CacheStale)
		log.Debug("Search cache entry expired")
		return nil, false
	}

	var results []*models.NearbyPlace
	if err := json.Unmarshal(entry.Payload, &results); err != nil {
		c.metrics.IncCacheLookup(metrics.CacheError)
		log.WithError(err).Warn("Failed to decode search cache entry")
		return nil, false
	}
	c.metrics.IncCacheLookup(metrics.CacheHit)
	return results, true
}

func (c *CachedSearchService) save(ctx context.Context, key string, results []*models.NearbyPlace, log *logrus.Entry) {
	payload, err := json.Marshal(results)
	if err != nil {
		log.WithError(err).Warn("Failed to encode search results for cache")
		return
	}
	entry := &models.CacheEntry{Payload: payload, CreatedAt: c.now()}
	if err := c.store.Set(ctx, key, entry, c.ttl); err != nil {
		log.WithError(err).Warn("Failed to write search cache")
	}
}

// trimToRadius отрезает записи дальше radiusKm: ключ округляет радиус,
// поэтому запись могла быть посчитана для чуть большего радиуса.
// Список уже отсортирован по расстоянию.
func trimToRadius(results []*models.NearbyPlace, radiusKm float64) []*models.NearbyPlace {
	for i, r := range results {
		if r.Distance > radiusKm {
			return results[:i]
		}
	}
	return results
}

func normalizeZero(v float64) float64 {
	if v == 0 {
		return 0
	}
	return v
}
