package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shenikar/geo_checkin_service/internal/geo"
	"github.com/shenikar/geo_checkin_service/internal/models"
	"github.com/shenikar/geo_checkin_service/internal/repository"
	"github.com/shenikar/geo_checkin_service/internal/service"
	"github.com/shenikar/geo_checkin_service/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func sampleNearbyPlaces() []*models.NearbyPlace {
	return []*models.NearbyPlace{
		{Place: models.Place{ID: 1, Name: "Lotus Temple", Latitude: 28.5535, Longitude: 77.2588, Rating: 4.7, CheckinCount: 12}, Distance: 0.8},
		{Place: models.Place{ID: 2, Name: "Akshardham", Latitude: 28.6127, Longitude: 77.2773, Rating: 4.8}, Distance: 3.2},
	}
}

func newTestCachedSearch(t *testing.T, clock *testClock) (*service.CachedSearchService, *mocks.MockSearchService, *repository.MemoryCacheStore) {
	ctrl := gomock.NewController(t)
	next := mocks.NewMockSearchService(ctrl)
	store := repository.NewMemoryCacheStore(100, clock.Now)
	cached := service.NewCachedSearchService(next, store, 5*time.Minute, clock.Now, newTestLogger(), nil)
	return cached, next, store
}

func TestCacheKey_Rounding(t *testing.T) {
	base := service.CacheKey(geo.Coordinate{Lat: 28.6139, Lng: 77.2090}, 5)

	assert.Equal(t, base, service.CacheKey(geo.Coordinate{Lat: 28.61391, Lng: 77.20899}, 5.04))
	assert.NotEqual(t, base, service.CacheKey(geo.Coordinate{Lat: 28.6141, Lng: 77.2090}, 5))
	assert.NotEqual(t, base, service.CacheKey(geo.Coordinate{Lat: 28.6139, Lng: 77.2090}, 5.1))
	assert.Contains(t, base, "nearby_places:")
}

func TestCacheKey_NegativeZero(t *testing.T) {
	assert.Equal(t,
		service.CacheKey(geo.Coordinate{Lat: 0, Lng: 0}, 1),
		service.CacheKey(geo.Coordinate{Lat: -0.00001, Lng: -0.00002}, 1),
	)
}

func TestCachedSearch_HitWithinTTL(t *testing.T) {
	// Подготовка
	ctx := context.Background()
	clock := newTestClock(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))
	cached, next, _ := newTestCachedSearch(t, clock)
	expected := sampleNearbyPlaces()

	// Ожидания: хранилище вызывается только один раз
	next.EXPECT().SearchNearbyPlaces(gomock.Any(), delhi, 5.0).Return(expected, nil).Times(1)

	// Действие
	first, err := cached.SearchNearbyPlaces(ctx, delhi, 5)
	require.NoError(t, err)
	clock.Advance(4 * time.Minute)
	second, err := cached.SearchNearbyPlaces(ctx, geo.Coordinate{Lat: delhi.Lat + 0.00001, Lng: delhi.Lng}, 5)
	require.NoError(t, err)

	// Проверки
	assert.Equal(t, expected, first)
	assert.Equal(t, first, second)
}

func TestCachedSearch_ExpiredEntryRecomputed(t *testing.T) {
	ctx := context.Background()
	clock := newTestClock(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))
	cached, next, _ := newTestCachedSearch(t, clock)
	stale := sampleNearbyPlaces()
	fresh := sampleNearbyPlaces()[:1]

	gomock.InOrder(
		next.EXPECT().SearchNearbyPlaces(gomock.Any(), delhi, 5.0).Return(stale, nil),
		next.EXPECT().SearchNearbyPlaces(gomock.Any(), delhi, 5.0).Return(fresh, nil),
	)

	_, err := cached.SearchNearbyPlaces(ctx, delhi, 5)
	require.NoError(t, err)

	clock.Advance(5 * time.Minute)
	got, err := cached.SearchNearbyPlaces(ctx, delhi, 5)

	require.NoError(t, err)
	assert.Equal(t, fresh, got)
}

func TestCachedSearch_EmptyResultIsCached(t *testing.T) {
	ctx := context.Background()
	clock := newTestClock(time.Now())
	cached, next, store := newTestCachedSearch(t, clock)

	next.EXPECT().SearchNearbyPlaces(gomock.Any(), delhi, 1.0).Return([]*models.NearbyPlace{}, nil).Times(1)

	for i := 0; i < 3; i++ {
		got, err := cached.SearchNearbyPlaces(ctx, delhi, 1)
		require.NoError(t, err)
		assert.Empty(t, got)
	}
	assert.Equal(t, 1, store.Len())
}

func TestCachedSearch_ErrorsAreNotCached(t *testing.T) {
	ctx := context.Background()
	clock := newTestClock(time.Now())
	cached, next, store := newTestCachedSearch(t, clock)

	gomock.InOrder(
		next.EXPECT().SearchNearbyPlaces(gomock.Any(), delhi, 5.0).Return(nil, service.ErrStoreUnavailable),
		next.EXPECT().SearchNearbyPlaces(gomock.Any(), delhi, 5.0).Return(sampleNearbyPlaces(), nil),
	)

	_, err := cached.SearchNearbyPlaces(ctx, delhi, 5)
	require.ErrorIs(t, err, service.ErrStoreUnavailable)
	assert.Equal(t, 0, store.Len())

	got, err := cached.SearchNearbyPlaces(ctx, delhi, 5)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestCachedSearch_CacheFailureFallsBack(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	next := mocks.NewMockSearchService(ctrl)
	store := mocks.NewMockCacheStore(ctrl)
	cached := service.NewCachedSearchService(next, store, time.Minute, nil, newTestLogger(), nil)
	cacheErr := errors.New("connection refused")

	store.EXPECT().Get(gomock.Any(), service.CacheKey(delhi, 5)).Return(nil, cacheErr).Times(1)
	store.EXPECT().Set(gomock.Any(), service.CacheKey(delhi, 5), gomock.Any(), time.Minute).Return(cacheErr).Times(1)
	next.EXPECT().SearchNearbyPlaces(gomock.Any(), delhi, 5.0).Return(sampleNearbyPlaces(), nil).Times(1)

	got, err := cached.SearchNearbyPlaces(ctx, delhi, 5)

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestCachedSearch_CorruptEntryRecomputed(t *testing.T) {
	ctx := context.Background()
	clock := newTestClock(time.Now())
	cached, next, store := newTestCachedSearch(t, clock)
	key := service.CacheKey(delhi, 5)
	require.NoError(t, store.Set(ctx, key, &models.CacheEntry{Payload: []byte(`{"broken"`), CreatedAt: clock.Now()}, time.Minute))

	next.EXPECT().SearchNearbyPlaces(gomock.Any(), delhi, 5.0).Return(sampleNearbyPlaces(), nil).Times(1)

	got, err := cached.SearchNearbyPlaces(ctx, delhi, 5)

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestCachedSearch_Invalidate(t *testing.T) {
	ctx := context.Background()
	clock := newTestClock(time.Now())
	cached, next, store := newTestCachedSearch(t, clock)

	next.EXPECT().SearchNearbyPlaces(gomock.Any(), delhi, 5.0).Return(sampleNearbyPlaces(), nil).Times(2)

	_, err := cached.SearchNearbyPlaces(ctx, delhi, 5)
	require.NoError(t, err)
	require.NoError(t, cached.Invalidate(ctx, delhi, 5))
	assert.Equal(t, 0, store.Len())

	_, err = cached.SearchNearbyPlaces(ctx, delhi, 5)
	require.NoError(t, err)
}

func TestCachedSearch_UsersBypassCache(t *testing.T) {
	ctx := context.Background()
	clock := newTestClock(time.Now())
	cached, next, store := newTestCachedSearch(t, clock)
	users := []*models.NearbyUser{{User: models.User{UserID: "u1"}, Distance: 0.3}}

	next.EXPECT().SearchNearbyUsers(ctx, delhi, 2.0).Return(users, nil).Times(2)

	for i := 0; i < 2; i++ {
		got, err := cached.SearchNearbyUsers(ctx, delhi, 2)
		require.NoError(t, err)
		assert.Equal(t, users, got)
	}
	assert.Equal(t, 0, store.Len())
}

func TestCachedSearch_InvalidParametersSkipCache(t *testing.T) {
	ctx := context.Background()
	clock := newTestClock(time.Now())
	cached, _, store := newTestCachedSearch(t, clock)

	_, err := cached.SearchNearbyPlaces(ctx, geo.Coordinate{Lat: 100, Lng: 0}, 5)
	assert.ErrorIs(t, err, service.ErrInvalidParameter)

	_, err = cached.SearchNearbyPlaces(ctx, delhi, -3)
	assert.ErrorIs(t, err, service.ErrInvalidParameter)
	assert.Equal(t, 0, store.Len())
}

func TestCachedSearch_ConcurrentMissesCoalesced(t *testing.T) {
	ctx := context.Background()
	clock := newTestClock(time.Now())
	cached, next, _ := newTestCachedSearch(t, clock)
	release := make(chan struct{})

	next.EXPECT().SearchNearbyPlaces(gomock.Any(), delhi, 5.0).
		DoAndReturn(func(context.Context, geo.Coordinate, float64) ([]*models.NearbyPlace, error) {
			<-release
			return sampleNearbyPlaces(), nil
		}).
		Times(1)

	const callers = 8
	var wg sync.WaitGroup
	results := make([][]*models.NearbyPlace, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got, err := cached.SearchNearbyPlaces(ctx, delhi, 5)
			assert.NoError(t, err)
			results[i] = got
		}(i)
	}
	time.Sleep(100 * time.Millisecond)
	close(release)
	wg.Wait()

	for _, got := range results {
		assert.Len(t, got, 2)
	}
}

func TestCachedSearch_HitTrimmedToRequestedRadius(t *testing.T) {
	// Подготовка: место ровно в 5 км к северу, запись кеша считается для 5.04 км
	ctx := context.Background()
	clock := newTestClock(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))
	search, placeRepo, _ := newTestSearchService(t)
	store := repository.NewMemoryCacheStore(100, clock.Now)
	cached := service.NewCachedSearchService(search, store, 5*time.Minute, clock.Now, newTestLogger(), nil)

	place := placeAt(7, offsetNorth(delhi, 5.0))
	placeRepo.EXPECT().FindInBox(gomock.Any(), gomock.Any()).Return([]*models.Place{place}, nil).Times(1)

	// Действие
	wide, err := cached.SearchNearbyPlaces(ctx, delhi, 5.04)
	require.NoError(t, err)
	narrow, err := cached.SearchNearbyPlaces(ctx, delhi, 4.96)
	require.NoError(t, err)

	// Проверки: вторая выборка взята из кеша, но не выходит за радиус
	require.Len(t, wide, 1)
	assert.Empty(t, narrow)
	assert.Equal(t, service.CacheKey(delhi, 5.04), service.CacheKey(delhi, 4.96))
}

func TestCachedSearch_HitKeepsEntriesInsideRadius(t *testing.T) {
	ctx := context.Background()
	clock := newTestClock(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))
	cached, next, _ := newTestCachedSearch(t, clock)
	stored := []*models.NearbyPlace{
		{Place: models.Place{ID: 1}, Distance: 1.5},
		{Place: models.Place{ID: 2}, Distance: 4.95},
		{Place: models.Place{ID: 3}, Distance: 5.03},
	}

	next.EXPECT().SearchNearbyPlaces(gomock.Any(), delhi, 5.03).Return(stored, nil).Times(1)

	first, err := cached.SearchNearbyPlaces(ctx, delhi, 5.03)
	require.NoError(t, err)
	second, err := cached.SearchNearbyPlaces(ctx, delhi, 4.97)
	require.NoError(t, err)

	assert.Len(t, first, 3)
	require.Len(t, second, 2)
	for _, r := range second {
		assert.LessOrEqual(t, r.Distance, 4.97)
	}
}
