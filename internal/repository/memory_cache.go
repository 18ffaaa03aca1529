package repository

import (
	"context"
	"sync"
	"time"

	"github.com/shenikar/geo_checkin_service/internal/models"
	"github.com/shenikar/geo_checkin_service/internal/service"
)

const defaultMemoryCacheEntries = 10000

type memoryEntry struct {
	entry     models.CacheEntry
	expiresAt time.Time
}

// MemoryCacheStore - кеш в памяти процесса для запуска без Redis.
// Устаревшие записи удаляются при чтении или при переполнении.
type MemoryCacheStore struct {
	mu         sync.Mutex
	entries    map[string]memoryEntry
	maxEntries int
	now        func() time.Time
}

func NewMemoryCacheStore(maxEntries int, now func() time.Time) *MemoryCacheStore {
	if maxEntries <= 0 {
		maxEntries = defaultMemoryCacheEntries
	}
	if now == nil {
		now = time.Now
	}
	return &MemoryCacheStore{
		entries:    make(map[string]memoryEntry),
		maxEntries: maxEntries,
		now:        now,
	}
}

var _ service.CacheStore = (*MemoryCacheStore)(nil)

func (s *MemoryCacheStore) Get(_ context.Context, key string) (*models.CacheEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.entries[key]
	if !ok {
		return nil, nil
	}
	if !s.now().Before(item.expiresAt) {
		delete(s.entries, key)
		return nil, nil
	}
	entry := item.entry
	entry.Payload = append([]byte(nil), item.entry.Payload...)
	return &entry, nil
}

func (s *MemoryCacheStore) Set(_ context.Context, key string, entry *models.CacheEntry, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if _, exists := s.entries[key]; !exists && len(s.entries) >= s.maxEntries {
		s.evictLocked(now)
	}

	stored := *entry
	stored.Payload = append([]byte(nil), entry.Payload...)
	s.entries[key] = memoryEntry{entry: stored, expiresAt: now.Add(ttl)}
	return nil
}

func (s *MemoryCacheStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, key)
	return nil
}

// Len возвращает количество записей, включая еще не удаленные устаревшие
func (s *MemoryCacheStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// evictLocked удаляет устаревшие записи, а если их нет - одну произвольную
func (s *MemoryCacheStore) evictLocked(now time.Time) {
	for key, item := range s.entries {
		if !now.Before(item.expiresAt) {
			delete(s.entries, key)
		}
	}
	if len(s.entries) < s.maxEntries {
		return
	}
	for key := range s.entries {
		delete(s.entries, key)
		return
	}
}
