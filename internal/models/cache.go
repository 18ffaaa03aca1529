package models

import (
	"encoding/json"
	"time"
)

// CacheEntry - сериализованный результат поиска с временем создания
type CacheEntry struct {
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
}

// Expired сообщает, истек ли срок жизни записи к моменту now
func (e *CacheEntry) Expired(now time.Time, ttl time.Duration) bool {
	return !now.Before(e.CreatedAt.Add(ttl))
}
