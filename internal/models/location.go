package models

import (
	"time"
)

// Location представляет запись о местоположении пользователя.
// Записи только добавляются, для поиска важна последняя по времени.
type Location struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserLocation - пользователь вместе с его последней известной точкой
type UserLocation struct {
	User       User
	Latitude   float64
	Longitude  float64
	RecordedAt time.Time
}
