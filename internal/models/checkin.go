package models

import (
	"time"

	"github.com/google/uuid"
)

// Checkin - принятая отметка пользователя в месте
type Checkin struct {
	ID          uuid.UUID `json:"id"`
	UserID      string    `json:"user_id"`
	PlaceID     int64     `json:"place_id"`
	CheckinTime time.Time `json:"checkin_time"`
	// CooldownBucket - номер окна ожидания, в которое попала отметка
	CooldownBucket int64 `json:"-"`
}

// CheckinResult - итог попытки отметиться
type CheckinResult struct {
	Accepted        bool
	Checkin         *Checkin
	CheckinCount    int
	LastCheckinTime *time.Time
	HoursRemaining  float64
}

// CheckinStatus - текущее состояние пары (пользователь, место)
type CheckinStatus struct {
	Eligible        bool
	LastCheckinTime *time.Time
	HoursRemaining  float64
}

// UserCheckinCount - количество отметок пользователя в месте
type UserCheckinCount struct {
	UserID string `json:"user_id"`
	Count  int    `json:"count"`
}
