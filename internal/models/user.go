package models

import "time"

// User - пользователь, который сообщает свое местоположение
type User struct {
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Image     *string   `json:"image,omitempty"`
	LastLat   *float64  `json:"last_lat,omitempty"`
	LastLng   *float64  `json:"last_lng,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NearbyUser - пользователь из результата поиска с расстоянием до центра в км
type NearbyUser struct {
	User
	Distance float64 `json:"distance"`
}
