package models

import "time"

// Place - место с фиксированными координатами (храм, точка интереса)
type Place struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	Rating       float64   `json:"rating"`
	CheckinCount int       `json:"checkin_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NearbyPlace - место из результата поиска с расстоянием до центра в км
type NearbyPlace struct {
	Place
	Distance float64 `json:"distance"`
}
