package v1

import (
	"time"

	"github.com/google/uuid"
)

// CreatePlaceRequest DTO для создания места
// @Description DTO для создания места
type CreatePlaceRequest struct {
	Name        string   `json:"name" validate:"required,min=1,max=255"`
	Description string   `json:"description,omitempty" validate:"max=2000"`
	Latitude    *float64 `json:"latitude" validate:"required,latitude"`
	Longitude   *float64 `json:"longitude" validate:"required,longitude"`
	Rating      float64  `json:"rating" validate:"gte=0,lte=5"`
}

// PlaceResponse DTO для ответа с информацией о месте
// @Description DTO для ответа с информацией о месте
type PlaceResponse struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	Rating       float64   `json:"rating"`
	CheckinCount int       `json:"checkin_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NearbyPlaceResponse - место в результате поиска, distance в километрах
type NearbyPlaceResponse struct {
	PlaceResponse
	Distance float64 `json:"distance"`
}

// NearbyPlacesData - тело поля data в ответе поиска мест
type NearbyPlacesData struct {
	Count   int                    `json:"count"`
	Results []*NearbyPlaceResponse `json:"results"`
}

// NearbyPlacesResponse DTO для ответа на поиск ближайших мест
// @Description DTO для ответа на поиск ближайших мест
type NearbyPlacesResponse struct {
	Data NearbyPlacesData `json:"data"`
}

// UpsertUserRequest DTO для создания или обновления пользователя
// @Description DTO для создания или обновления пользователя
type UpsertUserRequest struct {
	UserID string  `json:"user_id" validate:"required,max=255"`
	Name   string  `json:"name" validate:"max=255"`
	Image  *string `json:"image,omitempty" validate:"omitempty,url"`
}

// UserResponse DTO для ответа с информацией о пользователе
// @Description DTO для ответа с информацией о пользователе
type UserResponse struct {
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Image     *string   `json:"image,omitempty"`
	LastLat   *float64  `json:"last_lat,omitempty"`
	LastLng   *float64  `json:"last_lng,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NearbyUserResponse - пользователь в результате поиска, distance в километрах
type NearbyUserResponse struct {
	UserResponse
	Distance float64 `json:"distance"`
}

// NearbyUsersData - тело поля data в ответе поиска пользователей
type NearbyUsersData struct {
	Count   int                   `json:"count"`
	Results []*NearbyUserResponse `json:"results"`
}

// NearbyUsersResponse DTO для ответа на поиск ближайших пользователей
// @Description DTO для ответа на поиск ближайших пользователей
type NearbyUsersResponse struct {
	Data NearbyUsersData `json:"data"`
}

// ReportLocationRequest DTO для передачи текущих координат пользователя
// @Description DTO для передачи текущих координат пользователя
type ReportLocationRequest struct {
	UserID    string   `json:"user_id" validate:"required,max=255"`
	Latitude  *float64 `json:"latitude" validate:"required,latitude"`
	Longitude *float64 `json:"longitude" validate:"required,longitude"`
}

// LocationResponse DTO для ответа с записью о местоположении
// @Description DTO для ответа с записью о местоположении
type LocationResponse struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CheckinRequest DTO для попытки отметиться в месте
// @Description DTO для попытки отметиться в месте
type CheckinRequest struct {
	UserID string `json:"user_id" validate:"required,max=255"`
}

// CheckinResponse DTO для результата отметки.
// При отказе заполнены last_checkin_time и hours_remaining.
// @Description DTO для результата отметки
type CheckinResponse struct {
	Accepted        bool       `json:"accepted"`
	CheckinID       *uuid.UUID `json:"checkin_id,omitempty"`
	CheckinTime     *time.Time `json:"checkin_time,omitempty"`
	CheckinCount    *int       `json:"checkin_count,omitempty"`
	LastCheckinTime *time.Time `json:"last_checkin_time,omitempty"`
	HoursRemaining  *float64   `json:"hours_remaining,omitempty"`
}

// CheckinStatusResponse DTO для состояния пары (пользователь, место)
// @Description DTO для состояния пары (пользователь, место)
type CheckinStatusResponse struct {
	Eligible        bool       `json:"eligible"`
	LastCheckinTime *time.Time `json:"last_checkin_time,omitempty"`
	HoursRemaining  *float64   `json:"hours_remaining,omitempty"`
}

// UserCheckinCountResponse - количество отметок одного пользователя
type UserCheckinCountResponse struct {
	UserID string `json:"user_id"`
	Count  int    `json:"count"`
}

// CheckinCountsResponse DTO для количества отметок в месте по пользователям
// @Description DTO для количества отметок в месте по пользователям
type CheckinCountsResponse struct {
	PlaceID int64                      `json:"place_id"`
	Counts  []UserCheckinCountResponse `json:"counts"`
}

// StatsResponse DTO для ответа со статистикой
// @Description DTO для ответа со статистикой
type StatsResponse struct {
	UserCount     int `json:"user_count"`
	WindowMinutes int `json:"window_minutes"`
}
