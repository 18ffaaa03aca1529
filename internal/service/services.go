package service

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/shenikar/geo_checkin_service/internal/geo"
	"github.com/shenikar/geo_checkin_service/internal/models"
)

//go:generate mockgen -source=services.go -destination=mocks/services.go -package=mocks

// SearchService определяет контракт поиска ближайших мест и пользователей
type SearchService interface {
	SearchNearbyPlaces(ctx context.Context, center geo.Coordinate, radiusKm float64) ([]*models.NearbyPlace, error)
	SearchNearbyUsers(ctx context.Context, center geo.Coordinate, radiusKm float64) ([]*models.NearbyUser, error)
}

// CheckinService определяет контракт отметок с периодом ожидания
type CheckinService interface {
	AttemptCheckin(ctx context.Context, userID string, placeID int64) (*models.CheckinResult, error)
	CheckinStatus(ctx context.Context, userID string, placeID int64) (*models.CheckinStatus, error)
	ListCheckinCounts(ctx context.Context, placeID int64) ([]models.UserCheckinCount, error)
}

// PlaceService определяет контракт управления местами
type PlaceService interface {
	CreatePlace(ctx context.Context, place *models.Place) error
	GetPlace(ctx context.Context, id int64) (*models.Place, error)
}

// UserService определяет контракт управления пользователями и их местоположениями
type UserService interface {
	CreateOrUpdateUser(ctx context.Context, user *models.User) (bool, error)
	GetUser(ctx context.Context, userID string) (*models.User, error)
	ReportLocation(ctx context.Context, location *models.Location) error
	GetLocation(ctx context.Context, id int64) (*models.Location, error)
	ListLocations(ctx context.Context, userID string) ([]*models.Location, error)
	GetStats(ctx context.Context) (int, error)
}

func validateSearch(center geo.Coordinate, radiusKm float64) error {
	if err := center.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidParameter, err)
	}
	if math.IsNaN(radiusKm) || math.IsInf(radiusKm, 0) || radiusKm <= 0 {
		return fmt.Errorf("%w: radius must be a positive number", ErrInvalidParameter)
	}
	return nil
}

func validateCheckinKey(userID string, placeID int64) error {
	if strings.TrimSpace(userID) == "" {
		return fmt.Errorf("%w: user_id is required", ErrInvalidParameter)
	}
	if placeID <= 0 {
		return fmt.Errorf("%w: place id must be positive", ErrInvalidParameter)
	}
	return nil
}
