package service

import (
	"context"
	"time"

	"github.com/shenikar/geo_checkin_service/internal/geo"
	"github.com/shenikar/geo_checkin_service/internal/models"
)

//go:generate mockgen -source=repository.go -destination=mocks/repository.go -package=mocks

// PlaceRepository определяет контракт для работы с бд мест
type PlaceRepository interface {
	Create(ctx context.Context, place *models.Place) error
	GetByID(ctx context.Context, id int64) (*models.Place, error)
	FindInBox(ctx context.Context, box geo.BoundingBox) ([]*models.Place, error)
}

// UserRepository определяет контракт для работы с бд пользователей
type UserRepository interface {
	Upsert(ctx context.Context, user *models.User) (bool, error)
	GetByID(ctx context.Context, userID string) (*models.User, error)
}

// LocationRepository определяет контракт для истории местоположений
type LocationRepository interface {
	Create(ctx context.Context, location *models.Location) error
	GetByID(ctx context.Context, id int64) (*models.Location, error)
	List(ctx context.Context, userID string) ([]*models.Location, error)
	// FindLatestInBox берет последнюю точку каждого пользователя и только потом фильтрует по прямоугольнику
	FindLatestInBox(ctx context.Context, box geo.BoundingBox) ([]*models.UserLocation, error)
	CountActiveUsers(ctx context.Context, minutes int) (int, error)
}

// CheckinTx - операции, доступные внутри транзакции отметки
type CheckinTx interface {
	LastCheckin(ctx context.Context, userID string, placeID int64) (*models.Checkin, error)
	IncrementCheckinCount(ctx context.Context, placeID int64) (int, error)
	AppendCheckin(ctx context.Context, checkin *models.Checkin) error
}

// CheckinRepository определяет контракт для отметок.
// WithinCheckinTx сериализует попытки для одной пары (пользователь, место)
// и откатывает все изменения, если fn вернула ошибку.
type CheckinRepository interface {
	WithinCheckinTx(ctx context.Context, userID string, placeID int64, fn func(ctx context.Context, tx CheckinTx) error) error
	LastCheckin(ctx context.Context, userID string, placeID int64) (*models.Checkin, error)
	CountByUser(ctx context.Context, placeID int64) ([]models.UserCheckinCount, error)
}

// CacheStore - хранилище сериализованных результатов поиска.
// Get возвращает nil, nil при отсутствии ключа.
type CacheStore interface {
	Get(ctx context.Context, key string) (*models.CacheEntry, error)
	Set(ctx context.Context, key string, entry *models.CacheEntry, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
