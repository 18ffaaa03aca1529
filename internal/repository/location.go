package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/geo_checkin_service/internal/geo"
	"github.com/shenikar/geo_checkin_service/internal/models"
	"github.com/shenikar/geo_checkin_service/internal/service"
)

type LocationRepository struct {
	db *pgxpool.Pool
}

func NewLocationRepository(db *pgxpool.Pool) service.LocationRepository {
	return &LocationRepository{db: db}
}

// Create сохраняет запись о местоположении пользователя в бд
func (r *LocationRepository) Create(ctx context.Context, location *models.Location) error {
	query := `
		WITH inserted AS (
			INSERT INTO locations (user_id, lat, lng)
			VALUES ($1, $2, $3)
			RETURNING id, user_id, created_at, updated_at
		)
		SELECT i.id, u.name, i.created_at, i.updated_at
		FROM inserted i
		JOIN users u ON u.user_id = i.user_id;
	`
	err := r.db.QueryRow(ctx, query,
		location.UserID,
		location.Latitude,
		location.Longitude,
	).Scan(&location.ID, &location.UserName, &location.CreatedAt, &location.UpdatedAt)
	if err != nil {
		return classifyError("failed to save location", err)
	}
	return nil
}

// GetByID возвращает запись о местоположении по ID
func (r *LocationRepository) GetByID(ctx context.Context, id int64) (*models.Location, error) {
	query := `
		SELECT l.id, l.user_id, u.name, l.lat, l.lng, l.created_at, l.updated_at
		FROM locations l
		JOIN users u ON u.user_id = l.user_id
		WHERE l.id = $1;
	`
	location := &models.Location{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&location.ID,
		&location.UserID,
		&location.UserName,
		&location.Latitude,
		&location.Longitude,
		&location.CreatedAt,
		&location.UpdatedAt,
	)
	if err != nil {
		return nil, classifyError(fmt.Sprintf("location with id %d", id), err)
	}
	return location, nil
}

// List возвращает историю точек, новые первыми; пустой userID - без фильтра
func (r *LocationRepository) List(ctx context.Context, userID string) ([]*models.Location, error) {
	query := `
		SELECT l.id, l.user_id, u.name, l.lat, l.lng, l.created_at, l.updated_at
		FROM locations l
		JOIN users u ON u.user_id = l.user_id
		WHERE ($1 = '' OR l.user_id = $1)
		ORDER BY l.created_at DESC, l.id DESC;
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, classifyError("failed to list locations", err)
	}
	defer rows.Close()

	locations := make([]*models.Location, 0)
	for rows.Next() {
		location := &models.Location{}
		err := rows.Scan(
			&location.ID,
			&location.UserID,
			&location.UserName,
			&location.Latitude,
			&location.Longitude,
			&location.CreatedAt,
			&location.UpdatedAt,
		)
		if err != nil {
			return nil, classifyError("failed to scan location row", err)
		}
		locations = append(locations, location)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyError("error list iteration", err)
	}
	return locations, nil
}

// FindLatestInBox сначала выбирает последнюю точку каждого пользователя,
// затем оставляет тех, чья последняя точка лежит в прямоугольнике
func (r *LocationRepository) FindLatestInBox(ctx context.Context, box geo.BoundingBox) ([]*models.UserLocation, error) {
	query := `
		WITH latest AS (
			SELECT DISTINCT ON (user_id) user_id, lat, lng, created_at
			FROM locations
			ORDER BY user_id, created_at DESC, id DESC
		)
		SELECT
			u.user_id,
			u.name,
			u.image,
			u.created_at,
			u.updated_at,
			latest.lat,
			latest.lng,
			latest.created_at
		FROM latest
		JOIN users u ON u.user_id = latest.user_id
		WHERE latest.lat BETWEEN $1 AND $2
			AND latest.lng BETWEEN $3 AND $4;
	`
	rows, err := r.db.Query(ctx, query, box.MinLat, box.MaxLat, box.MinLng, box.MaxLng)
	if err != nil {
		return nil, classifyError("failed to find latest locations in box", err)
	}
	defer rows.Close()

	result := make([]*models.UserLocation, 0)
	for rows.Next() {
		item := &models.UserLocation{}
		err := rows.Scan(
			&item.User.UserID,
			&item.User.Name,
			&item.User.Image,
			&item.User.CreatedAt,
			&item.User.UpdatedAt,
			&item.Latitude,
			&item.Longitude,
			&item.RecordedAt,
		)
		if err != nil {
			return nil, classifyError("failed to scan row in FindLatestInBox", err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyError("error list iteration in FindLatestInBox", err)
	}
	return result, nil
}

// CountActiveUsers возвращает количество уникальных пользователей, сообщивших точку за последние minutes минут
func (r *LocationRepository) CountActiveUsers(ctx context.Context, minutes int) (int, error) {
	query := `
		SELECT COUNT(DISTINCT user_id)
		FROM locations
		WHERE created_at >= NOW() - ($1 * INTERVAL '1 minute');
	`
	var count int
	if err := r.db.QueryRow(ctx, query, minutes).Scan(&count); err != nil {
		return 0, classifyError("failed to get location stats", err)
	}
	return count, nil
}
