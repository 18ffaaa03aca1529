package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/geo_checkin_service/internal/geo"
	"github.com/shenikar/geo_checkin_service/internal/models"
	"github.com/shenikar/geo_checkin_service/internal/service"
)

const placeColumns = `id, name, description, lat, lng, rating, checkin_count, created_at, updated_at`

type PlaceRepository struct {
	db *pgxpool.Pool
}

func NewPlaceRepository(db *pgxpool.Pool) service.PlaceRepository {
	return &PlaceRepository{db: db}
}

// Create создает новую запись о месте в бд
func (r *PlaceRepository) Create(ctx context.Context, place *models.Place) error {
	query := `
		INSERT INTO places (name, description, lat, lng, rating)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, checkin_count, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		place.Name,
		place.Description,
		place.Latitude,
		place.Longitude,
		place.Rating,
	).Scan(&place.ID, &place.CheckinCount, &place.CreatedAt, &place.UpdatedAt)
	if err != nil {
		return classifyError("failed to create place", err)
	}
	return nil
}

// GetByID возвращает место по его ID
func (r *PlaceRepository) GetByID(ctx context.Context, id int64) (*models.Place, error) {
	query := `SELECT ` + placeColumns + ` FROM places WHERE id = $1;`
	place, err := scanPlace(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, classifyError(fmt.Sprintf("place with id %d", id), err)
	}
	return place, nil
}

// FindInBox возвращает все места внутри прямоугольника (границы включительно)
func (r *PlaceRepository) FindInBox(ctx context.Context, box geo.BoundingBox) ([]*models.Place, error) {
	query := `
		SELECT ` + placeColumns + `
		FROM places
		WHERE lat BETWEEN $1 AND $2
			AND lng BETWEEN $3 AND $4
		ORDER BY id;
	`
	rows, err := r.db.Query(ctx, query, box.MinLat, box.MaxLat, box.MinLng, box.MaxLng)
	if err != nil {
		return nil, classifyError("failed to find places in box", err)
	}
	defer rows.Close()

	places := make([]*models.Place, 0)
	for rows.Next() {
		place, err := scanPlace(rows)
		if err != nil {
			return nil, classifyError("failed to scan place row in FindInBox", err)
		}
		places = append(places, place)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyError("error list iteration in FindInBox", err)
	}
	return places, nil
}

func scanPlace(row pgx.Row) (*models.Place, error) {
	place := &models.Place{}
	err := row.Scan(
		&place.ID,
		&place.Name,
		&place.Description,
		&place.Latitude,
		&place.Longitude,
		&place.Rating,
		&place.CheckinCount,
		&place.CreatedAt,
		&place.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return place, nil
}
