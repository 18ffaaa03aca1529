package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/geo_checkin_service/internal/models"
	"github.com/shenikar/geo_checkin_service/internal/service"
)

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) service.UserRepository {
	return &UserRepository{db: db}
}

// Upsert создает пользователя или обновляет непустые поля существующего.
// xmax = 0 только у только что вставленной строки.
func (r *UserRepository) Upsert(ctx context.Context, user *models.User) (bool, error) {
	query := `
		INSERT INTO users (user_id, name, image)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE SET
			name = COALESCE(NULLIF(EXCLUDED.name, ''), users.name),
			image = COALESCE(EXCLUDED.image, users.image),
			updated_at = NOW()
		RETURNING name, image, created_at, updated_at, (xmax = 0) AS created;
	`
	var created bool
	err := r.db.QueryRow(ctx, query, user.UserID, user.Name, user.Image).
		Scan(&user.Name, &user.Image, &user.CreatedAt, &user.UpdatedAt, &created)
	if err != nil {
		return false, classifyError("failed to upsert user", err)
	}
	return created, nil
}

// GetByID возвращает пользователя с координатами его последней точки
func (r *UserRepository) GetByID(ctx context.Context, userID string) (*models.User, error) {
	query := `
		SELECT
			u.user_id,
			u.name,
			u.image,
			l.lat,
			l.lng,
			u.created_at,
			u.updated_at
		FROM users u
		LEFT JOIN LATERAL (
			SELECT lat, lng
			FROM locations
			WHERE user_id = u.user_id
			ORDER BY created_at DESC, id DESC
			LIMIT 1
		) l ON TRUE
		WHERE u.user_id = $1;
	`
	user := &models.User{}
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&user.UserID,
		&user.Name,
		&user.Image,
		&user.LastLat,
		&user.LastLng,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, classifyError(fmt.Sprintf("user with id %s", userID), err)
	}
	return user, nil
}
