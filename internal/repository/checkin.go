package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/geo_checkin_service/internal/models"
	"github.com/shenikar/geo_checkin_service/internal/service"
	"github.com/shenikar/geo_checkin_service/pkg/postgres"
)

// querier - общее подмножество pgxpool.Pool и pgx.Tx
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type CheckinRepository struct {
	db *pgxpool.Pool
}

func NewCheckinRepository(db *pgxpool.Pool) service.CheckinRepository {
	return &CheckinRepository{db: db}
}

// WithinCheckinTx открывает транзакцию и берет advisory lock на пару (пользователь, место).
// Параллельные попытки той же пары ждут коммита или отката предыдущей.
func (r *CheckinRepository) WithinCheckinTx(ctx context.Context, userID string, placeID int64, fn func(ctx context.Context, tx service.CheckinTx) error) error {
	err := postgres.WithTx(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		lockKey := fmt.Sprintf("checkin:%s:%d", userID, placeID)
		if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtextextended($1, 0));`, lockKey); err != nil {
			return classifyError("failed to lock check-in pair", err)
		}
		return fn(ctx, &checkinTx{tx: tx})
	})
	if err != nil {
		return classifyError("check-in transaction", err)
	}
	return nil
}

// LastCheckin возвращает последнюю отметку пары вне транзакции
func (r *CheckinRepository) LastCheckin(ctx context.Context, userID string, placeID int64) (*models.Checkin, error) {
	return lastCheckin(ctx, r.db, userID, placeID)
}

// CountByUser группирует отметки места по пользователям, по убыванию количества
func (r *CheckinRepository) CountByUser(ctx context.Context, placeID int64) ([]models.UserCheckinCount, error) {
	query := `
		SELECT user_id, COUNT(*) AS total
		FROM checkins
		WHERE place_id = $1
		GROUP BY user_id
		ORDER BY total DESC, user_id ASC;
	`
	rows, err := r.db.Query(ctx, query, placeID)
	if err != nil {
		return nil, classifyError("failed to count check-ins", err)
	}
	defer rows.Close()

	counts := make([]models.UserCheckinCount, 0)
	for rows.Next() {
		var item models.UserCheckinCount
		if err := rows.Scan(&item.UserID, &item.Count); err != nil {
			return nil, classifyError("failed to scan check-in count row", err)
		}
		counts = append(counts, item)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyError("error list iteration in CountByUser", err)
	}
	return counts, nil
}

type checkinTx struct {
	tx pgx.Tx
}

func (t *checkinTx) LastCheckin(ctx context.Context, userID string, placeID int64) (*models.Checkin, error) {
	return lastCheckin(ctx, t.tx, userID, placeID)
}

// IncrementCheckinCount атомарно увеличивает счетчик места на единицу
func (t *checkinTx) IncrementCheckinCount(ctx context.Context, placeID int64) (int, error) {
	query := `
		UPDATE places
		SET checkin_count = checkin_count + 1,
			updated_at = NOW()
		WHERE id = $1
		RETURNING checkin_count;
	`
	var count int
	if err := t.tx.QueryRow(ctx, query, placeID).Scan(&count); err != nil {
		return 0, classifyError(fmt.Sprintf("place with id %d", placeID), err)
	}
	return count, nil
}

// AppendCheckin добавляет отметку; уникальный индекс по окну страхует от двойной отметки
func (t *checkinTx) AppendCheckin(ctx context.Context, checkin *models.Checkin) error {
	query := `
		INSERT INTO checkins (id, user_id, place_id, checkin_time, cooldown_bucket)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := t.tx.Exec(ctx, query,
		checkin.ID,
		checkin.UserID,
		checkin.PlaceID,
		checkin.CheckinTime,
		checkin.CooldownBucket,
	)
	if err != nil {
		return classifyError("failed to append check-in", err)
	}
	return nil
}

func lastCheckin(ctx context.Context, q querier, userID string, placeID int64) (*models.Checkin, error) {
	query := `
		SELECT id, user_id, place_id, checkin_time, cooldown_bucket
		FROM checkins
		WHERE user_id = $1 AND place_id = $2
		ORDER BY checkin_time DESC
		LIMIT 1;
	`
	checkin := &models.Checkin{}
	err := q.QueryRow(ctx, query, userID, placeID).Scan(
		&checkin.ID,
		&checkin.UserID,
		&checkin.PlaceID,
		&checkin.CheckinTime,
		&checkin.CooldownBucket,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, classifyError("failed to get last check-in", err)
	}
	return checkin, nil
}
