package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shenikar/geo_checkin_service/internal/service"
)

// classifyError приводит ошибку pgx к ошибкам сервисного слоя.
// Уже классифицированные ошибки возвращаются без изменений.
func classifyError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, service.ErrNotFound) ||
		errors.Is(err, service.ErrCheckinConflict) ||
		errors.Is(err, service.ErrStoreUnavailable) ||
		errors.Is(err, service.ErrInvalidParameter) {
		return err
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, service.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.ForeignKeyViolation:
			// Ссылка на несуществующего пользователя или место
			return fmt.Errorf("%s: constraint %s: %w", op, pgErr.ConstraintName, service.ErrNotFound)
		case pgerrcode.UniqueViolation:
			return fmt.Errorf("%s: constraint %s: %w", op, pgErr.ConstraintName, service.ErrCheckinConflict)
		}
	}

	return fmt.Errorf("%s: %w: %w", op, service.ErrStoreUnavailable, err)
}
