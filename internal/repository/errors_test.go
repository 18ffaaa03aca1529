package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shenikar/geo_checkin_service/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"no rows", pgx.ErrNoRows, service.ErrNotFound},
		{"wrapped no rows", fmt.Errorf("scan: %w", pgx.ErrNoRows), service.ErrNotFound},
		{"foreign key", &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation, ConstraintName: "checkins_user_id_fkey"}, service.ErrNotFound},
		{"unique", &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "checkins_cooldown_bucket_key"}, service.ErrCheckinConflict},
		{"other pg error", &pgconn.PgError{Code: pgerrcode.SerializationFailure}, service.ErrStoreUnavailable},
		{"connection error", errors.New("connection refused"), service.ErrStoreUnavailable},
		{"already classified", fmt.Errorf("place: %w", service.ErrNotFound), service.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := classifyError("op", tt.err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestClassifyError_KeepsCause(t *testing.T) {
	cause := errors.New("connection reset by peer")

	err := classifyError("failed to find places in box", cause)

	assert.ErrorIs(t, err, service.ErrStoreUnavailable)
	assert.ErrorIs(t, err, cause)
	assert.ErrorContains(t, err, "failed to find places in box")
}

func TestClassifyError_Nil(t *testing.T) {
	assert.NoError(t, classifyError("op", nil))
}
