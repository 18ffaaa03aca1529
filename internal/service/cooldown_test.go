package service

import (
	"testing"
	"time"

	"github.com/shenikar/geo_checkin_service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCooldownGate_Evaluate(t *testing.T) {
	gate := newCooldownGate(DefaultCheckinCooldown)
	last := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		now       time.Time
		eligible  bool
		remaining float64
	}{
		{"same instant", last, false, 6.0},
		{"one hour later", last.Add(time.Hour), false, 5.0},
		{"two hours later", last.Add(2 * time.Hour), false, 4.0},
		{"rounded to one decimal", last.Add(90 * time.Minute), false, 4.5},
		{"exactly at window boundary", last.Add(6 * time.Hour), false, 0},
		{"one second after window", last.Add(6*time.Hour + time.Second), true, 0},
		{"a minute after window", last.Add(6*time.Hour + time.Minute), true, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status := gate.evaluate(&models.Checkin{CheckinTime: last}, tt.now)

			assert.Equal(t, tt.eligible, status.Eligible)
			assert.Equal(t, tt.remaining, status.HoursRemaining)
			require.NotNil(t, status.LastCheckinTime)
			assert.True(t, status.LastCheckinTime.Equal(last))
		})
	}
}

func TestCooldownGate_NoPreviousCheckin(t *testing.T) {
	gate := newCooldownGate(DefaultCheckinCooldown)

	status := gate.evaluate(nil, time.Now())

	assert.True(t, status.Eligible)
	assert.Nil(t, status.LastCheckinTime)
	assert.Zero(t, status.HoursRemaining)
}

func TestCooldownGate_FutureCheckinClamped(t *testing.T) {
	// Часы сервера могли отстать: оставшееся время не превышает окно
	gate := newCooldownGate(DefaultCheckinCooldown)
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	status := gate.evaluate(&models.Checkin{CheckinTime: now.Add(time.Hour)}, now)

	assert.False(t, status.Eligible)
	assert.Equal(t, 6.0, status.HoursRemaining)
}

func TestCooldownGate_DefaultWindow(t *testing.T) {
	assert.Equal(t, DefaultCheckinCooldown, newCooldownGate(0).window)
	assert.Equal(t, DefaultCheckinCooldown, newCooldownGate(-time.Minute).window)
	assert.Equal(t, time.Hour, newCooldownGate(time.Hour).window)
}

func TestCooldownGate_Bucket(t *testing.T) {
	gate := newCooldownGate(DefaultCheckinCooldown)
	start := time.Unix(6*3600*1000, 0)

	assert.Equal(t, int64(1000), gate.bucket(start))
	assert.Equal(t, int64(1000), gate.bucket(start.Add(6*time.Hour-time.Second)))
	assert.Equal(t, int64(1001), gate.bucket(start.Add(6*time.Hour)))
}
