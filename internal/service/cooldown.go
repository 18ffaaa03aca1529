package service

import (
	"time"

	"github.com/shenikar/geo_checkin_service/internal/geo"
	"github.com/shenikar/geo_checkin_service/internal/models"
)

// DefaultCheckinCooldown - окно, в течение которого повторная отметка отклоняется
const DefaultCheckinCooldown = 6 * time.Hour

// cooldownGate вычисляет состояние пары (пользователь, место): Eligible или Cooling-down.
// Состояние зависит только от последней отметки и текущего времени.
type cooldownGate struct {
	window time.Duration
}

func newCooldownGate(window time.Duration) cooldownGate {
	if window <= 0 {
		window = DefaultCheckinCooldown
	}
	return cooldownGate{window: window}
}

// evaluate: отметка не старше now-window означает Cooling-down
func (g cooldownGate) evaluate(last *models.Checkin, now time.Time) models.CheckinStatus {
	if last == nil {
		return models.CheckinStatus{Eligible: true}
	}

	lastTime := last.CheckinTime
	if lastTime.Before(now.Add(-g.window)) {
		return models.CheckinStatus{Eligible: true, LastCheckinTime: &lastTime}
	}

	remaining := g.window - now.Sub(lastTime)
	if remaining > g.window {
		remaining = g.window
	}
	return models.CheckinStatus{
		Eligible:        false,
		LastCheckinTime: &lastTime,
		HoursRemaining:  geo.RoundTo(remaining.Hours(), 1),
	}
}

// bucket - номер окна для уникального индекса (user_id, place_id, cooldown_bucket).
// Две отметки в одном окне всегда ближе друг к другу, чем window.
func (g cooldownGate) bucket(at time.Time) int64 {
	seconds := int64(g.window / time.Second)
	if seconds < 1 {
		seconds = 1
	}
	return at.Unix() / seconds
}
