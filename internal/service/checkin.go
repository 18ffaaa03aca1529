package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/geo_checkin_service/internal/metrics"
	"github.com/shenikar/geo_checkin_service/internal/models"
	"github.com/shenikar/geo_checkin_service/internal/webhook"
	"github.com/sirupsen/logrus"
)

type checkinService struct {
	repo      CheckinRepository
	places    PlaceRepository
	users     UserRepository
	publisher webhook.WebhookPublisher
	gate      cooldownGate
	now       func() time.Time
	logger    *logrus.Logger
	metrics   *metrics.Metrics
}

// CheckinServiceDeps - зависимости сервиса отметок
type CheckinServiceDeps struct {
	Checkins  CheckinRepository
	Places    PlaceRepository
	Users     UserRepository
	Publisher webhook.WebhookPublisher
	Cooldown  time.Duration
	Now       func() time.Time
	Logger    *logrus.Logger
	Metrics   *metrics.Metrics
}

func NewCheckinService(deps CheckinServiceDeps) CheckinService {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	return &checkinService{
		repo:      deps.Checkins,
		places:    deps.Places,
		users:     deps.Users,
		publisher: deps.Publisher,
		gate:      newCooldownGate(deps.Cooldown),
		now:       now,
		logger:    deps.Logger,
		metrics:   deps.Metrics,
	}
}

// AttemptCheckin проверяет окно ожидания и, если оно истекло, в одной транзакции
// увеличивает счетчик места и добавляет отметку
func (s *checkinService) AttemptCheckin(ctx context.Context, userID string, placeID int64) (*models.CheckinResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "checkin",
		"method":   "AttemptCheckin",
		"user_id":  userID,
		"place_id": placeID,
	})
	if err := validateCheckinKey(userID, placeID); err != nil {
		return nil, err
	}
	log.Info("Attempting check-in")

	now := s.now()
	var result *models.CheckinResult
	err := s.repo.WithinCheckinTx(ctx, userID, placeID, func(ctx context.Context, tx CheckinTx) error {
		last, err := tx.LastCheckin(ctx, userID, placeID)
		if err != nil {
			return err
		}

		if status := s.gate.evaluate(last, now); !status.Eligible {
			result = rejectedResult(status)
			return nil
		}

		count, err := tx.IncrementCheckinCount(ctx, placeID)
		if err != nil {
			return err
		}

		checkin := &models.Checkin{
			ID:             uuid.New(),
			UserID:         userID,
			PlaceID:        placeID,
			CheckinTime:    now,
			CooldownBucket: s.gate.bucket(now),
		}
		if err := tx.AppendCheckin(ctx, checkin); err != nil {
			return err
		}

		result = &models.CheckinResult{Accepted: true, Checkin: checkin, CheckinCount: count}
		return nil
	})

	if errors.Is(err, ErrCheckinConflict) {
		// Параллельная попытка успела раньше: отдаем актуальное окно ожидания
		log.Warn("Concurrent check-in detected by store constraint")
		last, lastErr := s.repo.LastCheckin(ctx, userID, placeID)
		if lastErr != nil {
			err = lastErr
		} else {
			status := s.gate.evaluate(last, s.now())
			status.Eligible = false
			result, err = rejectedResult(status), nil
		}
	}
	if err != nil {
		s.metrics.IncCheckin(metrics.CheckinFailed)
		log.WithError(err).Error("Failed to process check-in")
		return nil, fmt.Errorf("service: could not check in: %w", err)
	}

	if !result.Accepted {
		s.metrics.IncCheckin(metrics.CheckinRejected)
		log.WithField("hours_remaining", result.HoursRemaining).Info("Check-in rejected, cooldown active")
		return result, nil
	}

	s.metrics.IncCheckin(metrics.CheckinAccepted)
	log.WithField("checkin_count", result.CheckinCount).Info("Check-in accepted")
	s.publish(ctx, result, log)
	return result, nil
}

// CheckinStatus возвращает состояние пары без изменения данных
func (s *checkinService) CheckinStatus(ctx context.Context, userID string, placeID int64) (*models.CheckinStatus, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "checkin",
		"method":   "CheckinStatus",
		"user_id":  userID,
		"place_id": placeID,
	})
	if err := validateCheckinKey(userID, placeID); err != nil {
		return nil, err
	}

	if _, err := s.places.GetByID(ctx, placeID); err != nil {
		log.WithError(err).Warn("Failed to get place for check-in status")
		return nil, fmt.Errorf("service: could not get place %d: %w", placeID, err)
	}
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		log.WithError(err).Warn("Failed to get user for check-in status")
		return nil, fmt.Errorf("service: could not get user %s: %w", userID, err)
	}

	last, err := s.repo.LastCheckin(ctx, userID, placeID)
	if err != nil {
		log.WithError(err).Error("Failed to get last check-in")
		return nil, fmt.Errorf("service: could not get check-in status: %w", err)
	}

	status := s.gate.evaluate(last, s.now())
	return &status, nil
}

// ListCheckinCounts возвращает количество отметок в месте по пользователям, по убыванию
func (s *checkinService) ListCheckinCounts(ctx context.Context, placeID int64) ([]models.UserCheckinCount, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "checkin",
		"method":   "ListCheckinCounts",
		"place_id": placeID,
	})
	if placeID <= 0 {
		return nil, fmt.Errorf("%w: place id must be positive", ErrInvalidParameter)
	}

	if _, err := s.places.GetByID(ctx, placeID); err != nil {
		log.WithError(err).Warn("Failed to get place for check-in counts")
		return nil, fmt.Errorf("service: could not get place %d: %w", placeID, err)
	}

	counts, err := s.repo.CountByUser(ctx, placeID)
	if err != nil {
		log.WithError(err).Error("Failed to count check-ins by user")
		return nil, fmt.Errorf("service: could not count check-ins: %w", err)
	}
	return counts, nil
}

func (s *checkinService) publish(ctx context.Context, result *models.CheckinResult, log *logrus.Entry) {
	if s.publisher == nil {
		return
	}
	event := webhook.WebhookEvent{
		Type:         webhook.EventCheckinAccepted,
		CheckinID:    result.Checkin.ID,
		UserID:       result.Checkin.UserID,
		PlaceID:      result.Checkin.PlaceID,
		CheckinCount: result.CheckinCount,
		Timestamp:    result.Checkin.CheckinTime,
	}
	// Отметка уже сохранена, ошибка публикации ее не отменяет
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Warn("Failed to publish check-in webhook event")
	}
}

func rejectedResult(status models.CheckinStatus) *models.CheckinResult {
	return &models.CheckinResult{
		Accepted:        false,
		LastCheckinTime: status.LastCheckinTime,
		HoursRemaining:  status.HoursRemaining,
	}
}
