package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/shenikar/geo_checkin_service/internal/geo"
	"github.com/shenikar/geo_checkin_service/internal/models"
	"github.com/sirupsen/logrus"
)

type userService struct {
	users       UserRepository
	locations   LocationRepository
	statsWindow int
	logger      *logrus.Logger
}

// NewUserService создает сервис пользователей; statsWindowMinutes задает окно для GetStats
func NewUserService(users UserRepository, locations LocationRepository, statsWindowMinutes int, logger *logrus.Logger) UserService {
	return &userService{
		users:       users,
		locations:   locations,
		statsWindow: statsWindowMinutes,
		logger:      logger,
	}
}

// CreateOrUpdateUser создает пользователя или обновляет имя и аватар существующего.
// Возвращает true, если пользователь был создан.
func (s *userService) CreateOrUpdateUser(ctx context.Context, user *models.User) (bool, error) {
	user.UserID = strings.TrimSpace(user.UserID)
	if user.UserID == "" {
		return false, fmt.Errorf("%w: user_id is required", ErrInvalidParameter)
	}
	log := s.logger.WithFields(logrus.Fields{
		"service": "user",
		"method":  "CreateOrUpdateUser",
		"user_id": user.UserID,
	})

	created, err := s.users.Upsert(ctx, user)
	if err != nil {
		log.WithError(err).Error("Failed to upsert user in repository")
		return false, fmt.Errorf("service: could not save user: %w", err)
	}

	log.WithField("created", created).Info("User saved successfully")
	return created, nil
}

// GetUser получает пользователя вместе с последней известной точкой
func (s *userService) GetUser(ctx context.Context, userID string) (*models.User, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("%w: user_id is required", ErrInvalidParameter)
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "user",
			"method":  "GetUser",
			"user_id": userID,
		}).WithError(err).Warn("Failed to get user in repository")
		return nil, fmt.Errorf("service: could not get user: %w", err)
	}
	return user, nil
}

// ReportLocation сохраняет новую точку пользователя. Старые точки остаются в истории
func (s *userService) ReportLocation(ctx context.Context, location *models.Location) error {
	if strings.TrimSpace(location.UserID) == "" {
		return fmt.Errorf("%w: user_id is required", ErrInvalidParameter)
	}
	if err := (geo.Coordinate{Lat: location.Latitude, Lng: location.Longitude}).Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidParameter, err)
	}
	log := s.logger.WithFields(logrus.Fields{
		"service": "user",
		"method":  "ReportLocation",
		"user_id": location.UserID,
	})

	if err := s.locations.Create(ctx, location); err != nil {
		log.WithError(err).Error("Failed to save location in repository")
		return fmt.Errorf("service: could not save location: %w", err)
	}

	log.WithField("location_id", location.ID).Debug("Location saved")
	return nil
}

// GetLocation получает запись о местоположении по ID
func (s *userService) GetLocation(ctx context.Context, id int64) (*models.Location, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: location id must be positive", ErrInvalidParameter)
	}
	location, err := s.locations.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get location: %w", err)
	}
	return location, nil
}

// ListLocations возвращает историю точек, новые первыми. Пустой userID - все пользователи
func (s *userService) ListLocations(ctx context.Context, userID string) ([]*models.Location, error) {
	locations, err := s.locations.List(ctx, strings.TrimSpace(userID))
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "user",
			"method":  "ListLocations",
			"user_id": userID,
		}).WithError(err).Error("Failed to list locations from repository")
		return nil, fmt.Errorf("service: could not list locations: %w", err)
	}
	return locations, nil
}

// GetStats возвращает количество пользователей, сообщивших точку за окно статистики
func (s *userService) GetStats(ctx context.Context) (int, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "user",
		"method":  "GetStats",
		"window":  s.statsWindow,
	})

	count, err := s.locations.CountActiveUsers(ctx, s.statsWindow)
	if err != nil {
		log.WithError(err).Error("Failed to get stats from repository")
		return 0, fmt.Errorf("service: could not get stats: %w", err)
	}
	log.WithField("user_count", count).Info("Stats fetched successfully")
	return count, nil
}
