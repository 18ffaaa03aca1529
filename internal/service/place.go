package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/shenikar/geo_checkin_service/internal/geo"
	"github.com/shenikar/geo_checkin_service/internal/models"
	"github.com/sirupsen/logrus"
)

type placeService struct {
	repo   PlaceRepository
	logger *logrus.Logger
}

func NewPlaceService(repo PlaceRepository, logger *logrus.Logger) PlaceService {
	return &placeService{
		repo:   repo,
		logger: logger,
	}
}

// CreatePlace создает место. Счетчик отметок всегда начинается с нуля
func (s *placeService) CreatePlace(ctx context.Context, place *models.Place) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "place",
		"method":  "CreatePlace",
		"name":    place.Name,
	})

	if strings.TrimSpace(place.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidParameter)
	}
	if err := (geo.Coordinate{Lat: place.Latitude, Lng: place.Longitude}).Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidParameter, err)
	}
	if place.Rating < 0 {
		return fmt.Errorf("%w: rating must not be negative", ErrInvalidParameter)
	}
	log.Info("Attempting to create a new place")

	place.CheckinCount = 0
	if err := s.repo.Create(ctx, place); err != nil {
		log.WithError(err).Error("Failed to create place in repository")
		return fmt.Errorf("service: could not create place: %w", err)
	}

	log.WithField("place_id", place.ID).Info("Place created successfully")
	return nil
}

// GetPlace получает место по ID
func (s *placeService) GetPlace(ctx context.Context, id int64) (*models.Place, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: place id must be positive", ErrInvalidParameter)
	}
	place, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service":  "place",
			"method":   "GetPlace",
			"place_id": id,
		}).WithError(err).Warn("Failed to get place in repository")
		return nil, fmt.Errorf("service: could not get place: %w", err)
	}
	return place, nil
}
