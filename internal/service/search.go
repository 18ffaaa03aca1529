package service

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/shenikar/geo_checkin_service/internal/geo"
	"github.com/shenikar/geo_checkin_service/internal/metrics"
	"github.com/shenikar/geo_checkin_service/internal/models"
	"github.com/sirupsen/logrus"
)

// distancePrecision - количество знаков после запятой в расстоянии
const distancePrecision = 2

type searchService struct {
	places    PlaceRepository
	locations LocationRepository
	logger    *logrus.Logger
	metrics   *metrics.Metrics
}

// NewSearchService создает поисковый движок без кеша
func NewSearchService(places PlaceRepository, locations LocationRepository, logger *logrus.Logger, m *metrics.Metrics) SearchService {
	return &searchService{
		places:    places,
		locations: locations,
		logger:    logger,
		metrics:   m,
	}
}

// SearchNearbyPlaces находит места в радиусе radiusKm, отсортированные по расстоянию
func (s *searchService) SearchNearbyPlaces(ctx context.Context, center geo.Coordinate, radiusKm float64) ([]*models.NearbyPlace, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "search",
		"method":  "SearchNearbyPlaces",
		"lat":     center.Lat,
		"lng":     center.Lng,
		"radius":  radiusKm,
	})
	if err := validateSearch(center, radiusKm); err != nil {
		return nil, err
	}

	started := time.Now()
	candidates, err := s.places.FindInBox(ctx, geo.NewBoundingBox(center, radiusKm))
	if err != nil {
		log.WithError(err).Error("Failed to find places in bounding box")
		return nil, fmt.Errorf("service: could not search nearby places: %w", err)
	}

	results := make([]*models.NearbyPlace, 0, len(candidates))
	for _, place := range candidates {
		distance, ok := withinRadius(center, geo.Coordinate{Lat: place.Latitude, Lng: place.Longitude}, radiusKm)
		if !ok {
			continue
		}
		results = append(results, &models.NearbyPlace{Place: *place, Distance: distance})
	}

	slices.SortFunc(results, func(a, b *models.NearbyPlace) int {
		if c := cmp.Compare(a.Distance, b.Distance); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})

	s.metrics.ObserveSearch(metrics.KindPlaces, time.Since(started), len(results))
	log.WithFields(logrus.Fields{"candidates": len(candidates), "count": len(results)}).Debug("Nearby places search completed")
	return results, nil
}

// SearchNearbyUsers находит пользователей, чья последняя точка лежит в радиусе radiusKm
func (s *searchService) SearchNearbyUsers(ctx context.Context, center geo.Coordinate, radiusKm float64) ([]*models.NearbyUser, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "search",
		"method":  "SearchNearbyUsers",
		"lat":     center.Lat,
		"lng":     center.Lng,
		"radius":  radiusKm,
	})
	if err := validateSearch(center, radiusKm); err != nil {
		return nil, err
	}

	started := time.Now()
	candidates, err := s.locations.FindLatestInBox(ctx, geo.NewBoundingBox(center, radiusKm))
	if err != nil {
		log.WithError(err).Error("Failed to find latest user locations in bounding box")
		return nil, fmt.Errorf("service: could not search nearby users: %w", err)
	}

	results := make([]*models.NearbyUser, 0, len(candidates))
	for _, candidate := range candidates {
		distance, ok := withinRadius(center, geo.Coordinate{Lat: candidate.Latitude, Lng: candidate.Longitude}, radiusKm)
		if !ok {
			continue
		}
		user := candidate.User
		lat, lng := candidate.Latitude, candidate.Longitude
		user.LastLat = &lat
		user.LastLng = &lng
		results = append(results, &models.NearbyUser{User: user, Distance: distance})
	}

	slices.SortFunc(results, func(a, b *models.NearbyUser) int {
		if c := cmp.Compare(a.Distance, b.Distance); c != 0 {
			return c
		}
		return cmp.Compare(a.UserID, b.UserID)
	})

	s.metrics.ObserveSearch(metrics.KindUsers, time.Since(started), len(results))
	log.WithFields(logrus.Fields{"candidates": len(candidates), "count": len(results)}).Debug("Nearby users search completed")
	return results, nil
}

// withinRadius считает точное расстояние и округляет его.
// Округленное значение не превышает радиус, чтобы результат не выходил за круг.
func withinRadius(center, point geo.Coordinate, radiusKm float64) (float64, bool) {
	distance := geo.Distance(center, point)
	if !(distance <= radiusKm) {
		return 0, false
	}
	rounded := geo.RoundTo(distance, distancePrecision)
	if rounded > radiusKm {
		rounded = radiusKm
	}
	return rounded, true
}
