package service_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/shenikar/geo_checkin_service/internal/models"
	"github.com/shenikar/geo_checkin_service/internal/service"
	"github.com/shenikar/geo_checkin_service/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestPlaceService(t *testing.T) (service.PlaceService, *mocks.MockPlaceRepository) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockPlaceRepository(ctrl)
	return service.NewPlaceService(repo, newTestLogger()), repo
}

func TestCreatePlace(t *testing.T) {
	// Подготовка
	svc, repo := newTestPlaceService(t)
	ctx := context.Background()
	place := &models.Place{Name: "Jama Masjid", Latitude: 28.6507, Longitude: 77.2334, Rating: 4.6, CheckinCount: 99}

	// Ожидания
	repo.EXPECT().Create(ctx, place).DoAndReturn(func(_ context.Context, p *models.Place) error {
		assert.Zero(t, p.CheckinCount)
		p.ID = 17
		return nil
	}).Times(1)

	// Действие
	err := svc.CreatePlace(ctx, place)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, int64(17), place.ID)
}

func TestCreatePlace_Validation(t *testing.T) {
	svc, _ := newTestPlaceService(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		place *models.Place
	}{
		{"empty name", &models.Place{Name: "  ", Latitude: 1, Longitude: 1}},
		{"bad latitude", &models.Place{Name: "x", Latitude: -91, Longitude: 1}},
		{"bad longitude", &models.Place{Name: "x", Latitude: 1, Longitude: 200}},
		{"negative rating", &models.Place{Name: "x", Latitude: 1, Longitude: 1, Rating: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.CreatePlace(ctx, tt.place)
			assert.ErrorIs(t, err, service.ErrInvalidParameter)
		})
	}
}

func TestCreatePlace_RepositoryError(t *testing.T) {
	svc, repo := newTestPlaceService(t)
	ctx := context.Background()
	place := &models.Place{Name: "Red Fort", Latitude: 28.6562, Longitude: 77.2410}

	repo.EXPECT().Create(ctx, place).Return(fmt.Errorf("insert: %w", service.ErrStoreUnavailable)).Times(1)

	err := svc.CreatePlace(ctx, place)

	assert.ErrorIs(t, err, service.ErrStoreUnavailable)
	assert.ErrorContains(t, err, "could not create place")
}

func TestGetPlace(t *testing.T) {
	svc, repo := newTestPlaceService(t)
	ctx := context.Background()
	expected := &models.Place{ID: 3, Name: "India Gate"}

	repo.EXPECT().GetByID(ctx, int64(3)).Return(expected, nil).Times(1)

	got, err := svc.GetPlace(ctx, 3)

	require.NoError(t, err)
	assert.Equal(t, expected, got)
}

func TestGetPlace_NotFound(t *testing.T) {
	svc, repo := newTestPlaceService(t)
	ctx := context.Background()

	repo.EXPECT().GetByID(ctx, int64(404)).Return(nil, fmt.Errorf("failed to get place: %w", service.ErrNotFound)).Times(1)

	_, err := svc.GetPlace(ctx, 404)

	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestGetPlace_InvalidID(t *testing.T) {
	svc, _ := newTestPlaceService(t)

	_, err := svc.GetPlace(context.Background(), 0)

	assert.ErrorIs(t, err, service.ErrInvalidParameter)
}
