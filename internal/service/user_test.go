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

func newTestUserService(t *testing.T) (service.UserService, *mocks.MockUserRepository, *mocks.MockLocationRepository) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepository(ctrl)
	locations := mocks.NewMockLocationRepository(ctrl)
	return service.NewUserService(users, locations, 30, newTestLogger()), users, locations
}

func TestCreateOrUpdateUser(t *testing.T) {
	svc, users, _ := newTestUserService(t)
	ctx := context.Background()
	user := &models.User{UserID: " u1 ", Name: "Asha"}

	users.EXPECT().Upsert(ctx, user).Return(true, nil).Times(1)

	created, err := svc.CreateOrUpdateUser(ctx, user)

	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "u1", user.UserID)
}

func TestCreateOrUpdateUser_EmptyID(t *testing.T) {
	svc, _, _ := newTestUserService(t)

	_, err := svc.CreateOrUpdateUser(context.Background(), &models.User{Name: "nobody"})

	assert.ErrorIs(t, err, service.ErrInvalidParameter)
}

func TestGetUser_NotFound(t *testing.T) {
	svc, users, _ := newTestUserService(t)
	ctx := context.Background()

	users.EXPECT().GetByID(ctx, "ghost").Return(nil, fmt.Errorf("failed to get user: %w", service.ErrNotFound)).Times(1)

	_, err := svc.GetUser(ctx, "ghost")

	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestReportLocation(t *testing.T) {
	svc, _, locations := newTestUserService(t)
	ctx := context.Background()
	location := &models.Location{UserID: "u1", Latitude: delhi.Lat, Longitude: delhi.Lng}

	locations.EXPECT().Create(ctx, location).DoAndReturn(func(_ context.Context, l *models.Location) error {
		l.ID = 5
		l.UserName = "Asha"
		return nil
	}).Times(1)

	err := svc.ReportLocation(ctx, location)

	require.NoError(t, err)
	assert.Equal(t, int64(5), location.ID)
	assert.Equal(t, "Asha", location.UserName)
}

func TestReportLocation_Validation(t *testing.T) {
	svc, _, _ := newTestUserService(t)
	ctx := context.Background()

	err := svc.ReportLocation(ctx, &models.Location{UserID: "", Latitude: 1, Longitude: 1})
	assert.ErrorIs(t, err, service.ErrInvalidParameter)

	err = svc.ReportLocation(ctx, &models.Location{UserID: "u1", Latitude: 95, Longitude: 1})
	assert.ErrorIs(t, err, service.ErrInvalidParameter)
}

func TestReportLocation_UnknownUser(t *testing.T) {
	svc, _, locations := newTestUserService(t)
	ctx := context.Background()
	location := &models.Location{UserID: "ghost", Latitude: 1, Longitude: 1}

	locations.EXPECT().Create(ctx, location).Return(fmt.Errorf("failed to create location: %w", service.ErrNotFound)).Times(1)

	err := svc.ReportLocation(ctx, location)

	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestListLocations(t *testing.T) {
	svc, _, locations := newTestUserService(t)
	ctx := context.Background()
	expected := []*models.Location{{ID: 2, UserID: "u1"}, {ID: 1, UserID: "u1"}}

	locations.EXPECT().List(ctx, "u1").Return(expected, nil).Times(1)

	got, err := svc.ListLocations(ctx, " u1")

	require.NoError(t, err)
	assert.Equal(t, expected, got)
}

func TestGetLocation_InvalidID(t *testing.T) {
	svc, _, _ := newTestUserService(t)

	_, err := svc.GetLocation(context.Background(), -1)

	assert.ErrorIs(t, err, service.ErrInvalidParameter)
}

func TestGetStats(t *testing.T) {
	svc, _, locations := newTestUserService(t)
	ctx := context.Background()

	locations.EXPECT().CountActiveUsers(ctx, 30).Return(7, nil).Times(1)

	count, err := svc.GetStats(ctx)

	require.NoError(t, err)
	assert.Equal(t, 7, count)
}

func TestGetStats_Error(t *testing.T) {
	svc, _, locations := newTestUserService(t)
	ctx := context.Background()

	locations.EXPECT().CountActiveUsers(ctx, 30).Return(0, fmt.Errorf("query: %w", service.ErrStoreUnavailable)).Times(1)

	_, err := svc.GetStats(ctx)

	assert.ErrorIs(t, err, service.ErrStoreUnavailable)
}
