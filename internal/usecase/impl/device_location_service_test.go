package impl

import (
	"context"
	"testing"

	"keepposted/internal/domain/entity"
	mockSvc "keepposted/internal/mocks/service"
	"keepposted/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestDeviceLocationService(t *testing.T) (usecase.DeviceLocationUsecase, *mockSvc.MockGeolocationProvider, *Background) {
	geolocation := mockSvc.NewMockGeolocationProvider(t)
	bg := NewBackground()

	svc := NewDeviceLocationService(DeviceLocationServiceParams{
		Geolocation: geolocation,
		Background:  bg,
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	})

	return svc, geolocation, bg
}

func TestDeviceLocationService_RequestCurrentLocation_AsksForAuthorizationFirst(t *testing.T) {
	svc, _, bg := createTestDeviceLocationService(t)
	_, sess := newTestSession(t, "uid-ada")

	out := svc.RequestCurrentLocation(context.Background(), sess, nil)
	waitBackground(t, bg)

	assert.Equal(t, entity.LocationRequested, out.Permission)
	assert.Nil(t, out.Coordinate)
	assert.False(t, out.Pending)
}

func TestDeviceLocationService_AuthorizationGranted_PublishesFix(t *testing.T) {
	svc, geolocation, bg := createTestDeviceLocationService(t)
	_, sess := newTestSession(t, "uid-ada")
	ctx := context.Background()

	signals := &entity.LocationSignals{ConsiderIP: true}
	fix := &entity.LocationFix{Coordinate: entity.Coordinate{Latitude: 37.3349, Longitude: -122.009}, Accuracy: 40}
	geolocation.EXPECT().Locate(mock.Anything, signals).Return(fix, nil).Once()

	svc.RequestCurrentLocation(ctx, sess, signals)
	svc.AuthorizationChanged(ctx, sess, entity.LocationGranted)

	out := svc.CurrentLocation(ctx, sess, true)
	waitBackground(t, bg)

	assert.Equal(t, entity.LocationGranted, out.Permission)
	require.NotNil(t, out.Coordinate)
	assert.Equal(t, fix.Coordinate, *out.Coordinate)
	assert.Equal(t, &fix.Coordinate, sess.SelectedCoordinate())
}

func TestDeviceLocationService_RequestWhenGranted_IssuesOneFixAtATime(t *testing.T) {
	svc, geolocation, bg := createTestDeviceLocationService(t)
	_, sess := newTestSession(t, "uid-ada")
	ctx := context.Background()
	sess.SetPermission(entity.LocationGranted)

	release := make(chan struct{})
	geolocation.EXPECT().Locate(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, *entity.LocationSignals) (*entity.LocationFix, error) {
			<-release

			return &entity.LocationFix{Coordinate: entity.Coordinate{Latitude: 10, Longitude: 20}}, nil
		}).Once()

	first := svc.RequestCurrentLocation(ctx, sess, nil)
	second := svc.RequestCurrentLocation(ctx, sess, nil)
	assert.True(t, first.Pending)
	assert.True(t, second.Pending)

	close(release)
	out := svc.CurrentLocation(ctx, sess, true)
	waitBackground(t, bg)

	require.NotNil(t, out.Coordinate)
	assert.InDelta(t, 20, out.Coordinate.Longitude, 1e-9)
}

func TestDeviceLocationService_LocateError_LeavesSlotEmpty(t *testing.T) {
	svc, geolocation, bg := createTestDeviceLocationService(t)
	_, sess := newTestSession(t, "uid-ada")
	ctx := context.Background()

	geolocation.EXPECT().Locate(mock.Anything, mock.Anything).Return(nil, errors.New("no signal"))

	svc.AuthorizationChanged(ctx, sess, entity.LocationGranted)
	out := svc.CurrentLocation(ctx, sess, true)
	waitBackground(t, bg)

	assert.Nil(t, out.Coordinate)
	assert.Nil(t, sess.SelectedCoordinate())
}

func TestDeviceLocationService_DeniedProducesNothing(t *testing.T) {
	svc, _, bg := createTestDeviceLocationService(t)
	_, sess := newTestSession(t, "uid-ada")
	ctx := context.Background()

	svc.AuthorizationChanged(ctx, sess, entity.LocationDenied)
	out := svc.RequestCurrentLocation(ctx, sess, nil)
	waitBackground(t, bg)

	assert.Equal(t, entity.LocationDenied, out.Permission)
	assert.Nil(t, out.Coordinate)
	assert.False(t, out.Pending)
}
