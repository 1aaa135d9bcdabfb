package impl

import (
	"context"
	"testing"
	"time"

	"keepposted/internal/domain/entity"
	domainerrors "keepposted/internal/domain/errors"
	mockRepo "keepposted/internal/mocks/repository"
	mockUsecase "keepposted/internal/mocks/usecase"
	"keepposted/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestProfileService(t *testing.T) (usecase.ProfileUsecase, *mockRepo.MockProfileRepository, *mockUsecase.MockGeocodeUsecase, *Background) {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	geocode := mockUsecase.NewMockGeocodeUsecase(t)
	bg := NewBackground()

	svc := NewProfileService(ProfileServiceParams{
		ProfileRepo: profileRepo,
		Geocode:     geocode,
		Background:  bg,
		Logger:      newDiscardLogger(),
	})

	return svc, profileRepo, geocode, bg
}

func TestProfileService_SaveLocation_UpdatesSessionBeforeWrite(t *testing.T) {
	svc, profileRepo, _, bg := createTestProfileService(t)
	_, sess := newTestSession(t, "uid-ada")
	ctx := context.Background()

	paris := &entity.Coordinate{Latitude: 48.8566, Longitude: 2.3522}
	release := make(chan struct{})
	profileRepo.EXPECT().UpdateHomeLocation(mock.Anything, "uid-ada", "Paris, France", paris).
		RunAndReturn(func(context.Context, string, string, *entity.Coordinate) error {
			<-release

			return nil
		})

	out := svc.SaveLocation(ctx, sess, &usecase.SaveLocationInput{Name: "Paris, France", Coordinate: paris})

	// the document write is still blocked here
	assert.Equal(t, "Paris, France", out.HomeLocationName)
	require.NotNil(t, out.HomeCoordinate)
	assert.InDelta(t, 48.8566, out.HomeCoordinate.Latitude, 1e-9)
	assert.Equal(t, "Paris, France", sess.Snapshot().HomeLocationName)

	close(release)
	waitBackground(t, bg)
}

func TestProfileService_SaveLocation_NilCoordinate(t *testing.T) {
	svc, profileRepo, _, bg := createTestProfileService(t)
	_, sess := newTestSession(t, "uid-ada")
	ctx := context.Background()

	sess.SetHomeLocation("Paris, France", &entity.Coordinate{Latitude: 48.8566, Longitude: 2.3522})
	profileRepo.EXPECT().UpdateHomeLocation(mock.Anything, "uid-ada", "Somewhere", (*entity.Coordinate)(nil)).Return(nil)

	out := svc.SaveLocation(ctx, sess, &usecase.SaveLocationInput{Name: "Somewhere"})
	waitBackground(t, bg)

	assert.Equal(t, "Somewhere", out.HomeLocationName)
	assert.Nil(t, out.HomeCoordinate)
}

func TestProfileService_SaveLocation_WriteFailureKeepsSession(t *testing.T) {
	svc, profileRepo, _, bg := createTestProfileService(t)
	_, sess := newTestSession(t, "uid-ada")
	ctx := context.Background()

	profileRepo.EXPECT().UpdateHomeLocation(mock.Anything, "uid-ada", "Paris, France", mock.Anything).
		Return(errors.New("permission denied"))

	svc.SaveLocation(ctx, sess, &usecase.SaveLocationInput{Name: "Paris, France"})
	waitBackground(t, bg)

	assert.Equal(t, "Paris, France", sess.Snapshot().HomeLocationName)
}

func TestProfileService_SaveLocation_AnonymousSessionSkipsWrite(t *testing.T) {
	svc, _, _, bg := createTestProfileService(t)
	_, sess := newTestSession(t, "uid-ada")
	sess.Reset()

	out := svc.SaveLocation(context.Background(), sess, &usecase.SaveLocationInput{Name: "Paris, France"})
	waitBackground(t, bg)

	assert.Equal(t, "Paris, France", out.HomeLocationName)
}

func TestProfileService_ConfirmHomeLocation_UsesSelection(t *testing.T) {
	svc, profileRepo, geocode, bg := createTestProfileService(t)
	_, sess := newTestSession(t, "uid-ada")
	ctx := context.Background()

	selected := entity.Coordinate{Latitude: 37.3349, Longitude: -122.009}
	sess.SetSelectedCoordinate(selected)

	geocode.EXPECT().ReverseGeocode(ctx, sess, selected).Return("Cupertino, CA", nil)
	profileRepo.EXPECT().UpdateHomeLocation(mock.Anything, "uid-ada", "Cupertino, CA", &selected).Return(nil)

	out, err := svc.ConfirmHomeLocation(ctx, sess, &usecase.ConfirmLocationInput{
		MapCenter: &entity.Coordinate{Latitude: 1, Longitude: 1},
	})
	require.NoError(t, err)
	waitBackground(t, bg)

	assert.Equal(t, "Cupertino, CA", out.HomeLocationName)
	assert.Equal(t, &selected, out.HomeCoordinate)
}

func TestProfileService_ConfirmHomeLocation_FallsBackToMapCenter(t *testing.T) {
	svc, profileRepo, geocode, bg := createTestProfileService(t)
	_, sess := newTestSession(t, "uid-ada")
	ctx := context.Background()

	center := entity.Coordinate{Latitude: 51.5072, Longitude: -0.1276}
	geocode.EXPECT().ReverseGeocode(ctx, sess, center).Return("London, England", nil)
	profileRepo.EXPECT().UpdateHomeLocation(mock.Anything, "uid-ada", "London, England", &center).Return(nil)

	out, err := svc.ConfirmHomeLocation(ctx, sess, &usecase.ConfirmLocationInput{MapCenter: &center})
	require.NoError(t, err)
	waitBackground(t, bg)

	assert.Equal(t, "London, England", out.HomeLocationName)
}

func TestProfileService_ConfirmHomeLocation_Errors(t *testing.T) {
	t.Run("no coordinate", func(t *testing.T) {
		svc, _, _, _ := createTestProfileService(t)
		_, sess := newTestSession(t, "uid-ada")

		out, err := svc.ConfirmHomeLocation(context.Background(), sess, &usecase.ConfirmLocationInput{})

		assert.Nil(t, out)
		assert.ErrorIs(t, err, domainerrors.ErrNoLocationSelected)
	})

	t.Run("geocode pending", func(t *testing.T) {
		svc, _, geocode, _ := createTestProfileService(t)
		_, sess := newTestSession(t, "uid-ada")
		ctx := context.Background()

		center := entity.Coordinate{Latitude: 10, Longitude: 10}
		geocode.EXPECT().ReverseGeocode(ctx, sess, center).Return("", domainerrors.ErrGeocodePending)

		out, err := svc.ConfirmHomeLocation(ctx, sess, &usecase.ConfirmLocationInput{MapCenter: &center})

		assert.Nil(t, out)
		assert.ErrorIs(t, err, domainerrors.ErrGeocodePending)
		assert.Equal(t, "Cupertino, California", sess.Snapshot().HomeLocationName)
	})
}

func TestProfileService_GetProfile(t *testing.T) {
	svc, _, _, _ := createTestProfileService(t)
	_, sess := newTestSession(t, "uid-ada")

	sess.SetFullName("Ada Lovelace")
	sess.AddActivity("Postcard Sent to Bob", time.Now().Add(-5*time.Minute))
	sess.AddActivity("Postcard Sent to Carol", time.Now())

	out := svc.GetProfile(context.Background(), sess)

	assert.Equal(t, "uid-ada", out.UserID)
	assert.Equal(t, "Ada Lovelace", out.SenderName)
	assert.Equal(t, "Cupertino, California", out.HomeLocationName)
	require.Len(t, out.Activities, 2)
	assert.Equal(t, "Postcard Sent to Carol", out.Activities[0].Title)
	assert.Equal(t, "Just now", out.Activities[0].TimeAgo)
	assert.Equal(t, "5m ago", out.Activities[1].TimeAgo)
}
