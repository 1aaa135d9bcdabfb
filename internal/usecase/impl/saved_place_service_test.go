package impl

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"keepposted/internal/domain/entity"
	domainerrors "keepposted/internal/domain/errors"
	"keepposted/internal/domain/repository"
	mockRepo "keepposted/internal/mocks/repository"
	mockUsecase "keepposted/internal/mocks/usecase"
	"keepposted/internal/usecase"
	"keepposted/internal/usecase/session"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// watchRecorder stands in for the live listener: it hands the test each onChange callback
// and blocks until the listener context ends.
type watchRecorder struct {
	mu        sync.Mutex
	callbacks map[string]func([]*entity.SavedPlace)
	stopped   map[string]chan struct{}
	started   chan string
}

func newWatchRecorder() *watchRecorder {
	return &watchRecorder{
		callbacks: make(map[string]func([]*entity.SavedPlace)),
		stopped:   make(map[string]chan struct{}),
		started:   make(chan string, 4),
	}
}

func (w *watchRecorder) watch(ctx context.Context, userID string, onChange func([]*entity.SavedPlace)) error {
	stopped := make(chan struct{})

	w.mu.Lock()
	w.callbacks[userID] = onChange
	w.stopped[userID] = stopped
	w.mu.Unlock()

	w.started <- userID
	<-ctx.Done()
	close(stopped)

	return nil
}

func (w *watchRecorder) push(userID string, places []*entity.SavedPlace) {
	w.mu.Lock()
	onChange := w.callbacks[userID]
	w.mu.Unlock()

	onChange(places)
}

func (w *watchRecorder) stoppedCh(userID string) <-chan struct{} {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.stopped[userID]
}

func (w *watchRecorder) awaitStart(t *testing.T, userID string) {
	t.Helper()

	select {
	case got := <-w.started:
		require.Equal(t, userID, got)
	case <-time.After(2 * time.Second):
		t.Fatalf("listener for %s never started", userID)
	}
}

type savedPlaceFixtures struct {
	service   usecase.SavedPlaceUsecase
	placeRepo *mockRepo.MockSavedPlaceRepository
	geocode   *mockUsecase.MockGeocodeUsecase
	watcher   *watchRecorder
	sess      *session.Session
	bg        *Background
}

func createTestSavedPlaceService(t *testing.T) savedPlaceFixtures {
	placeRepo := mockRepo.NewMockSavedPlaceRepository(t)
	geocode := mockUsecase.NewMockGeocodeUsecase(t)
	watcher := newWatchRecorder()
	bg := NewBackground()
	_, sess := newTestSession(t, "uid-ada")

	placeRepo.EXPECT().Watch(mock.Anything, mock.Anything, mock.Anything).RunAndReturn(watcher.watch).Maybe()

	svc := NewSavedPlaceService(SavedPlaceServiceParams{
		PlaceRepo:  placeRepo,
		Geocode:    geocode,
		Background: bg,
		Config:     newTestConfig(),
		Logger:     newDiscardLogger(),
	})

	t.Cleanup(func() {
		sess.Close()
		waitBackground(t, bg)
	})

	return savedPlaceFixtures{
		service:   svc,
		placeRepo: placeRepo,
		geocode:   geocode,
		watcher:   watcher,
		sess:      sess,
		bg:        bg,
	}
}

func awaitSignal(t *testing.T, ch <-chan struct{}, what string) {
	t.Helper()

	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for %s", what)
	}
}

func samplePlaces() []*entity.SavedPlace {
	address := "1 Infinite Loop, Cupertino"

	return []*entity.SavedPlace{
		{ID: "p2", Name: "Office", Address: &address, Latitude: 37.3349, Longitude: -122.009, DateAdded: time.Now()},
		{ID: "p1", Name: "Home", Latitude: 37.3230, Longitude: -122.0322, DateAdded: time.Now().Add(-time.Hour)},
	}
}

func TestSavedPlaceService_Initialize_PushesToSubscribers(t *testing.T) {
	fx := createTestSavedPlaceService(t)
	ctx := context.Background()

	fx.service.Initialize(ctx, fx.sess, "uid-ada")
	fx.watcher.awaitStart(t, "uid-ada")

	updates, cancel := fx.service.Subscribe(ctx, fx.sess)
	defer cancel()

	fx.watcher.push("uid-ada", samplePlaces())

	select {
	case out := <-updates:
		assert.Equal(t, "uid-ada", out.UserID)
		require.Len(t, out.Places, 2)
		assert.Equal(t, "Office", out.Places[0].Name)
		assert.Nil(t, out.Places[0].DistanceFromHome)
	case <-time.After(2 * time.Second):
		t.Fatal("no update received")
	}

	assert.Len(t, fx.service.Places(ctx, fx.sess).Places, 2)
}

func TestSavedPlaceService_Initialize_SameUserIsNoop(t *testing.T) {
	fx := createTestSavedPlaceService(t)
	ctx := context.Background()

	fx.service.Initialize(ctx, fx.sess, "uid-ada")
	fx.watcher.awaitStart(t, "uid-ada")
	fx.service.Initialize(ctx, fx.sess, "uid-ada")
	fx.service.Initialize(ctx, fx.sess, "")

	select {
	case uid := <-fx.watcher.started:
		t.Fatalf("unexpected second listener for %s", uid)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestSavedPlaceService_Initialize_RebindReleasesPreviousListener(t *testing.T) {
	fx := createTestSavedPlaceService(t)
	ctx := context.Background()

	fx.service.Initialize(ctx, fx.sess, "uid-ada")
	fx.watcher.awaitStart(t, "uid-ada")
	fx.watcher.push("uid-ada", samplePlaces())

	fx.service.Initialize(ctx, fx.sess, "uid-grace")
	fx.watcher.awaitStart(t, "uid-grace")

	select {
	case <-fx.watcher.stoppedCh("uid-ada"):
	case <-time.After(2 * time.Second):
		t.Fatal("previous listener was not cancelled")
	}

	// a late push from the released listener is ignored
	fx.watcher.push("uid-ada", samplePlaces())

	out := fx.service.Places(ctx, fx.sess)
	assert.Equal(t, "uid-grace", out.UserID)
	assert.Empty(t, out.Places)
}

func TestSavedPlaceService_Initialize_RebindsAfterListenerFails(t *testing.T) {
	placeRepo := mockRepo.NewMockSavedPlaceRepository(t)
	watcher := newWatchRecorder()
	bg := NewBackground()
	_, sess := newTestSession(t, "uid-ada")
	ctx := context.Background()

	var calls atomic.Int32
	placeRepo.EXPECT().Watch(mock.Anything, "uid-ada", mock.Anything).
		RunAndReturn(func(ctx context.Context, userID string, onChange func([]*entity.SavedPlace)) error {
			if calls.Add(1) == 1 {
				return errors.New("permission denied")
			}

			return watcher.watch(ctx, userID, onChange)
		})

	svc := NewSavedPlaceService(SavedPlaceServiceParams{
		PlaceRepo:  placeRepo,
		Geocode:    mockUsecase.NewMockGeocodeUsecase(t),
		Background: bg,
		Config:     newTestConfig(),
		Logger:     newDiscardLogger(),
	})
	t.Cleanup(func() {
		sess.Close()
		waitBackground(t, bg)
	})

	svc.Initialize(ctx, sess, "uid-ada")

	// Places routes call Initialize on every request; one of them must re-bind.
	require.Eventually(t, func() bool {
		svc.Initialize(ctx, sess, "uid-ada")

		return calls.Load() >= 2
	}, 2*time.Second, 10*time.Millisecond)

	watcher.awaitStart(t, "uid-ada")
	watcher.push("uid-ada", samplePlaces())
	assert.Len(t, svc.Places(ctx, sess).Places, 2)

	// The live listener is not replaced again.
	svc.Initialize(ctx, sess, "uid-ada")
	assert.Equal(t, int32(2), calls.Load())
}

func TestSavedPlaceService_Places_DistanceFromHome(t *testing.T) {
	fx := createTestSavedPlaceService(t)
	ctx := context.Background()

	fx.sess.SetHomeLocation("Cupertino, CA", &entity.Coordinate{Latitude: 37.3349, Longitude: -122.009})
	fx.service.Initialize(ctx, fx.sess, "uid-ada")
	fx.watcher.awaitStart(t, "uid-ada")
	fx.watcher.push("uid-ada", samplePlaces())

	out := fx.service.Places(ctx, fx.sess)
	require.Len(t, out.Places, 2)
	require.NotNil(t, out.Places[0].DistanceFromHome)
	assert.InDelta(t, 0, *out.Places[0].DistanceFromHome, 1)
	require.NotNil(t, out.Places[1].DistanceFromHome)
	assert.Greater(t, *out.Places[1].DistanceFromHome, 1000.0)
}

func TestSavedPlaceService_Subscribe_CancelClosesChannel(t *testing.T) {
	fx := createTestSavedPlaceService(t)
	ctx := context.Background()

	updates, cancel := fx.service.Subscribe(ctx, fx.sess)
	cancel()
	cancel()

	_, ok := <-updates
	assert.False(t, ok)
}

func TestSavedPlaceService_Create(t *testing.T) {
	fx := createTestSavedPlaceService(t)
	ctx := context.Background()

	fx.service.Initialize(ctx, fx.sess, "uid-ada")
	fx.watcher.awaitStart(t, "uid-ada")

	var written *entity.SavedPlace
	stored := make(chan struct{})
	fx.placeRepo.EXPECT().Create(mock.Anything, "uid-ada", mock.AnythingOfType("*entity.SavedPlace")).
		Run(func(_ context.Context, _ string, place *entity.SavedPlace) {
			written = place
			close(stored)
		}).
		Return(nil)

	err := fx.service.Create(ctx, fx.sess, &usecase.CreatePlaceInput{
		Name:       "Eiffel Tower",
		Coordinate: entity.Coordinate{Latitude: 48.8584, Longitude: 2.2945},
	})
	require.NoError(t, err)
	awaitSignal(t, stored, "saved place write")

	require.NotNil(t, written)
	assert.Equal(t, "Eiffel Tower", written.Name)
	assert.Nil(t, written.Address)
	assert.InDelta(t, 48.8584, written.Latitude, 1e-9)
	assert.InDelta(t, 2.2945, written.Longitude, 1e-9)
	assert.False(t, written.DateAdded.IsZero())
}

func TestSavedPlaceService_Create_Errors(t *testing.T) {
	t.Run("not initialized", func(t *testing.T) {
		fx := createTestSavedPlaceService(t)

		err := fx.service.Create(context.Background(), fx.sess, &usecase.CreatePlaceInput{Name: "Anywhere"})
		assert.ErrorIs(t, err, domainerrors.ErrPlacesNotInitialized)
	})

	t.Run("coordinate out of range", func(t *testing.T) {
		fx := createTestSavedPlaceService(t)
		ctx := context.Background()

		fx.service.Initialize(ctx, fx.sess, "uid-ada")
		fx.watcher.awaitStart(t, "uid-ada")

		err := fx.service.Create(ctx, fx.sess, &usecase.CreatePlaceInput{
			Name:       "Nowhere",
			Coordinate: entity.Coordinate{Latitude: 91, Longitude: 0},
		})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestSavedPlaceService_PinAtCenter(t *testing.T) {
	fx := createTestSavedPlaceService(t)
	ctx := context.Background()

	fx.service.Initialize(ctx, fx.sess, "uid-ada")
	fx.watcher.awaitStart(t, "uid-ada")

	center := entity.Coordinate{Latitude: 37.3349, Longitude: -122.009}
	fx.geocode.EXPECT().PinAddress(mock.Anything, center).Return("1 Infinite Loop, Cupertino")

	var written *entity.SavedPlace
	stored := make(chan struct{})
	fx.placeRepo.EXPECT().Create(mock.Anything, "uid-ada", mock.Anything).
		Run(func(_ context.Context, _ string, place *entity.SavedPlace) {
			written = place
			close(stored)
		}).
		Return(nil)

	require.NoError(t, fx.service.PinAtCenter(ctx, fx.sess, &usecase.PinPlaceInput{Name: "Work", Center: center}))
	awaitSignal(t, stored, "pinned place write")

	require.NotNil(t, written)
	require.NotNil(t, written.Address)
	assert.Equal(t, "1 Infinite Loop, Cupertino", *written.Address)
	assert.Equal(t, center, written.Coordinate())
}

func TestSavedPlaceService_Focus(t *testing.T) {
	t.Run("cached place", func(t *testing.T) {
		fx := createTestSavedPlaceService(t)
		ctx := context.Background()

		fx.service.Initialize(ctx, fx.sess, "uid-ada")
		fx.watcher.awaitStart(t, "uid-ada")
		fx.watcher.push("uid-ada", samplePlaces())

		viewport, err := fx.service.Focus(ctx, fx.sess, "p1")
		require.NoError(t, err)
		assert.Equal(t, entity.Coordinate{Latitude: 37.3230, Longitude: -122.0322}, viewport.Center)
		assert.InDelta(t, 0.01, viewport.LatitudeDelta, 1e-9)
	})

	t.Run("falls back to repository", func(t *testing.T) {
		fx := createTestSavedPlaceService(t)
		ctx := context.Background()

		fx.service.Initialize(ctx, fx.sess, "uid-ada")
		fx.watcher.awaitStart(t, "uid-ada")
		fx.placeRepo.EXPECT().FindByID(ctx, "uid-ada", "p9").
			Return(&entity.SavedPlace{ID: "p9", Latitude: 1, Longitude: 2}, nil)

		viewport, err := fx.service.Focus(ctx, fx.sess, "p9")
		require.NoError(t, err)
		assert.Equal(t, entity.Coordinate{Latitude: 1, Longitude: 2}, viewport.Center)
	})

	t.Run("unknown place", func(t *testing.T) {
		fx := createTestSavedPlaceService(t)
		ctx := context.Background()

		fx.service.Initialize(ctx, fx.sess, "uid-ada")
		fx.watcher.awaitStart(t, "uid-ada")
		fx.placeRepo.EXPECT().FindByID(ctx, "uid-ada", "missing").Return(nil, repository.ErrSavedPlaceNotFound)

		_, err := fx.service.Focus(ctx, fx.sess, "missing")
		assert.ErrorIs(t, err, domainerrors.ErrSavedPlaceNotFound)
	})
}
