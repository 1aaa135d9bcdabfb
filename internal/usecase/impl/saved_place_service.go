package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"keepposted/config"
	deliverycontext "keepposted/internal/delivery/context"
	"keepposted/internal/domain/entity"
	domainerrors "keepposted/internal/domain/errors"
	"keepposted/internal/domain/repository"
	"keepposted/internal/usecase"
	"keepposted/internal/usecase/session"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const placesBindingKey = "places.binding"

// placesBinding is one session's live subscription to a user's saved places.
// epoch increases on every rebind so pushes from a released listener are ignored.
type placesBinding struct {
	sess *session.Session

	mu       sync.Mutex
	userID   string
	epoch    uint64
	cancel   context.CancelFunc
	places   []*entity.SavedPlace
	received bool
	watchers map[uint64]chan *usecase.PlacesOutput
	nextID   uint64
}

func newPlacesBinding(sess *session.Session) *placesBinding {
	return &placesBinding{
		sess:     sess,
		watchers: make(map[uint64]chan *usecase.PlacesOutput),
	}
}

// publish stores a pushed list and fans it out. Stale epochs are dropped.
func (b *placesBinding) publish(epoch uint64, places []*entity.SavedPlace) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if epoch != b.epoch {
		return
	}
	b.places = places
	b.received = true

	out := b.output()
	for _, ch := range b.watchers {
		sendLatest(ch, out)
	}
}

// output builds the list view. Must be called with mu held.
func (b *placesBinding) output() *usecase.PlacesOutput {
	home := b.sess.Snapshot().HomeCoordinate

	views := make([]usecase.PlaceView, 0, len(b.places))
	for _, place := range b.places {
		view := usecase.PlaceView{SavedPlace: place}
		if home != nil {
			distance := home.DistanceTo(place.Coordinate())
			view.DistanceFromHome = &distance
		}
		views = append(views, view)
	}

	return &usecase.PlacesOutput{UserID: b.userID, Places: views}
}

// release stops the current listener and forgets its list. Must be called with mu held.
func (b *placesBinding) release() {
	if b.cancel != nil {
		b.cancel()
		b.cancel = nil
	}
	b.epoch++
	b.places = nil
	b.received = false
}

// listenerExited forgets a listener that ended on its own so the next
// Initialize binds a new one. The last pushed list is kept.
func (b *placesBinding) listenerExited(epoch uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if epoch != b.epoch || b.cancel == nil {
		return
	}
	b.cancel()
	b.cancel = nil
}

// Close releases the listener and closes every watcher channel.
func (b *placesBinding) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.release()
	b.userID = ""
	for id, ch := range b.watchers {
		delete(b.watchers, id)
		close(ch)
	}
}

// sendLatest replaces whatever the watcher has not read yet with out.
// Only the binding sends, under its lock, so the second send cannot block.
func sendLatest(ch chan *usecase.PlacesOutput, out *usecase.PlacesOutput) {
	select {
	case ch <- out:
	default:
		select {
		case <-ch:
		default:
		}
		ch <- out
	}
}

// savedPlaceService implements the SavedPlaceUsecase interface.
type savedPlaceService struct {
	placeRepo    repository.SavedPlaceRepository
	geocode      usecase.GeocodeUsecase
	background   *Background
	pinFocusSpan float64
	now          func() time.Time
	logger       *slog.Logger
}

// SavedPlaceServiceParams holds dependencies for SavedPlaceService, injected by Fx.
type SavedPlaceServiceParams struct {
	fx.In

	PlaceRepo  repository.SavedPlaceRepository
	Geocode    usecase.GeocodeUsecase
	Background *Background
	Config     *config.Config
	Logger     *slog.Logger
}

// NewSavedPlaceService is the constructor for savedPlaceService.
func NewSavedPlaceService(params SavedPlaceServiceParams) usecase.SavedPlaceUsecase {
	return &savedPlaceService{
		placeRepo:    params.PlaceRepo,
		geocode:      params.Geocode,
		background:   params.Background,
		pinFocusSpan: params.Config.Maps.PinFocusSpan,
		now:          time.Now,
		logger:       params.Logger,
	}
}

func (srv *savedPlaceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *savedPlaceService) binding(sess *session.Session) *placesBinding {
	return session.Component(sess, placesBindingKey, func() *placesBinding {
		return newPlacesBinding(sess)
	})
}

// Initialize binds the live subscription to userID, releasing any listener bound to another user.
func (srv *savedPlaceService) Initialize(ctx context.Context, sess *session.Session, userID string) {
	if userID == "" {
		return
	}

	binding := srv.binding(sess)

	binding.mu.Lock()
	defer binding.mu.Unlock()

	// A nil cancel with a bound user means the listener died; bind a new one.
	if binding.userID == userID && binding.cancel != nil {
		return
	}
	if binding.userID != "" && binding.userID != userID {
		srv.log(ctx).Info("Releasing saved places listener",
			slog.String("previous_uid", binding.userID),
			slog.String("uid", userID),
		)
	}

	binding.release()
	binding.userID = userID
	epoch := binding.epoch

	binding.cancel = srv.background.Start(ctx, func(ctx context.Context) {
		err := srv.placeRepo.Watch(ctx, userID, func(places []*entity.SavedPlace) {
			binding.publish(epoch, places)
		})
		if err != nil {
			srv.log(ctx).Error("Saved places listener stopped", slog.String("uid", userID), slog.Any("error", err))
		}
		binding.listenerExited(epoch)
	})
}

// Places returns the latest pushed list.
func (srv *savedPlaceService) Places(_ context.Context, sess *session.Session) *usecase.PlacesOutput {
	binding := srv.binding(sess)

	binding.mu.Lock()
	defer binding.mu.Unlock()

	return binding.output()
}

// Subscribe registers a watcher that always holds the most recent list.
func (srv *savedPlaceService) Subscribe(_ context.Context, sess *session.Session) (<-chan *usecase.PlacesOutput, func()) {
	binding := srv.binding(sess)
	ch := make(chan *usecase.PlacesOutput, 1)

	binding.mu.Lock()
	id := binding.nextID
	binding.nextID++
	binding.watchers[id] = ch
	if binding.received {
		ch <- binding.output()
	}
	binding.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			binding.mu.Lock()
			defer binding.mu.Unlock()

			if _, ok := binding.watchers[id]; ok {
				delete(binding.watchers, id)
				close(ch)
			}
		})
	}

	return ch, cancel
}

// Create writes the place in the background; write failures are only logged.
func (srv *savedPlaceService) Create(ctx context.Context, sess *session.Session, input *usecase.CreatePlaceInput) error {
	uid, err := srv.boundUser(sess)
	if err != nil {
		return err
	}
	if !input.Coordinate.Valid() {
		return domainerrors.ErrValidationFailed.WithDetails("coordinate out of range")
	}

	place := &entity.SavedPlace{
		Name:      input.Name,
		Address:   input.Address,
		Latitude:  input.Coordinate.Latitude,
		Longitude: input.Coordinate.Longitude,
		DateAdded: srv.now(),
	}

	srv.background.Go(ctx, func(ctx context.Context) {
		srv.persist(ctx, uid, place)
	})

	return nil
}

// PinAtCenter looks up the address of the map centre and saves a pin there, both in the background.
func (srv *savedPlaceService) PinAtCenter(ctx context.Context, sess *session.Session, input *usecase.PinPlaceInput) error {
	uid, err := srv.boundUser(sess)
	if err != nil {
		return err
	}
	if !input.Center.Valid() {
		return domainerrors.ErrValidationFailed.WithDetails("coordinate out of range")
	}

	center := input.Center
	dateAdded := srv.now()

	srv.background.Go(ctx, func(ctx context.Context) {
		address := srv.geocode.PinAddress(ctx, center)
		srv.persist(ctx, uid, &entity.SavedPlace{
			Name:      input.Name,
			Address:   &address,
			Latitude:  center.Latitude,
			Longitude: center.Longitude,
			DateAdded: dateAdded,
		})
	})

	return nil
}

// Focus returns a close-up viewport centred on a saved place.
func (srv *savedPlaceService) Focus(ctx context.Context, sess *session.Session, placeID string) (*entity.Viewport, error) {
	binding := srv.binding(sess)

	binding.mu.Lock()
	uid := binding.userID
	var found *entity.SavedPlace
	for _, place := range binding.places {
		if place.ID == placeID {
			found = place

			break
		}
	}
	binding.mu.Unlock()

	if found == nil {
		if uid == "" {
			return nil, domainerrors.ErrPlacesNotInitialized
		}

		place, err := srv.placeRepo.FindByID(ctx, uid, placeID)
		if err != nil {
			if errors.Is(err, repository.ErrSavedPlaceNotFound) {
				return nil, domainerrors.ErrSavedPlaceNotFound
			}

			return nil, errors.Wrap(err, "failed to find saved place")
		}
		found = place
	}

	viewport := entity.NewViewport(found.Coordinate(), srv.pinFocusSpan)

	return &viewport, nil
}

func (srv *savedPlaceService) boundUser(sess *session.Session) (string, error) {
	binding := srv.binding(sess)

	binding.mu.Lock()
	defer binding.mu.Unlock()

	if binding.userID == "" {
		return "", domainerrors.ErrPlacesNotInitialized
	}

	return binding.userID, nil
}

func (srv *savedPlaceService) persist(ctx context.Context, uid string, place *entity.SavedPlace) {
	if err := srv.placeRepo.Create(ctx, uid, place); err != nil {
		srv.log(ctx).Error("Error saving location",
			slog.String("uid", uid),
			slog.String("name", place.Name),
			slog.Any("error", err),
		)

		return
	}

	srv.log(ctx).Debug("Saved place created", slog.String("uid", uid), slog.String("place_id", place.ID))
}
