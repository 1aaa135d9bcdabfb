package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"keepposted/config"
	deliverycontext "keepposted/internal/delivery/context"
	"keepposted/internal/domain/entity"
	"keepposted/internal/domain/service"
	"keepposted/internal/usecase"
	"keepposted/internal/usecase/session"

	"go.uber.org/fx"
)

const deviceLocatorKey = "device.locator"

// deviceLocator tracks the one-shot fix of a session.
type deviceLocator struct {
	mu      sync.Mutex
	pending bool
	signals *entity.LocationSignals
	done    chan struct{}
}

func newDeviceLocator() *deviceLocator {
	return &deviceLocator{done: make(chan struct{})}
}

// begin marks a fix as pending and reports false when one already is.
func (l *deviceLocator) begin() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.pending {
		return false
	}
	l.pending = true

	return true
}

func (l *deviceLocator) finish() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.pending = false
	close(l.done)
	l.done = make(chan struct{})
}

func (l *deviceLocator) state() (bool, <-chan struct{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.pending, l.done
}

func (l *deviceLocator) setSignals(signals *entity.LocationSignals) {
	if signals == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.signals = signals
}

func (l *deviceLocator) lastSignals() *entity.LocationSignals {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.signals
}

// deviceLocationService implements the DeviceLocationUsecase interface.
type deviceLocationService struct {
	geolocation service.GeolocationProvider
	background  *Background
	waitWindow  time.Duration
	logger      *slog.Logger
}

// DeviceLocationServiceParams holds dependencies for DeviceLocationService, injected by Fx.
type DeviceLocationServiceParams struct {
	fx.In

	Geolocation service.GeolocationProvider
	Background  *Background
	Config      *config.Config
	Logger      *slog.Logger
}

// NewDeviceLocationService is the constructor for deviceLocationService.
func NewDeviceLocationService(params DeviceLocationServiceParams) usecase.DeviceLocationUsecase {
	return &deviceLocationService{
		geolocation: params.Geolocation,
		background:  params.Background,
		waitWindow:  params.Config.Device.FixWaitWindow,
		logger:      params.Logger,
	}
}

func (srv *deviceLocationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *deviceLocationService) locator(sess *session.Session) *deviceLocator {
	return session.Component(sess, deviceLocatorKey, newDeviceLocator)
}

// RequestCurrentLocation asks for authorization when undetermined and for a fix when granted.
// A denied or pending authorization produces nothing.
func (srv *deviceLocationService) RequestCurrentLocation(ctx context.Context, sess *session.Session, signals *entity.LocationSignals) *usecase.DeviceLocationOutput {
	locator := srv.locator(sess)
	locator.setSignals(signals)

	switch sess.Permission() {
	case entity.LocationNotDetermined:
		srv.log(ctx).Info("Requesting location authorization", slog.String("session_id", sess.ID()))
		sess.SetPermission(entity.LocationRequested)
	case entity.LocationGranted:
		srv.requestFix(ctx, sess, locator)
	case entity.LocationRequested, entity.LocationDenied:
		srv.log(ctx).Debug("No location request issued", slog.String("permission", string(sess.Permission())))
	}

	return srv.output(sess, locator)
}

// AuthorizationChanged records the answer to an authorization request.
func (srv *deviceLocationService) AuthorizationChanged(ctx context.Context, sess *session.Session, status entity.LocationAuthorization) *usecase.DeviceLocationOutput {
	sess.SetPermission(status)
	locator := srv.locator(sess)

	if status == entity.LocationGranted {
		srv.requestFix(ctx, sess, locator)
	}

	return srv.output(sess, locator)
}

// CurrentLocation returns the coordinate slot. With wait set it blocks on a pending fix
// for at most the configured window; no coordinate is not an error.
func (srv *deviceLocationService) CurrentLocation(ctx context.Context, sess *session.Session, wait bool) *usecase.DeviceLocationOutput {
	locator := srv.locator(sess)

	pending, done := locator.state()
	if wait && pending {
		timer := time.NewTimer(srv.waitWindow)
		defer timer.Stop()

		select {
		case <-done:
		case <-timer.C:
			srv.log(ctx).Debug("No location fix within wait window", slog.Duration("window", srv.waitWindow))
		case <-ctx.Done():
		}
	}

	return srv.output(sess, locator)
}

func (srv *deviceLocationService) requestFix(ctx context.Context, sess *session.Session, locator *deviceLocator) {
	if !locator.begin() {
		return
	}
	signals := locator.lastSignals()

	srv.background.Go(ctx, func(ctx context.Context) {
		defer locator.finish()

		fix, err := srv.geolocation.Locate(ctx, signals)
		if err != nil {
			srv.log(ctx).Warn("Location error", slog.String("session_id", sess.ID()), slog.Any("error", err))

			return
		}

		sess.PublishCurrentCoordinate(fix.Coordinate)
		srv.log(ctx).Debug("Location fix published",
			slog.String("session_id", sess.ID()),
			slog.Float64("accuracy", fix.Accuracy),
		)
	})
}

func (srv *deviceLocationService) output(sess *session.Session, locator *deviceLocator) *usecase.DeviceLocationOutput {
	pending, _ := locator.state()

	return &usecase.DeviceLocationOutput{
		Permission: sess.Permission(),
		Coordinate: sess.CurrentCoordinate(),
		Pending:    pending,
	}
}
