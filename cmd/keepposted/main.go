package main

import (
	"context"
	"log/slog"
	"os"

	"keepposted/config"
	"keepposted/internal/delivery"
	"keepposted/internal/delivery/api"
	"keepposted/internal/delivery/api/middleware"
	"keepposted/internal/delivery/api/router/handler"
	"keepposted/internal/domain/lifecycle"
	"keepposted/internal/infra/auth"
	"keepposted/internal/infra/auth/google"
	"keepposted/internal/infra/contacts"
	"keepposted/internal/infra/firebase"
	"keepposted/internal/infra/identity"
	logs "keepposted/internal/infra/log"
	"keepposted/internal/infra/maps"
	"keepposted/internal/infra/metrics"
	"keepposted/internal/infra/persistence/firestore"
	"keepposted/internal/infra/pubsub"
	"keepposted/internal/usecase/impl"
	"keepposted/internal/usecase/session"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
	Sessions   *session.Store
	Background *impl.Background
	Logger     *slog.Logger
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			firebase.New,
		),
		metrics.Module,
	)
}

func injectRepo() fx.Option {
	return firestore.Module
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			google.NewAuthService,
		),
		identity.Module,
		maps.Module,
		contacts.Module,
		pubsub.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			session.NewStore,
			impl.NewBackground,
			impl.NewAuthService,
			impl.NewProfileService,
			impl.NewGeocodeService,
			impl.NewSearchService,
			impl.NewDeviceLocationService,
			impl.NewSavedPlaceService,
			impl.NewPostcardService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewProfileHandler,
			handler.NewSearchHandler,
			handler.NewDeviceLocationHandler,
			handler.NewGeocodeHandler,
			handler.NewSavedPlaceHandler,
			handler.NewPostcardHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				params.Logger.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}

	params.Append(fx.Hook{
		OnStop: func(stopCtx context.Context) error {
			return shutdown(stopCtx, params.Deliveries, params.Sessions, params.Background, params.Logger)
		},
	})
}

// shutdown closes every session first so place streams end and handlers return,
// then stops the deliveries, then drains background writes. Nothing can start
// new background work once the deliveries are down.
func shutdown(
	ctx context.Context,
	deliveries []delivery.Delivery,
	sessions *session.Store,
	background *impl.Background,
	logger *slog.Logger,
) error {
	sessions.CloseAll()

	var firstErr error
	for _, d := range deliveries {
		if err := d.Shutdown(ctx); err != nil {
			logger.Error("Failed to shut down delivery", slog.Any("error", err))
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	waitCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	if err := background.Wait(waitCtx); err != nil {
		logger.Error("Background work did not finish", slog.Any("error", err))
		if firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}
