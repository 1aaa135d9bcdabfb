// Package firebase builds the Firebase app and the clients derived from it.
package firebase

import (
	"context"
	"log/slog"

	"keepposted/config"
	"keepposted/internal/domain/lifecycle"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Clients are the Firebase clients shared by the infra layer.
type Clients struct {
	fx.Out

	Firestore *firestore.Client
	Auth      *auth.Client
}

// New initializes the Firebase app. Without a credentials path the default application credentials are used.
func New(params Params) (Clients, error) {
	cfg := params.Config.Firebase

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	var appConfig *firebase.Config
	if cfg.ProjectID != "" {
		appConfig = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebase.NewApp(ctx, appConfig, opts...)
	if err != nil {
		return Clients{}, errors.Wrap(err, "failed to initialize Firebase app")
	}

	firestoreClient, err := app.Firestore(ctx)
	if err != nil {
		return Clients{}, errors.Wrap(err, "failed to get Firestore client")
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		firestoreClient.Close()

		return Clients{}, errors.Wrap(err, "failed to get Auth client")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			params.Logger.Info("Closing Firestore client")

			return errors.WithStack(firestoreClient.Close())
		},
	})

	params.Logger.Info("Firebase initialized", slog.String("project_id", cfg.ProjectID))

	return Clients{
		Firestore: firestoreClient,
		Auth:      authClient,
	}, nil
}
