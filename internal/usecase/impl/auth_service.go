package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "keepposted/internal/delivery/context"
	"keepposted/internal/domain/entity"
	domainerrors "keepposted/internal/domain/errors"
	"keepposted/internal/domain/repository"
	"keepposted/internal/domain/service"
	"keepposted/internal/usecase"
	"keepposted/internal/usecase/session"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	identity    service.IdentityProvider
	googleAuth  service.OAuthAuthService
	tokens      service.TokenService
	profileRepo repository.ProfileRepository
	sessions    *session.Store
	background  *Background
	now         func() time.Time
	logger      *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	Identity     service.IdentityProvider
	GoogleAuth   service.OAuthAuthService
	TokenService service.TokenService
	ProfileRepo  repository.ProfileRepository
	Sessions     *session.Store
	Background   *Background
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		identity:    params.Identity,
		googleAuth:  params.GoogleAuth,
		tokens:      params.TokenService,
		profileRepo: params.ProfileRepo,
		sessions:    params.Sessions,
		background:  params.Background,
		now:         time.Now,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignUp creates the identity and returns once it exists.
// A profile read racing the background writes may see missing fields.
func (srv *authService) SignUp(ctx context.Context, input *usecase.SignUpInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Info("Starting sign up", slog.String("email", input.Email))

	identity, err := srv.identity.CreateUser(ctx, input.Email, input.Password)
	if err != nil {
		srv.log(ctx).Warn("Identity creation failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}
	if identity.Email == "" {
		identity.Email = input.Email
	}

	sess := srv.sessions.Create(identity.UID, identity.Email)

	srv.background.Go(ctx, func(ctx context.Context) {
		if err := srv.identity.UpdateDisplayName(ctx, identity.UID, input.FullName); err != nil {
			srv.log(ctx).Warn("Failed to set display name", slog.String("uid", identity.UID), slog.Any("error", err))

			return
		}
		srv.log(ctx).Debug("Display name saved", slog.String("uid", identity.UID))
	})

	profile := &entity.UserProfile{
		ID:          identity.UID,
		Email:       identity.Email,
		FullName:    input.FullName,
		DateCreated: srv.now(),
	}
	srv.background.Go(ctx, func(ctx context.Context) {
		if err := srv.profileRepo.Create(ctx, profile); err != nil {
			srv.log(ctx).Error("Failed to write profile", slog.String("uid", identity.UID), slog.Any("error", err))

			return
		}
		sess.ApplyProfile(profile)
	})

	return srv.openSession(ctx, sess, identity)
}

// SignIn authenticates with email and password.
func (srv *authService) SignIn(ctx context.Context, input *usecase.SignInInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Info("Starting sign in", slog.String("email", input.Email))

	identity, err := srv.identity.SignInWithPassword(ctx, input.Email, input.Password)
	if err != nil {
		srv.log(ctx).Warn("Sign in failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}
	if identity.Email == "" {
		identity.Email = input.Email
	}

	sess := srv.sessions.Create(identity.UID, identity.Email)

	srv.background.Go(ctx, func(ctx context.Context) {
		srv.loadProfile(ctx, sess, identity.UID)
	})

	return srv.openSession(ctx, sess, identity)
}

// SignInWithGoogle exchanges a Google ID token and provisions the profile if it is missing.
func (srv *authService) SignInWithGoogle(ctx context.Context, input *usecase.FederatedSignInInput) (*usecase.AuthOutput, error) {
	oauthUser, err := srv.googleAuth.VerifyIDToken(ctx, input.IDToken)
	if err != nil {
		srv.log(ctx).Warn("Google ID token rejected", slog.Any("error", err))

		return nil, domainerrors.ErrOAuthTokenInvalid.WithDetails(err.Error())
	}

	identity, err := srv.identity.SignInWithIDToken(ctx, srv.googleAuth.GetProvider(), input.IDToken)
	if err != nil {
		srv.log(ctx).Warn("Federated sign in failed", slog.String("email", oauthUser.Email), slog.Any("error", err))

		return nil, err
	}
	if identity.Email == "" {
		identity.Email = oauthUser.Email
	}
	if identity.DisplayName == "" {
		identity.DisplayName = oauthUser.Name
	}

	sess := srv.sessions.Create(identity.UID, identity.Email)

	profile := &entity.UserProfile{
		ID:          identity.UID,
		Email:       identity.Email,
		FullName:    identity.DisplayName,
		DateCreated: srv.now(),
	}
	srv.background.Go(ctx, func(ctx context.Context) {
		srv.provisionProfile(ctx, sess, profile)
	})

	return srv.openSession(ctx, sess, identity)
}

// SignOut resets the session to its defaults and closes it.
func (srv *authService) SignOut(ctx context.Context, sess *session.Session) error {
	srv.log(ctx).Info("Signing out", slog.String("session_id", sess.ID()), slog.String("uid", sess.UserID()))

	sess.Reset()

	return srv.sessions.Close(sess.ID())
}

func (srv *authService) openSession(ctx context.Context, sess *session.Session, identity *entity.Identity) (*usecase.AuthOutput, error) {
	token, expiresAt, err := srv.tokens.GenerateToken(sess.ID(), identity.UID)
	if err != nil {
		_ = srv.sessions.Close(sess.ID())

		return nil, errors.Wrap(err, "failed to generate session token")
	}

	srv.log(ctx).Info("Session opened",
		slog.String("session_id", sess.ID()),
		slog.String("uid", identity.UID),
		slog.String("provider", string(identity.Provider)),
	)

	return &usecase.AuthOutput{
		SessionID:   sess.ID(),
		AccessToken: token,
		ExpiresAt:   expiresAt,
		UserID:      identity.UID,
		Email:       identity.Email,
		IsNewUser:   identity.IsNewUser,
	}, nil
}

func (srv *authService) loadProfile(ctx context.Context, sess *session.Session, uid string) {
	profile, err := srv.profileRepo.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			srv.log(ctx).Info("No profile document for user", slog.String("uid", uid))

			return
		}
		srv.log(ctx).Error("Failed to load profile", slog.String("uid", uid), slog.Any("error", err))

		return
	}

	sess.ApplyProfile(profile)
}

// provisionProfile writes the profile only when it does not exist yet.
// Two first sign-ins racing here both write; the fields are identical so the last write wins.
func (srv *authService) provisionProfile(ctx context.Context, sess *session.Session, profile *entity.UserProfile) {
	exists, err := srv.profileRepo.Exists(ctx, profile.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to check profile", slog.String("uid", profile.ID), slog.Any("error", err))

		return
	}

	if exists {
		srv.loadProfile(ctx, sess, profile.ID)

		return
	}

	if err := srv.profileRepo.Create(ctx, profile); err != nil {
		srv.log(ctx).Error("Failed to create profile", slog.String("uid", profile.ID), slog.Any("error", err))

		return
	}
	sess.ApplyProfile(profile)
}
