// Package identity implements the identity provider on Firebase Authentication.
package identity

import (
	"context"
	"log/slog"
	"net/url"
	"time"

	"keepposted/config"
	"keepposted/internal/domain/entity"
	domainerrors "keepposted/internal/domain/errors"
	"keepposted/internal/domain/lifecycle"
	"keepposted/internal/domain/service"
	"keepposted/internal/infra/metrics"

	"firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/identitytoolkit/v3"
	"google.golang.org/api/option"
)

// assertionRequestURI is required by VerifyAssertion but unused for ID token exchanges.
const assertionRequestURI = "http://localhost"

// firebaseIdentity creates users with the admin SDK and signs them in through Identity Toolkit.
type firebaseIdentity struct {
	admin   *auth.Client
	relying *identitytoolkit.RelyingpartyService
	metrics *metrics.ProviderMetrics
	logger  *slog.Logger
}

// Params holds dependencies for the identity provider, injected by Fx.
type Params struct {
	fx.In

	Admin   *auth.Client
	Config  *config.Config
	Metrics *metrics.ProviderMetrics
	Logger  *slog.Logger
}

// NewFirebaseIdentity is the constructor for firebaseIdentity.
func NewFirebaseIdentity(params Params) (service.IdentityProvider, error) {
	apiKey := params.Config.Firebase.WebAPIKey
	if apiKey == "" {
		return nil, errors.New("firebase web API key must be provided")
	}

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	toolkit, err := identitytoolkit.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create identity toolkit service")
	}

	return &firebaseIdentity{
		admin:   params.Admin,
		relying: toolkit.Relyingparty,
		metrics: params.Metrics,
		logger:  params.Logger,
	}, nil
}

// CreateUser registers an email/password identity.
func (p *firebaseIdentity) CreateUser(ctx context.Context, email, password string) (_ *entity.Identity, err error) {
	start := time.Now()
	defer func() { p.metrics.Observe("identity.create_user", start, err) }()

	params := (&auth.UserToCreate{}).
		Email(email).
		Password(password)

	record, err := p.admin.CreateUser(ctx, params)
	if err != nil {
		return nil, mapAdminError(err)
	}

	return &entity.Identity{
		UID:       record.UID,
		Email:     record.Email,
		Provider:  entity.ProviderTypeEmail,
		IsNewUser: true,
	}, nil
}

// UpdateDisplayName sets the identity's display name.
func (p *firebaseIdentity) UpdateDisplayName(ctx context.Context, uid, displayName string) (err error) {
	start := time.Now()
	defer func() { p.metrics.Observe("identity.update_display_name", start, err) }()

	if _, err = p.admin.UpdateUser(ctx, uid, (&auth.UserToUpdate{}).DisplayName(displayName)); err != nil {
		return mapAdminError(err)
	}

	return nil
}

// SignInWithPassword checks the credentials and returns the signed-in identity.
func (p *firebaseIdentity) SignInWithPassword(ctx context.Context, email, password string) (_ *entity.Identity, err error) {
	start := time.Now()
	defer func() { p.metrics.Observe("identity.verify_password", start, err) }()

	resp, err := p.relying.VerifyPassword(&identitytoolkit.IdentitytoolkitRelyingpartyVerifyPasswordRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	}).Context(ctx).Do()
	if err != nil {
		return nil, mapToolkitError(err)
	}

	return &entity.Identity{
		UID:         resp.LocalId,
		Email:       resp.Email,
		DisplayName: resp.DisplayName,
		Provider:    entity.ProviderTypeEmail,
		IDToken:     resp.IdToken,
	}, nil
}

// SignInWithIDToken exchanges a federated ID token for a Firebase identity, creating it on first use.
func (p *firebaseIdentity) SignInWithIDToken(ctx context.Context, provider entity.ProviderType, idToken string) (_ *entity.Identity, err error) {
	start := time.Now()
	defer func() { p.metrics.Observe("identity.verify_assertion", start, err) }()

	resp, err := p.relying.VerifyAssertion(&identitytoolkit.IdentitytoolkitRelyingpartyVerifyAssertionRequest{
		PostBody:          assertionPostBody(provider, idToken),
		RequestUri:        assertionRequestURI,
		ReturnSecureToken: true,
	}).Context(ctx).Do()
	if err != nil {
		return nil, mapToolkitError(err)
	}
	if resp.ErrorMessage != "" {
		return nil, domainerrors.ErrIdentityFailed.WithMessage(resp.ErrorMessage)
	}

	p.logger.Debug("Federated sign in completed",
		slog.String("uid", resp.LocalId),
		slog.Bool("new_user", resp.IsNewUser),
	)

	return &entity.Identity{
		UID:         resp.LocalId,
		Email:       resp.Email,
		DisplayName: resp.DisplayName,
		Provider:    provider,
		IDToken:     resp.IdToken,
		IsNewUser:   resp.IsNewUser,
	}, nil
}

func assertionPostBody(provider entity.ProviderType, idToken string) string {
	values := url.Values{}
	values.Set("id_token", idToken)
	values.Set("providerId", string(provider))

	return values.Encode()
}

// Module provides the identity provider.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewFirebaseIdentity),
)
