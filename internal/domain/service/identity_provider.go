package service

import (
	"context"

	"keepposted/internal/domain/entity"
)

// IdentityProvider is the external account system.
// Errors it returns carry the provider's own message as their user-facing text.
type IdentityProvider interface {
	// CreateUser creates a password identity.
	CreateUser(ctx context.Context, email, password string) (*entity.Identity, error)

	// UpdateDisplayName sets the display name on an identity.
	UpdateDisplayName(ctx context.Context, uid, displayName string) error

	// SignInWithPassword authenticates an email and password.
	SignInWithPassword(ctx context.Context, email, password string) (*entity.Identity, error)

	// SignInWithIDToken exchanges a third-party ID token for a provider credential and signs in.
	SignInWithIDToken(ctx context.Context, provider entity.ProviderType, idToken string) (*entity.Identity, error)
}
