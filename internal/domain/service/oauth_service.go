package service

import (
	"context"

	"keepposted/internal/domain/entity"
)

// OAuthUser represents user information from OAuth providers
type OAuthUser struct {
	ID            string              // Provider-specific user ID (e.g., Google's 'sub' claim)
	Email         string              // User's email address
	Name          string              // User's display name
	Provider      entity.ProviderType // The OAuth provider
	EmailVerified bool                // Whether the email is verified by the provider
}

// OAuthAuthService checks third-party ID tokens before they are exchanged for a provider credential.
type OAuthAuthService interface {
	// VerifyIDToken checks issuer, audience and expiry and returns the token's user.
	VerifyIDToken(ctx context.Context, idToken string) (*OAuthUser, error)

	// GetProvider returns the OAuth provider type
	GetProvider() entity.ProviderType
}
