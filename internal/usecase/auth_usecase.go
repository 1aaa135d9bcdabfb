// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"keepposted/internal/usecase/session"
)

// SignUpInput is the input for password sign-up.
type SignUpInput struct {
	FullName string `json:"full_name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// SignInInput is the input for password sign-in.
type SignInInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// FederatedSignInInput carries a third-party ID token.
type FederatedSignInInput struct {
	IDToken string `json:"id_token" validate:"required"`
}

// AuthOutput is returned by every successful sign-in path.
type AuthOutput struct {
	SessionID   string    `json:"session_id"`
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
	UserID      string    `json:"user_id"`
	Email       string    `json:"email"`
	IsNewUser   bool      `json:"is_new_user"`
}

// AuthUsecase wraps the identity provider and opens sessions.
type AuthUsecase interface {
	// SignUp creates an identity and reports success as soon as it exists.
	// The display name and profile document are written in the background.
	SignUp(ctx context.Context, input *SignUpInput) (*AuthOutput, error)

	// SignIn authenticates and populates the session from the profile in the background.
	SignIn(ctx context.Context, input *SignInInput) (*AuthOutput, error)

	// SignInWithGoogle exchanges a Google ID token and provisions the profile if it is missing.
	SignInWithGoogle(ctx context.Context, input *FederatedSignInInput) (*AuthOutput, error)

	// SignOut resets and closes the session.
	SignOut(ctx context.Context, sess *session.Session) error
}
