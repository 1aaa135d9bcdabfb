package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims carried by session tokens.
type Claims struct {
	SessionID string `json:"sid"`
	UserID    string `json:"uid"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating session JWTs.
type TokenService interface {
	// GenerateToken creates a session token bound to a session and user.
	GenerateToken(sessionID, userID string) (token string, expiresAt time.Time, err error)

	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*Claims, error)

	// GetTokenDuration returns the configured session token lifetime.
	GetTokenDuration() time.Duration
}
