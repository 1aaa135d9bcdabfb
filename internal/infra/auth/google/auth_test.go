package google

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"keepposted/config"
	"keepposted/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthService() *AuthServiceImpl {
	cfg := &config.Config{}
	cfg.ApplyDefaults()
	cfg.GoogleOAuth.ClientID = "test_client_id"

	return NewAuthService(cfg, slog.Default()).(*AuthServiceImpl)
}

func signTestToken(t *testing.T, claims IDTokenClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("not-google"))
	require.NoError(t, err)

	return token
}

func validClaims() IDTokenClaims {
	return IDTokenClaims{
		Email:         "test@example.com",
		EmailVerified: true,
		Name:          "Test User",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "https://accounts.google.com",
			Subject:   "test_user_123",
			Audience:  jwt.ClaimStrings{"test_client_id"},
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}

func TestAuthService_VerifyIDToken(t *testing.T) {
	svc := newTestAuthService()

	user, err := svc.VerifyIDToken(context.Background(), signTestToken(t, validClaims()))
	require.NoError(t, err)

	assert.Equal(t, "test_user_123", user.ID)
	assert.Equal(t, "test@example.com", user.Email)
	assert.Equal(t, "Test User", user.Name)
	assert.Equal(t, entity.ProviderTypeGoogle, user.Provider)
	assert.True(t, user.EmailVerified)
}

func TestAuthService_VerifyIDToken_RejectsClaims(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *IDTokenClaims)
		wantErr string
	}{
		{name: "issuer", mutate: func(c *IDTokenClaims) { c.Issuer = "https://evil.example.com" }, wantErr: "invalid issuer"},
		{name: "audience", mutate: func(c *IDTokenClaims) { c.Audience = jwt.ClaimStrings{"other_client"} }, wantErr: "invalid audience"},
		{name: "expired", mutate: func(c *IDTokenClaims) { c.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute)) }, wantErr: "token expired"},
		{name: "unverified email", mutate: func(c *IDTokenClaims) { c.EmailVerified = false }, wantErr: "email not verified"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestAuthService()
			claims := validClaims()
			tt.mutate(&claims)

			user, err := svc.VerifyIDToken(context.Background(), signTestToken(t, claims))
			assert.Nil(t, user)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "token verification failed")
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestAuthService_ParseIDToken(t *testing.T) {
	svc := newTestAuthService()

	claims, err := svc.parseIDToken(signTestToken(t, validClaims()))
	require.NoError(t, err)

	assert.Equal(t, "test_user_123", claims.Subject)
	assert.Equal(t, "https://accounts.google.com", claims.Issuer)
	assert.Equal(t, jwt.ClaimStrings{"test_client_id"}, claims.Audience)
}

func TestAuthService_InvalidJWT(t *testing.T) {
	svc := newTestAuthService()

	user, err := svc.VerifyIDToken(context.Background(), "invalid_token_format")
	assert.Nil(t, user)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid JWT format")
}

func TestAuthService_GetProvider(t *testing.T) {
	assert.Equal(t, entity.ProviderTypeGoogle, newTestAuthService().GetProvider())
}
