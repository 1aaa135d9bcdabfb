package middleware

import (
	"log/slog"
	"strings"

	"keepposted/internal/delivery/api/response"
	deliverycontext "keepposted/internal/delivery/context"
	domainerrors "keepposted/internal/domain/errors"
	"keepposted/internal/domain/service"
	"keepposted/internal/usecase/session"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const bearerPrefix = "Bearer "

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	TokenService service.TokenService
	Sessions     *session.Store
	Logger       *slog.Logger
}

// AuthMiddleware resolves the session named by a bearer token.
type AuthMiddleware struct {
	tokens   service.TokenService
	sessions *session.Store
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		tokens:   params.TokenService,
		sessions: params.Sessions,
		logger:   params.Logger,
	}
}

// Authenticate validates the session token and stores the open session on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString, found := strings.CutPrefix(authHeader, bearerPrefix)
		if !found || tokenString == "" {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokens.ValidateToken(tokenString)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Debug("Rejected session token", slog.Any("error", err))

			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		sess, err := m.sessions.Get(claims.SessionID)
		if err != nil {
			return response.HandleAppError(c, err)
		}
		if sess.UserID() != claims.UserID {
			return response.HandleAppError(c, domainerrors.ErrSessionNotFound)
		}

		deliverycontext.SetSession(c, sess)

		ctx := c.Request().Context()
		if logger := deliverycontext.GetLogger(ctx); logger != nil {
			ctx = deliverycontext.WithLogger(ctx, logger.With(slog.String("user_id", claims.UserID)))
			c.SetRequest(c.Request().WithContext(ctx))
		}

		return next(c)
	}
}

// GetSession returns the session resolved by Authenticate.
func GetSession(c echo.Context) (*session.Session, bool) {
	return deliverycontext.GetSession(c)
}
