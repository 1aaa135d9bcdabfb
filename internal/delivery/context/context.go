// Package context carries request-scoped values between middleware and handlers.
package context

import (
	"context"
	"log/slog"

	"keepposted/internal/usecase/session"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey namespaces the values stored by this package.
type ContextKey string

const (
	KeyRequestID ContextKey = "request_id"
	KeyLogger    ContextKey = "logger"
	// KeySession holds the session resolved by the auth middleware.
	KeySession ContextKey = "session"

	HeaderXRequestID = "X-Request-Id"
)

// SetRequestID records the request id on the echo context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestID returns the recorded request id. Responses written before the
// request id middleware ran get a fresh one.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(KeyRequestID)).(string); ok && id != "" {
		return id
	}

	return uuid.NewString()
}

// WithRequestID stores the request id for code that only sees a context.Context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// GetRequestIDFromContext returns "" outside a request.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(KeyRequestID).(string)

	return id
}

// WithLogger stores a request-scoped logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// GetLogger returns nil when no request-scoped logger was stored.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(KeyLogger).(*slog.Logger)

	return logger
}

// GetLoggerOrDefault prefers the request-scoped logger over fallback.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

// SetSession stores the authenticated session.
func SetSession(c echo.Context, sess *session.Session) {
	c.Set(string(KeySession), sess)
}

// GetSession returns the authenticated session, if any.
func GetSession(c echo.Context) (*session.Session, bool) {
	sess, ok := c.Get(string(KeySession)).(*session.Session)

	return sess, ok && sess != nil
}
