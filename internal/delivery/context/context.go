// Package context carries request-scoped values between the transport and
// the service layer: the request ID, a logger bound to it, and the
// authenticated principal.
package context

import (
	"context"
	"log/slog"

	"usersvc/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	KeyRequestID ContextKey = "request_id"
	KeyLogger    ContextKey = "logger"
	KeyPrincipal ContextKey = "principal"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"
)

// Principal is the caller identified by a validated access token.
type Principal struct {
	UserID uuid.UUID
	Email  string
	Role   entity.Role
}

// IsAdmin reports whether the principal holds the admin role.
func (p *Principal) IsAdmin() bool {
	return p != nil && p.Role == entity.RoleAdmin
}

// CanActOn reports whether the principal may modify resources owned by userID.
func (p *Principal) CanActOn(userID uuid.UUID) bool {
	return p != nil && (p.UserID == userID || p.IsAdmin())
}

// GetRequestID returns the request ID stored on c, or a fresh one when the
// request never passed through the request ID middleware.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(KeyRequestID)).(string); ok && id != "" {
		return id
	}

	return uuid.New().String()
}

func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestIDFromContext returns "" when ctx carries no request ID.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(KeyRequestID).(string)

	return id
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// GetLoggerOrDefault returns the request-scoped logger, or fallback when ctx has none.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

func WithPrincipal(ctx context.Context, principal *Principal) context.Context {
	return context.WithValue(ctx, KeyPrincipal, principal)
}

// GetPrincipal returns the authenticated caller, or false for anonymous requests.
func GetPrincipal(ctx context.Context) (*Principal, bool) {
	principal, ok := ctx.Value(KeyPrincipal).(*Principal)

	return principal, ok && principal != nil
}
