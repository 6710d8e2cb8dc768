package middleware

import (
	"strings"

	deliverycontext "usersvc/internal/delivery/context"
	"usersvc/internal/domain/entity"
	domainerrors "usersvc/internal/domain/errors"
	"usersvc/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenAuthenticationService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenAuthenticationService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer access token and stores the caller as
// the request principal.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrTokenInvalid.WithDetails("authorization header is missing")
		}

		tokenString, found := strings.CutPrefix(authHeader, bearerPrefix)
		if !found || strings.TrimSpace(tokenString) == "" {
			return domainerrors.ErrTokenInvalid.WithDetails("authorization header must be a bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return err
		}

		principal := &deliverycontext.Principal{
			UserID: claims.UserID,
			Email:  claims.Email,
			Role:   claims.Role,
		}
		c.Set(string(deliverycontext.KeyPrincipal), principal)
		c.SetRequest(c.Request().WithContext(
			deliverycontext.WithPrincipal(c.Request().Context(), principal),
		))

		return next(c)
	}
}

// RequireRole rejects callers without role. It must run after Authenticate.
func (m *AuthMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, ok := deliverycontext.GetPrincipal(c.Request().Context())
			if !ok {
				return domainerrors.ErrTokenInvalid
			}
			if principal.Role != role {
				return domainerrors.ErrForbidden.WithDetails("requires the " + role.String() + " role")
			}

			return next(c)
		}
	}
}
