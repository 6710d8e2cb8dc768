// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	deliverycontext "usersvc/internal/delivery/context"
	"usersvc/internal/delivery/http/response"
	domainerrors "usersvc/internal/domain/errors"
	"usersvc/internal/domain/result"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// respond renders a success with status and the mapped value, or returns the
// failure for the error handler.
func respond[T any](c echo.Context, status int, r result.Result[T], view func(T) any) error {
	return result.Fold(r,
		func(v T) error { return response.Success(c, status, view(v)) },
		func(err error) error { return err },
	)
}

// bind decodes the request into dst. Malformed input is a validation failure.
func bind(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request").WithCause(err)
	}

	return nil
}

func idParam(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("id must be a UUID").WithCause(err)
	}

	return id, nil
}

// HealthCheck provides a simple health check endpoint.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// selfOrAdmin allows the owner of id and administrators.
func selfOrAdmin(c echo.Context, id uuid.UUID) error {
	principal, ok := deliverycontext.GetPrincipal(c.Request().Context())
	if !ok {
		return domainerrors.ErrTokenInvalid
	}
	if !principal.CanActOn(id) {
		return domainerrors.ErrForbidden.WithDetails("only the account owner or an administrator may do this")
	}

	return nil
}
