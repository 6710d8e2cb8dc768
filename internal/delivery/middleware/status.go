package middleware

import (
	"net/http"

	domainerrors "usersvc/internal/domain/errors"
	"usersvc/internal/errors"

	"github.com/labstack/echo/v4"
)

// StatusOf returns the status code the error handler answers err with.
func StatusOf(err error) int {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode()
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}

	return http.StatusInternalServerError
}
