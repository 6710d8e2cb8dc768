package middleware

import (
	"log/slog"
	"net/http"

	deliverycontext "usersvc/internal/delivery/context"
	"usersvc/internal/delivery/http/response"
	domainerrors "usersvc/internal/domain/errors"
	"usersvc/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware turns handler errors into the error envelope.
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Kind() == domainerrors.KindInfrastructure {
			m.logUnexpected(c, err)
		}
		_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}

		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, "")

		return
	}

	m.logUnexpected(c, err)

	_ = response.Error(c, http.StatusInternalServerError,
		domainerrors.ErrInfrastructure.ErrorCode(), "Internal server error, please try again later", "")
}

func (m *ErrorMiddleware) logUnexpected(c echo.Context, err error) {
	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)
	logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)
}
