package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"usersvc/config"
	deliverycontext "usersvc/internal/delivery/context"
	domainerrors "usersvc/internal/domain/errors"
	"usersvc/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}

	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), buf
}

func TestRequestIDMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		wantSame bool
	}{
		{name: "client id is kept", header: "req-123", wantSame: true},
		{name: "missing id is generated", header: "", wantSame: false},
		{name: "oversized id is replaced", header: strings.Repeat("x", maxRequestIDLength+1), wantSame: false},
		{name: "control characters are replaced", header: "bad\tid", wantSame: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, _ := newBufferLogger()
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var seenCtxID string
			h := NewRequestIDMiddleware(logger).Process(func(c echo.Context) error {
				seenCtxID = deliverycontext.GetRequestIDFromContext(c.Request().Context())

				return nil
			})
			require.NoError(t, h(c))

			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.NotEmpty(t, got)
			assert.Equal(t, got, seenCtxID)
			assert.Equal(t, got, deliverycontext.GetRequestID(c))
			if tt.wantSame {
				assert.Equal(t, tt.header, got)
			} else {
				assert.NotEqual(t, tt.header, got)
			}
		})
	}
}

func TestLoggerMiddleware_LogsStatusOfReturnedError(t *testing.T) {
	logger, buf := newBufferLogger()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/users/1", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	h := NewLoggerMiddleware(logger, &config.Config{}).Handle(func(echo.Context) error {
		return domainerrors.ErrUserNotFound
	})

	err := h(c)

	require.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	assert.Contains(t, buf.String(), `"status":404`)
	assert.Contains(t, buf.String(), `"level":"WARN"`)
}

func TestLoggerMiddleware_SkipsHealthyProbesOutsideDebug(t *testing.T) {
	for _, debug := range []bool{false, true} {
		logger, buf := newBufferLogger()
		cfg := &config.Config{}
		cfg.Env.Debug = debug
		e := echo.New()
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, healthPath, nil), rec)

		h := NewLoggerMiddleware(logger, cfg).Handle(func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})
		require.NoError(t, h(c))

		assert.Equal(t, debug, buf.Len() > 0, "debug=%v", debug)
	}
}

func TestStatusOf(t *testing.T) {
	assert.Equal(t, http.StatusConflict, StatusOf(domainerrors.ErrEmailAlreadyInUse))
	assert.Equal(t, http.StatusMethodNotAllowed, StatusOf(echo.ErrMethodNotAllowed))
	assert.Equal(t, http.StatusInternalServerError, StatusOf(errors.New("boom")))
}
