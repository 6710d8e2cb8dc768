package context

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"usersvc/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestRequestID(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	generated := GetRequestID(c)
	assert.NotEmpty(t, generated)

	SetRequestID(c, "req-1")
	assert.Equal(t, "req-1", GetRequestID(c))

	ctx := WithRequestID(context.Background(), "req-2")
	assert.Equal(t, "req-2", GetRequestIDFromContext(ctx))
	assert.Empty(t, GetRequestIDFromContext(context.Background()))
}

func TestGetLoggerOrDefault(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))
	scoped := fallback.With(slog.String("request_id", "r"))

	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Same(t, scoped, GetLoggerOrDefault(WithLogger(context.Background(), scoped), fallback))
}

func TestPrincipal(t *testing.T) {
	self := uuid.New()
	other := uuid.New()

	_, ok := GetPrincipal(context.Background())
	assert.False(t, ok)

	provider := &Principal{UserID: self, Role: entity.RoleProvider}
	got, ok := GetPrincipal(WithPrincipal(context.Background(), provider))
	assert.True(t, ok)
	assert.Equal(t, provider, got)

	assert.True(t, provider.CanActOn(self))
	assert.False(t, provider.CanActOn(other))
	assert.False(t, provider.IsAdmin())

	admin := &Principal{UserID: uuid.New(), Role: entity.RoleAdmin}
	assert.True(t, admin.CanActOn(other))

	var nobody *Principal
	assert.False(t, nobody.CanActOn(self))
}
