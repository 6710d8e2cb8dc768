package impl

import (
	"io"
	"log/slog"

	"usersvc/config"
	"usersvc/internal/domain/entity"
	domainerrors "usersvc/internal/domain/errors"
	"usersvc/internal/domain/optional"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(requireCurrentPassword bool) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:             12,
			RequireCurrentPassword: requireCurrentPassword,
		},
	}
}

func someCredentials(email, hash string) optional.Optional[*entity.Credentials] {
	return optional.Of(&entity.Credentials{
		ID:           uuid.New(),
		UserID:       uuid.New(),
		Email:        email,
		PasswordHash: hash,
	})
}

func noCredentials() optional.Optional[*entity.Credentials] {
	return optional.Empty[*entity.Credentials]()
}

// requireKind asserts that err is classified as want.
func requireKind(t require.TestingT, want domainerrors.Kind, err error) {
	require.Error(t, err)
	assert.Equal(t, want, domainerrors.KindOf(err), "unexpected error kind for %v", err)
}
