package auth

import (
	"testing"
	"time"

	"usersvc/config"
	"usersvc/internal/domain/entity"
	domainerrors "usersvc/internal/domain/errors"
	"usersvc/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAccessSecret = "test_access_secret_key_very_long_for_testing"

func newTestJWTService(t *testing.T, ttl time.Duration, issuer string) *jwtService {
	t.Helper()

	cfg := &config.Config{Auth: &config.AuthConfig{AccessTokenTTL: ttl, Issuer: issuer}}
	cfg.SecretKey.Access = testAccessSecret

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestJWTService_AuthenticateAndValidate(t *testing.T) {
	svc := newTestJWTService(t, 15*time.Minute, "usersvc")
	subject := service.TokenSubject{UserID: uuid.New(), Email: "test@gmail.com", Role: entity.RoleAdmin}

	token, err := svc.Authenticate(subject)
	require.NoError(t, err)
	assert.NotEmpty(t, token.AccessToken)
	assert.Equal(t, 900, token.ExpiresIn)

	claims, err := svc.ValidateToken(token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, subject.UserID, claims.UserID)
	assert.Equal(t, subject.Email, claims.Email)
	assert.Equal(t, entity.RoleAdmin, claims.Role)
	assert.Equal(t, subject.UserID.String(), claims.Subject)
	assert.Equal(t, "usersvc", claims.Issuer)
}

func TestJWTService_TokenCarriesNoSecrets(t *testing.T) {
	svc := newTestJWTService(t, time.Minute, "")

	token, err := svc.Authenticate(service.TokenSubject{UserID: uuid.New(), Email: "test@gmail.com", Role: entity.RoleProvider})
	require.NoError(t, err)

	claims := jwt.MapClaims{}
	_, _, err = jwt.NewParser().ParseUnverified(token.AccessToken, claims)
	require.NoError(t, err)
	assert.NotContains(t, claims, "password")
	assert.NotContains(t, claims, "passwordHash")
}

func TestJWTService_InvalidTokens(t *testing.T) {
	svc := newTestJWTService(t, time.Minute, "usersvc")
	subject := service.TokenSubject{UserID: uuid.New(), Email: "test@gmail.com", Role: entity.RoleAdmin}

	valid, err := svc.Authenticate(subject)
	require.NoError(t, err)

	other := newTestJWTService(t, time.Minute, "usersvc")
	other.accessSecret = []byte("another_secret_key_also_long_enough")
	forged, err := other.Authenticate(subject)
	require.NoError(t, err)

	foreignIssuer := newTestJWTService(t, time.Minute, "someone-else")
	foreign, err := foreignIssuer.Authenticate(subject)
	require.NoError(t, err)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"uid": subject.UserID.String()}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "clearly-not-a-jwt-token-format"},
		{name: "empty", token: ""},
		{name: "wrong secret", token: forged.AccessToken},
		{name: "wrong issuer", token: foreign.AccessToken},
		{name: "alg none", token: unsigned},
		{name: "tampered", token: valid.AccessToken + "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.ValidateToken(tt.token)

			assert.Nil(t, claims)
			assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
			assert.Equal(t, domainerrors.KindUnauthorized, domainerrors.KindOf(err))
		})
	}
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc := newTestJWTService(t, time.Minute, "")
	issued := time.Now()
	svc.now = func() time.Time { return issued }

	token, err := svc.Authenticate(service.TokenSubject{UserID: uuid.New(), Role: entity.RoleProvider})
	require.NoError(t, err)

	svc.now = func() time.Time { return issued.Add(2 * time.Minute) }

	_, err = svc.ValidateToken(token.AccessToken)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})

	assert.Error(t, err)
}
