package auth

import (
	"time"

	"usersvc/config"
	"usersvc/internal/domain/entity"
	domainerrors "usersvc/internal/domain/errors"
	"usersvc/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// jwtService is a concrete implementation of the TokenAuthenticationService interface using HS256 JWTs.
type jwtService struct {
	accessSecret []byte        // Secret key for signing access tokens.
	accessTTL    time.Duration // Time-to-live for access tokens.
	issuer       string
	now          func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenAuthenticationService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	ttl := time.Hour
	issuer := ""
	if cfg.Auth != nil {
		if cfg.Auth.AccessTokenTTL > 0 {
			ttl = cfg.Auth.AccessTokenTTL
		}
		issuer = cfg.Auth.Issuer
	}

	return &jwtService{
		accessSecret: []byte(cfg.SecretKey.Access),
		accessTTL:    ttl,
		issuer:       issuer,
		now:          time.Now,
	}, nil
}

// Authenticate signs an access token for subject.
func (s *jwtService) Authenticate(subject service.TokenSubject) (*entity.TokenResponse, error) {
	issuedAt := s.now()
	claims := service.Claims{
		UserID: subject.UserID,
		Email:  subject.Email,
		Role:   subject.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   subject.UserID.String(),
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.accessTTL)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.accessSecret)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign access token")
	}

	return &entity.TokenResponse{
		AccessToken: signed,
		ExpiresIn:   int(s.accessTTL.Seconds()),
	}, nil
}

// ValidateToken checks signature, algorithm and expiry. Every rejection is
// reported as ErrTokenInvalid with the parser error as cause.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.accessSecret, nil
	}, opts...)
	if err != nil {
		return nil, domainerrors.ErrTokenInvalid.WithCause(err)
	}
	if !token.Valid || claims.UserID == uuid.Nil {
		return nil, domainerrors.ErrTokenInvalid
	}

	return claims, nil
}
