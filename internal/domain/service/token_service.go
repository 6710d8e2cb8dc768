package service

import (
	"usersvc/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenSubject identifies who an access token is issued to. It never carries
// secret material.
type TokenSubject struct {
	UserID uuid.UUID
	Email  string
	Role   entity.Role
}

// Claims defines the custom claims for the JWT tokens.
type Claims struct {
	UserID uuid.UUID   `json:"uid"`
	Email  string      `json:"email"`
	Role   entity.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenAuthenticationService issues and validates short-lived access tokens.
type TokenAuthenticationService interface {
	// Authenticate issues an access token for subject.
	Authenticate(subject TokenSubject) (*entity.TokenResponse, error)

	// ValidateToken checks the validity of a token string and returns its claims.
	ValidateToken(tokenString string) (*Claims, error)
}
