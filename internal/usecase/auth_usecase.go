// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"usersvc/internal/domain/entity"
	"usersvc/internal/domain/result"

	"github.com/google/uuid"
)

// --- Commands ---

// LoginCommand carries the credentials submitted by a caller.
type LoginCommand struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateCredentialsCommand replaces the email and password of a user.
// CurrentPassword is required while the current-password policy is enabled.
type UpdateCredentialsCommand struct {
	UserID          uuid.UUID `json:"-" validate:"required"`
	Email           string    `json:"email" validate:"required,email,max=255"`
	Password        string    `json:"password" validate:"required,password"`
	CurrentPassword string    `json:"currentPassword,omitempty"`
}

// RecoverPasswordCommand asks for a new password to be mailed to the account's email.
type RecoverPasswordCommand struct {
	Email string `json:"email"`
}

// --- Responses ---

// LoginResponse is returned after a successful login.
type LoginResponse struct {
	User        *entity.User
	AccessToken string
	ExpiresIn   int
}

type UpdateCredentialsResponse struct {
	UserID uuid.UUID
	Email  string
}

type RecoverPasswordResponse struct {
	Email string
}

// --- Command handlers ---

// LoginUsecase authenticates a caller and issues an access token.
type LoginUsecase interface {
	Execute(ctx context.Context, cmd LoginCommand) result.Result[*LoginResponse]
}

// UpdateCredentialsUsecase changes the login email and password of a user.
type UpdateCredentialsUsecase interface {
	Execute(ctx context.Context, cmd UpdateCredentialsCommand) result.Result[*UpdateCredentialsResponse]
}

// RecoverPasswordUsecase overwrites a forgotten password with a temporary one.
type RecoverPasswordUsecase interface {
	Execute(ctx context.Context, cmd RecoverPasswordCommand) result.Result[*RecoverPasswordResponse]
}
