package usecase

import (
	"context"

	"usersvc/internal/domain/entity"
	"usersvc/internal/domain/result"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateUserCommand defines the data required to open a new account.
type CreateUserCommand struct {
	Name         string      `json:"name" validate:"required,max=100"`
	Phone        string      `json:"phone" validate:"required,e164"`
	Role         entity.Role `json:"role" validate:"required,oneof=admin provider"`
	DepartmentID uuid.UUID   `json:"departmentId" validate:"required"`
	Email        string      `json:"email" validate:"required,email,max=255"`
	Password     string      `json:"password" validate:"required,password"`
}

// GetAllUsersQuery pages through users. Zero values select the first page
// with the default size.
type GetAllUsersQuery struct {
	Page    int `query:"page" validate:"gte=0"`
	PerPage int `query:"perPage" validate:"gte=0,lte=100"`
}

// UpdateUserCommand changes the profile fields that are set.
type UpdateUserCommand struct {
	ID    uuid.UUID `json:"-" validate:"required"`
	Name  *string   `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Phone *string   `json:"phone,omitempty" validate:"omitempty,e164"`
}

// --- Output DTOs ---

type CreateUserResponse struct {
	ID uuid.UUID
}

type UpdateUserResponse struct {
	ID uuid.UUID
}

type ToggleActivityResponse struct {
	ID     uuid.UUID
	Active bool
}

// CreateUserUsecase opens an account: a user profile plus its credentials.
type CreateUserUsecase interface {
	Execute(ctx context.Context, cmd CreateUserCommand) result.Result[*CreateUserResponse]
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	GetUserByID(ctx context.Context, id uuid.UUID) result.Result[*entity.User]
	GetAllUsers(ctx context.Context, query GetAllUsersQuery) result.Result[[]*entity.User]
	UpdateUserByID(ctx context.Context, cmd UpdateUserCommand) result.Result[*UpdateUserResponse]
	ToggleActivityUserByID(ctx context.Context, id uuid.UUID) result.Result[*ToggleActivityResponse]
}
