package repository

import (
	"context"

	"usersvc/internal/domain/entity"
	"usersvc/internal/domain/optional"

	"github.com/google/uuid"
)

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// GetUserByID retrieves a single user by their unique ID.
	GetUserByID(ctx context.Context, id uuid.UUID) (optional.Optional[*entity.User], error)

	// SaveUser persists a new user entity to the storage.
	SaveUser(ctx context.Context, user *entity.User) error

	// GetAllUsers lists users ordered by creation time.
	GetAllUsers(ctx context.Context, page entity.Page) ([]*entity.User, error)

	// UpdateUserByID applies the non-nil fields. It reports whether the user existed.
	UpdateUserByID(ctx context.Context, id uuid.UUID, name, phone *string) (bool, error)

	// ToggleActivityUserByID flips the active flag and returns the updated user.
	ToggleActivityUserByID(ctx context.Context, id uuid.UUID) (optional.Optional[*entity.User], error)
}
