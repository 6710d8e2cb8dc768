// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"usersvc/internal/domain/entity"
	"usersvc/internal/domain/optional"

	"github.com/google/uuid"
)

// CredentialsRepository persists login identities. Lookups report a missing
// record as an empty Optional and reserve the error for storage faults.
type CredentialsRepository interface {
	// GetCredentialsByEmail retrieves credentials by their (case-insensitive) email.
	GetCredentialsByEmail(ctx context.Context, email string) (optional.Optional[*entity.Credentials], error)

	// GetCredentialsByUserID retrieves the credentials that belong to a user.
	GetCredentialsByUserID(ctx context.Context, userID uuid.UUID) (optional.Optional[*entity.Credentials], error)

	// UpdateCredentials replaces the email and password hash of a user's credentials
	// in a single atomic write.
	UpdateCredentials(ctx context.Context, userID uuid.UUID, email, passwordHash string) error

	// AddCredentials persists new credentials and returns the owning user's ID.
	AddCredentials(ctx context.Context, credentials *entity.Credentials) (uuid.UUID, error)
}
