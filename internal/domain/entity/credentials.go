package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Credentials is the login identity of a user: an email and a password hash.
// Each email maps to at most one record, and each record references exactly
// one existing User.
type Credentials struct {
	ID           uuid.UUID // The unique ID for this credentials record itself.
	UserID       uuid.UUID // Links these credentials to the User they belong to.
	Email        string    // Unique login email, stored lower-cased.
	PasswordHash string    // Opaque hash produced by the crypto service; never the plaintext.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NormalizeEmail returns the canonical form under which emails are stored and looked up.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
