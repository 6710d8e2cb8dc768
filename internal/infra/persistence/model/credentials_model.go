package model

import (
	"time"

	"github.com/google/uuid"
)

// CredentialsModel mirrors the 'credentials' table. Email is stored lower-cased
// so the unique index doubles as a case-insensitive one.
type CredentialsModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (CredentialsModel) TableName() string {
	return "credentials"
}

// All lists every model in dependency order, for schema migration.
func All() []any {
	return []any{
		&DepartmentModel{},
		&UserModel{},
		&CredentialsModel{},
	}
}
