package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. IDs are assigned by the application.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(100);not null"`
	Phone        string    `gorm:"type:varchar(20);not null"`
	Role         string    `gorm:"type:varchar(20);not null"`
	DepartmentID uuid.UUID `gorm:"type:uuid;not null;index"`
	Active       bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Department  *DepartmentModel  `gorm:"foreignKey:DepartmentID;constraint:OnDelete:RESTRICT"`
	Credentials *CredentialsModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// DepartmentModel mirrors the 'departments' table.
type DepartmentModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(100);not null;uniqueIndex"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (DepartmentModel) TableName() string {
	return "departments"
}
