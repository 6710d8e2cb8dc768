// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the profile of a person working in the organisation. Login identity
// lives in Credentials, which references the user by ID.
type User struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Name         string    // The user's display name or real name.
	Phone        string    // E.164 phone number, e.g. +584242374999.
	Role         Role      // Authorisation role carried into access tokens.
	DepartmentID uuid.UUID // The department the user belongs to.
	Active       bool      // Inactive users are kept but flagged by administrators.
	CreatedAt    time.Time // Timestamp of when this user account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this user's data.
}

// Page selects a window of a listing. Number is 1-based.
type Page struct {
	Number  int
	PerPage int
}

// Offset returns the number of rows to skip for the page.
func (p Page) Offset() int {
	if p.Number <= 1 {
		return 0
	}

	return (p.Number - 1) * p.PerPage
}
