package entity

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleAdmin manages users and departments.
	RoleAdmin Role = "admin"
	// RoleProvider is a regular service provider account.
	RoleProvider Role = "provider"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleProvider:
		return true
	default:
		return false
	}
}
