package handler

import (
	"time"

	"usersvc/internal/domain/entity"
	"usersvc/internal/usecase"

	"github.com/google/uuid"
)

// UserResponse is the public view of a user. Credentials never leave the service.
type UserResponse struct {
	ID           uuid.UUID   `json:"id"`
	Name         string      `json:"name"`
	Phone        string      `json:"phone"`
	Role         entity.Role `json:"role"`
	DepartmentID uuid.UUID   `json:"departmentId"`
	Active       bool        `json:"active"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

type LoginResponse struct {
	User        *UserResponse `json:"user"`
	AccessToken string        `json:"accessToken"`
	ExpiresIn   int           `json:"expiresIn"`
}

type CredentialsResponse struct {
	UserID uuid.UUID `json:"userId"`
	Email  string    `json:"email"`
}

type RecoverPasswordResponse struct {
	Email string `json:"email"`
}

type DepartmentResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

type IDResponse struct {
	ID uuid.UUID `json:"id"`
}

type ActivityResponse struct {
	ID     uuid.UUID `json:"id"`
	Active bool      `json:"active"`
}

func toUserResponse(u *entity.User) *UserResponse {
	if u == nil {
		return nil
	}

	return &UserResponse{
		ID:           u.ID,
		Name:         u.Name,
		Phone:        u.Phone,
		Role:         u.Role,
		DepartmentID: u.DepartmentID,
		Active:       u.Active,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func toUserResponses(users []*entity.User) []*UserResponse {
	out := make([]*UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}

	return out
}

func toLoginResponse(r *usecase.LoginResponse) *LoginResponse {
	return &LoginResponse{
		User:        toUserResponse(r.User),
		AccessToken: r.AccessToken,
		ExpiresIn:   r.ExpiresIn,
	}
}

func toDepartmentResponse(d *entity.Department) *DepartmentResponse {
	return &DepartmentResponse{ID: d.ID, Name: d.Name, CreatedAt: d.CreatedAt}
}

func toDepartmentResponses(departments []*entity.Department) []*DepartmentResponse {
	out := make([]*DepartmentResponse, 0, len(departments))
	for _, d := range departments {
		out = append(out, toDepartmentResponse(d))
	}

	return out
}
