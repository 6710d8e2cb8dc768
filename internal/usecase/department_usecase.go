package usecase

import (
	"context"

	"usersvc/internal/domain/entity"
	"usersvc/internal/domain/result"

	"github.com/google/uuid"
)

type CreateDepartmentCommand struct {
	Name string `json:"name" validate:"required,min=3,max=100"`
}

type CreateDepartmentResponse struct {
	ID uuid.UUID
}

// DepartmentUsecase defines the department operations exposed to the delivery layer.
type DepartmentUsecase interface {
	CreateDepartment(ctx context.Context, cmd CreateDepartmentCommand) result.Result[*CreateDepartmentResponse]
	GetAllDepartments(ctx context.Context) result.Result[[]*entity.Department]
	GetDepartmentByID(ctx context.Context, id uuid.UUID) result.Result[*entity.Department]
}
