package repository

import (
	"context"

	"usersvc/internal/domain/entity"
	"usersvc/internal/domain/optional"

	"github.com/google/uuid"
)

// DepartmentRepository defines persistence for departments.
type DepartmentRepository interface {
	SaveDepartment(ctx context.Context, department *entity.Department) error
	GetDepartmentByID(ctx context.Context, id uuid.UUID) (optional.Optional[*entity.Department], error)
	GetDepartmentByName(ctx context.Context, name string) (optional.Optional[*entity.Department], error)
	GetAllDepartments(ctx context.Context) ([]*entity.Department, error)
}
