package postgres

import (
	"context"

	"usersvc/internal/domain/entity"
	domainerrors "usersvc/internal/domain/errors"
	"usersvc/internal/domain/optional"
	"usersvc/internal/domain/repository"
	"usersvc/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type departmentRepository struct {
	db *gorm.DB
}

// NewDepartmentRepository is the constructor for departmentRepository.
func NewDepartmentRepository(db *gorm.DB) repository.DepartmentRepository {
	return &departmentRepository{db: db}
}

func (repo *departmentRepository) SaveDepartment(ctx context.Context, department *entity.Department) error {
	depM := &model.DepartmentModel{ID: department.ID, Name: department.Name}
	if depM.ID == uuid.Nil {
		depM.ID = uuid.New()
	}

	if err := repo.db.WithContext(ctx).Create(depM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDepartmentAlreadyExists.WithCause(err)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create department")
	}

	department.ID = depM.ID
	department.CreatedAt = depM.CreatedAt

	return nil
}

func (repo *departmentRepository) GetDepartmentByID(ctx context.Context, id uuid.UUID) (optional.Optional[*entity.Department], error) {
	return repo.first(ctx, "id = ?", id)
}

func (repo *departmentRepository) GetDepartmentByName(ctx context.Context, name string) (optional.Optional[*entity.Department], error) {
	return repo.first(ctx, "name = ?", name)
}

func (repo *departmentRepository) first(ctx context.Context, query string, arg any) (optional.Optional[*entity.Department], error) {
	var depM model.DepartmentModel
	err := repo.db.WithContext(ctx).Where(query, arg).Take(&depM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return optional.Empty[*entity.Department](), nil
		}

		return optional.Empty[*entity.Department](), domainerrors.NewDatabaseExecuteError(err, "failed to load department")
	}

	return optional.Of(toDepartmentDomain(&depM)), nil
}

func (repo *departmentRepository) GetAllDepartments(ctx context.Context) ([]*entity.Department, error) {
	var depMs []model.DepartmentModel
	if err := repo.db.WithContext(ctx).Order("name ASC").Find(&depMs).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list departments")
	}

	departments := make([]*entity.Department, 0, len(depMs))
	for i := range depMs {
		departments = append(departments, toDepartmentDomain(&depMs[i]))
	}

	return departments, nil
}

func toDepartmentDomain(data *model.DepartmentModel) *entity.Department {
	return &entity.Department{
		ID:        data.ID,
		Name:      data.Name,
		CreatedAt: data.CreatedAt,
	}
}
