// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
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
	"gorm.io/gorm/clause"
)

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (repo *userRepository) GetUserByID(ctx context.Context, id uuid.UUID) (optional.Optional[*entity.User], error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).Where("id = ?", id).Take(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return optional.Empty[*entity.User](), nil
		}

		return optional.Empty[*entity.User](), domainerrors.NewDatabaseExecuteError(err, "failed to find user by id")
	}

	return optional.Of(toUserDomain(&userM)), nil
}

// SaveUser inserts a new user row.
func (repo *userRepository) SaveUser(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)
	if userM.ID == uuid.Nil {
		userM.ID = uuid.New()
	}

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrDepartmentNotFound.WithCause(err)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// GetAllUsers returns one page ordered by creation time, oldest first.
func (repo *userRepository) GetAllUsers(ctx context.Context, page entity.Page) ([]*entity.User, error) {
	var userMs []model.UserModel
	err := repo.db.WithContext(ctx).
		Order("created_at ASC").
		Order("id ASC").
		Offset(page.Offset()).
		Limit(page.PerPage).
		Find(&userMs).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list users")
	}

	users := make([]*entity.User, 0, len(userMs))
	for i := range userMs {
		users = append(users, toUserDomain(&userMs[i]))
	}

	return users, nil
}

// UpdateUserByID writes the non-nil fields and reports whether a row matched.
func (repo *userRepository) UpdateUserByID(ctx context.Context, id uuid.UUID, name, phone *string) (bool, error) {
	updates := userUpdates(name, phone)
	if len(updates) == 0 {
		return false, nil
	}

	res := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(res.Error, "failed to update user")
	}

	return res.RowsAffected > 0, nil
}

// ToggleActivityUserByID flips the active flag in one statement and returns the updated row.
func (repo *userRepository) ToggleActivityUserByID(ctx context.Context, id uuid.UUID) (optional.Optional[*entity.User], error) {
	var userM model.UserModel
	res := repo.db.WithContext(ctx).
		Model(&userM).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Update("active", gorm.Expr("NOT active"))
	if res.Error != nil {
		return optional.Empty[*entity.User](), domainerrors.NewDatabaseExecuteError(res.Error, "failed to toggle user activity")
	}
	if res.RowsAffected == 0 {
		return optional.Empty[*entity.User](), nil
	}

	return optional.Of(toUserDomain(&userM)), nil
}

func userUpdates(name, phone *string) map[string]any {
	updates := make(map[string]any, 2)
	if name != nil {
		updates["name"] = *name
	}
	if phone != nil {
		updates["phone"] = *phone
	}

	return updates
}

// toUserDomain converts a UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:           data.ID,
		Name:         data.Name,
		Phone:        data.Phone,
		Role:         entity.Role(data.Role),
		DepartmentID: data.DepartmentID,
		Active:       data.Active,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a UserModel.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:           data.ID,
		Name:         data.Name,
		Phone:        data.Phone,
		Role:         data.Role.String(),
		DepartmentID: data.DepartmentID,
		Active:       data.Active,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
