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

// credentialsRepository implements the repository.CredentialsRepository interface.
type credentialsRepository struct {
	db *gorm.DB
}

// NewCredentialsRepository is the constructor for credentialsRepository.
func NewCredentialsRepository(db *gorm.DB) repository.CredentialsRepository {
	return &credentialsRepository{db: db}
}

func (repo *credentialsRepository) GetCredentialsByEmail(ctx context.Context, email string) (optional.Optional[*entity.Credentials], error) {
	return repo.first(ctx, "email = ?", entity.NormalizeEmail(email))
}

func (repo *credentialsRepository) GetCredentialsByUserID(ctx context.Context, userID uuid.UUID) (optional.Optional[*entity.Credentials], error) {
	return repo.first(ctx, "user_id = ?", userID)
}

func (repo *credentialsRepository) first(ctx context.Context, query string, arg any) (optional.Optional[*entity.Credentials], error) {
	var credM model.CredentialsModel
	err := repo.db.WithContext(ctx).Where(query, arg).Take(&credM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return optional.Empty[*entity.Credentials](), nil
		}

		return optional.Empty[*entity.Credentials](), domainerrors.NewDatabaseExecuteError(err, "failed to load credentials")
	}

	return optional.Of(toCredentialsDomain(&credM)), nil
}

// UpdateCredentials rewrites email and hash in one UPDATE statement.
func (repo *credentialsRepository) UpdateCredentials(ctx context.Context, userID uuid.UUID, email, passwordHash string) error {
	res := repo.db.WithContext(ctx).
		Model(&model.CredentialsModel{}).
		Where("user_id = ?", userID).
		Updates(map[string]any{
			"email":         entity.NormalizeEmail(email),
			"password_hash": passwordHash,
		})
	if res.Error != nil {
		if isUniqueConstraintViolation(res.Error) {
			return domainerrors.ErrEmailAlreadyInUse.WithCause(res.Error)
		}

		return domainerrors.NewDatabaseExecuteError(res.Error, "failed to update credentials")
	}
	if res.RowsAffected == 0 {
		return domainerrors.ErrCredentialsNotFound
	}

	return nil
}

// AddCredentials persists a new credentials record.
func (repo *credentialsRepository) AddCredentials(ctx context.Context, credentials *entity.Credentials) (uuid.UUID, error) {
	credM := fromCredentialsDomain(credentials)
	if credM.ID == uuid.Nil {
		credM.ID = uuid.New()
	}

	if err := repo.db.WithContext(ctx).Create(credM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return uuid.Nil, domainerrors.ErrEmailAlreadyInUse.WithCause(err)
		}
		if isForeignKeyConstraintViolation(err) {
			return uuid.Nil, domainerrors.ErrUserNotFound.WithCause(err)
		}

		return uuid.Nil, domainerrors.NewDatabaseExecuteError(err, "failed to create credentials")
	}

	// Update the entity with generated values
	credentials.ID = credM.ID
	credentials.CreatedAt = credM.CreatedAt
	credentials.UpdatedAt = credM.UpdatedAt

	return credM.UserID, nil
}

func toCredentialsDomain(data *model.CredentialsModel) *entity.Credentials {
	if data == nil {
		return nil
	}

	return &entity.Credentials{
		ID:           data.ID,
		UserID:       data.UserID,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromCredentialsDomain(data *entity.Credentials) *model.CredentialsModel {
	if data == nil {
		return nil
	}

	return &model.CredentialsModel{
		ID:           data.ID,
		UserID:       data.UserID,
		Email:        entity.NormalizeEmail(data.Email),
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
