package impl

import (
	"context"
	"log/slog"

	deliverycontext "usersvc/internal/delivery/context"
	"usersvc/internal/domain/entity"
	domainerrors "usersvc/internal/domain/errors"
	"usersvc/internal/domain/repository"
	"usersvc/internal/domain/result"
	"usersvc/internal/domain/service"
	"usersvc/internal/errors"
	"usersvc/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type createUserHandler struct {
	txManager       repository.TransactionManager
	credentialsRepo repository.CredentialsRepository
	departmentRepo  repository.DepartmentRepository
	crypto          service.CryptoService
	validator       service.CommandValidator
	logger          *slog.Logger
}

// CreateUserHandlerParams holds dependencies for the handler, injected by Fx.
type CreateUserHandlerParams struct {
	fx.In

	TxManager       repository.TransactionManager
	CredentialsRepo repository.CredentialsRepository
	DepartmentRepo  repository.DepartmentRepository
	Crypto          service.CryptoService
	Validator       service.CommandValidator
	Logger          *slog.Logger
}

func NewCreateUserHandler(params CreateUserHandlerParams) usecase.CreateUserUsecase {
	return &createUserHandler{
		txManager:       params.TxManager,
		credentialsRepo: params.CredentialsRepo,
		departmentRepo:  params.DepartmentRepo,
		crypto:          params.Crypto,
		validator:       params.Validator,
		logger:          params.Logger,
	}
}

func (h *createUserHandler) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, h.logger)
}

// Execute opens an account. The user and its credentials are written in one
// transaction so a failed insert never leaves an account without a login.
func (h *createUserHandler) Execute(ctx context.Context, cmd usecase.CreateUserCommand) result.Result[*usecase.CreateUserResponse] {
	cmd.Email = entity.NormalizeEmail(cmd.Email)
	if err := h.validator.Validate(cmd); err != nil {
		return h.fail(ctx, cmd, domainerrors.Validation(err))
	}

	department, err := h.departmentRepo.GetDepartmentByID(ctx, cmd.DepartmentID)
	if err != nil {
		return h.fail(ctx, cmd, domainerrors.Infrastructure(err, "failed to load department"))
	}
	if !department.IsPresent() {
		return h.fail(ctx, cmd, domainerrors.ErrDepartmentNotFound)
	}

	existing, err := h.credentialsRepo.GetCredentialsByEmail(ctx, cmd.Email)
	if err != nil {
		return h.fail(ctx, cmd, domainerrors.Infrastructure(err, "failed to check email ownership"))
	}
	if existing.IsPresent() {
		return h.fail(ctx, cmd, domainerrors.ErrEmailAlreadyInUse)
	}

	hash, err := h.crypto.Hash(ctx, cmd.Password)
	if err != nil {
		return h.fail(ctx, cmd, domainerrors.Infrastructure(err, "failed to hash password"))
	}

	user := &entity.User{
		ID:           uuid.New(),
		Name:         cmd.Name,
		Phone:        cmd.Phone,
		Role:         cmd.Role,
		DepartmentID: cmd.DepartmentID,
		Active:       true,
	}

	err = h.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewUserRepository().SaveUser(ctx, user); err != nil {
			return errors.Wrap(err, "failed to save user")
		}

		_, err := repoFactory.NewCredentialsRepository().AddCredentials(ctx, &entity.Credentials{
			UserID:       user.ID,
			Email:        cmd.Email,
			PasswordHash: hash,
		})

		return errors.Wrap(err, "failed to add credentials")
	})
	if err != nil {
		if domainerrors.KindOf(err) == domainerrors.KindConflict {
			return h.fail(ctx, cmd, err)
		}

		return h.fail(ctx, cmd, domainerrors.Infrastructure(err, "failed to create user"))
	}

	h.log(ctx).Info("User created", slog.Any("userID", user.ID), slog.Any("role", user.Role))

	return result.Success(&usecase.CreateUserResponse{ID: user.ID})
}

func (h *createUserHandler) fail(ctx context.Context, cmd usecase.CreateUserCommand, err error) result.Result[*usecase.CreateUserResponse] {
	h.log(ctx).Warn("Create user failed", slog.String("email", cmd.Email), slog.Any("error", err))

	return result.Failure[*usecase.CreateUserResponse](err)
}
