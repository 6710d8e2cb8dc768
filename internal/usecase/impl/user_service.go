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
	"usersvc/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const defaultUsersPerPage = 20

// userService implements the UserUsecase interface.
type userService struct {
	userRepo  repository.UserRepository
	validator service.CommandValidator
	logger    *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo  repository.UserRepository
	Validator service.CommandValidator
	Logger    *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:  params.UserRepo,
		validator: params.Validator,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *userService) GetUserByID(ctx context.Context, id uuid.UUID) result.Result[*entity.User] {
	if id == uuid.Nil {
		return result.Failure[*entity.User](domainerrors.ErrValidationFailed.WithDetails("user id is required"))
	}

	found, err := srv.userRepo.GetUserByID(ctx, id)
	if err != nil {
		srv.log(ctx).Error("Failed to load user", slog.Any("userID", id), slog.Any("error", err))

		return result.Failure[*entity.User](domainerrors.Infrastructure(err, "failed to load user"))
	}

	user, ok := found.Get()
	if !ok {
		return result.Failure[*entity.User](domainerrors.ErrUserNotFound)
	}

	return result.Success(user)
}

// GetAllUsers lists one page of users. An empty page is reported as NotFound.
func (srv *userService) GetAllUsers(ctx context.Context, query usecase.GetAllUsersQuery) result.Result[[]*entity.User] {
	if err := srv.validator.Validate(query); err != nil {
		return result.Failure[[]*entity.User](domainerrors.Validation(err))
	}

	page := entity.Page{Number: query.Page, PerPage: query.PerPage}
	if page.Number == 0 {
		page.Number = 1
	}
	if page.PerPage == 0 {
		page.PerPage = defaultUsersPerPage
	}

	users, err := srv.userRepo.GetAllUsers(ctx, page)
	if err != nil {
		srv.log(ctx).Error("Failed to list users", slog.Int("page", page.Number), slog.Any("error", err))

		return result.Failure[[]*entity.User](domainerrors.Infrastructure(err, "failed to list users"))
	}
	if len(users) == 0 {
		return result.Failure[[]*entity.User](domainerrors.ErrUsersNotFound)
	}

	return result.Success(users)
}

// UpdateUserByID changes name and/or phone. At least one of them must be set.
func (srv *userService) UpdateUserByID(ctx context.Context, cmd usecase.UpdateUserCommand) result.Result[*usecase.UpdateUserResponse] {
	if cmd.Name == nil && cmd.Phone == nil {
		return result.Failure[*usecase.UpdateUserResponse](domainerrors.ErrValidationFailed.WithDetails("name or phone is required"))
	}
	if err := srv.validator.Validate(cmd); err != nil {
		return result.Failure[*usecase.UpdateUserResponse](domainerrors.Validation(err))
	}

	updated, err := srv.userRepo.UpdateUserByID(ctx, cmd.ID, cmd.Name, cmd.Phone)
	if err != nil {
		srv.log(ctx).Error("Failed to update user", slog.Any("userID", cmd.ID), slog.Any("error", err))

		return result.Failure[*usecase.UpdateUserResponse](domainerrors.Infrastructure(err, "failed to update user"))
	}
	if !updated {
		return result.Failure[*usecase.UpdateUserResponse](domainerrors.ErrUserNotFound)
	}

	srv.log(ctx).Info("User updated", slog.Any("userID", cmd.ID))

	return result.Success(&usecase.UpdateUserResponse{ID: cmd.ID})
}

func (srv *userService) ToggleActivityUserByID(ctx context.Context, id uuid.UUID) result.Result[*usecase.ToggleActivityResponse] {
	if id == uuid.Nil {
		return result.Failure[*usecase.ToggleActivityResponse](domainerrors.ErrValidationFailed.WithDetails("user id is required"))
	}

	toggled, err := srv.userRepo.ToggleActivityUserByID(ctx, id)
	if err != nil {
		srv.log(ctx).Error("Failed to toggle user activity", slog.Any("userID", id), slog.Any("error", err))

		return result.Failure[*usecase.ToggleActivityResponse](domainerrors.Infrastructure(err, "failed to toggle user activity"))
	}

	user, ok := toggled.Get()
	if !ok {
		return result.Failure[*usecase.ToggleActivityResponse](domainerrors.ErrUserNotFound)
	}

	srv.log(ctx).Info("User activity toggled", slog.Any("userID", id), slog.Bool("active", user.Active))

	return result.Success(&usecase.ToggleActivityResponse{ID: user.ID, Active: user.Active})
}
