package impl

import (
	"context"
	"log/slog"
	"strings"

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

type departmentService struct {
	departmentRepo repository.DepartmentRepository
	validator      service.CommandValidator
	logger         *slog.Logger
}

// DepartmentServiceParams holds dependencies for the department service, injected by Fx.
type DepartmentServiceParams struct {
	fx.In

	DepartmentRepo repository.DepartmentRepository
	Validator      service.CommandValidator
	Logger         *slog.Logger
}

func NewDepartmentService(params DepartmentServiceParams) usecase.DepartmentUsecase {
	return &departmentService{
		departmentRepo: params.DepartmentRepo,
		validator:      params.Validator,
		logger:         params.Logger,
	}
}

func (srv *departmentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *departmentService) CreateDepartment(ctx context.Context, cmd usecase.CreateDepartmentCommand) result.Result[*usecase.CreateDepartmentResponse] {
	cmd.Name = strings.TrimSpace(cmd.Name)
	if err := srv.validator.Validate(cmd); err != nil {
		return result.Failure[*usecase.CreateDepartmentResponse](domainerrors.Validation(err))
	}

	existing, err := srv.departmentRepo.GetDepartmentByName(ctx, cmd.Name)
	if err != nil {
		return result.Failure[*usecase.CreateDepartmentResponse](domainerrors.Infrastructure(err, "failed to look up department"))
	}
	if existing.IsPresent() {
		return result.Failure[*usecase.CreateDepartmentResponse](domainerrors.ErrDepartmentAlreadyExists)
	}

	department := &entity.Department{ID: uuid.New(), Name: cmd.Name}
	if err := srv.departmentRepo.SaveDepartment(ctx, department); err != nil {
		if domainerrors.KindOf(err) == domainerrors.KindConflict {
			return result.Failure[*usecase.CreateDepartmentResponse](err)
		}
		srv.log(ctx).Error("Failed to save department", slog.String("name", cmd.Name), slog.Any("error", err))

		return result.Failure[*usecase.CreateDepartmentResponse](domainerrors.Infrastructure(err, "failed to save department"))
	}

	srv.log(ctx).Info("Department created", slog.Any("departmentID", department.ID), slog.String("name", department.Name))

	return result.Success(&usecase.CreateDepartmentResponse{ID: department.ID})
}

// GetAllDepartments reports an empty listing as NotFound.
func (srv *departmentService) GetAllDepartments(ctx context.Context) result.Result[[]*entity.Department] {
	departments, err := srv.departmentRepo.GetAllDepartments(ctx)
	if err != nil {
		return result.Failure[[]*entity.Department](domainerrors.Infrastructure(err, "failed to list departments"))
	}
	if len(departments) == 0 {
		return result.Failure[[]*entity.Department](domainerrors.ErrDepartmentsNotFound)
	}

	return result.Success(departments)
}

func (srv *departmentService) GetDepartmentByID(ctx context.Context, id uuid.UUID) result.Result[*entity.Department] {
	found, err := srv.departmentRepo.GetDepartmentByID(ctx, id)
	if err != nil {
		return result.Failure[*entity.Department](domainerrors.Infrastructure(err, "failed to load department"))
	}

	department, ok := found.Get()
	if !ok {
		return result.Failure[*entity.Department](domainerrors.ErrDepartmentNotFound)
	}

	return result.Success(department)
}
