package impl

import (
	"context"
	"log/slog"

	"usersvc/config"
	"usersvc/internal/domain/entity"
	domainerrors "usersvc/internal/domain/errors"
	"usersvc/internal/domain/repository"
	"usersvc/internal/errors"
	"usersvc/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// Bootstrapper seeds the first department and administrator so a fresh
// deployment has someone able to create the other accounts.
type Bootstrapper struct {
	cfg            *config.BootstrapConfig
	departments    usecase.DepartmentUsecase
	createUser     usecase.CreateUserUsecase
	departmentRepo repository.DepartmentRepository
	logger         *slog.Logger
}

// BootstrapperParams holds dependencies for the Bootstrapper, injected by Fx.
type BootstrapperParams struct {
	fx.In

	Config         *config.Config
	Departments    usecase.DepartmentUsecase
	CreateUser     usecase.CreateUserUsecase
	DepartmentRepo repository.DepartmentRepository
	Logger         *slog.Logger
}

func NewBootstrapper(params BootstrapperParams) *Bootstrapper {
	cfg := params.Config.Bootstrap
	if cfg == nil {
		cfg = &config.BootstrapConfig{}
	}

	return &Bootstrapper{
		cfg:            cfg,
		departments:    params.Departments,
		createUser:     params.CreateUser,
		departmentRepo: params.DepartmentRepo,
		logger:         params.Logger,
	}
}

// Run is idempotent: an existing department or admin email counts as seeded.
func (b *Bootstrapper) Run(ctx context.Context) error {
	if !b.cfg.Enabled {
		return nil
	}

	departmentID, err := b.ensureDepartment(ctx)
	if err != nil {
		return err
	}

	created := b.createUser.Execute(ctx, usecase.CreateUserCommand{
		Name:         b.cfg.AdminName,
		Phone:        b.cfg.AdminPhone,
		Role:         entity.RoleAdmin,
		DepartmentID: departmentID,
		Email:        b.cfg.AdminEmail,
		Password:     b.cfg.AdminPassword,
	})
	if created.IsFailure() {
		if domainerrors.KindOf(created.Err()) == domainerrors.KindConflict {
			b.logger.Info("Bootstrap admin already present", slog.String("email", b.cfg.AdminEmail))

			return nil
		}

		return errors.Wrap(created.Err(), "failed to seed admin")
	}

	b.logger.Info("Bootstrap admin created", slog.String("email", b.cfg.AdminEmail))

	return nil
}

func (b *Bootstrapper) ensureDepartment(ctx context.Context) (uuid.UUID, error) {
	created := b.departments.CreateDepartment(ctx, usecase.CreateDepartmentCommand{Name: b.cfg.DepartmentName})
	if created.IsSuccess() {
		resp, _ := created.Unwrap()
		b.logger.Info("Bootstrap department created", slog.String("name", b.cfg.DepartmentName))

		return resp.ID, nil
	}

	if domainerrors.KindOf(created.Err()) != domainerrors.KindConflict {
		return uuid.Nil, errors.Wrap(created.Err(), "failed to seed department")
	}

	found, err := b.departmentRepo.GetDepartmentByName(ctx, b.cfg.DepartmentName)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to load seeded department")
	}
	department, ok := found.Get()
	if !ok {
		return uuid.Nil, errors.Errorf("department %q reported as existing but not found", b.cfg.DepartmentName)
	}

	return department.ID, nil
}
