package impl

import (
	"context"
	"testing"

	"usersvc/config"
	"usersvc/internal/domain/entity"
	domainerrors "usersvc/internal/domain/errors"
	"usersvc/internal/domain/optional"
	"usersvc/internal/domain/result"
	mockRepo "usersvc/internal/mocks/repository"
	mockUsecase "usersvc/internal/mocks/usecase"
	"usersvc/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type bootstrapFixtures struct {
	bootstrapper   *Bootstrapper
	departments    *mockUsecase.MockDepartmentUsecase
	createUser     *mockUsecase.MockCreateUserUsecase
	departmentRepo *mockRepo.MockDepartmentRepository
}

func createTestBootstrapper(t *testing.T, enabled bool) bootstrapFixtures {
	departments := mockUsecase.NewMockDepartmentUsecase(t)
	createUser := mockUsecase.NewMockCreateUserUsecase(t)
	departmentRepo := mockRepo.NewMockDepartmentRepository(t)

	cfg := newTestConfig(true)
	cfg.Bootstrap = &config.BootstrapConfig{
		Enabled:        enabled,
		DepartmentName: "Administration",
		AdminName:      "Admin",
		AdminPhone:     "+584242374999",
		AdminEmail:     "admin@gmail.com",
		AdminPassword:  "Adm1nPassword",
	}

	return bootstrapFixtures{
		bootstrapper: NewBootstrapper(BootstrapperParams{
			Config:         cfg,
			Departments:    departments,
			CreateUser:     createUser,
			DepartmentRepo: departmentRepo,
			Logger:         newDiscardLogger(),
		}),
		departments:    departments,
		createUser:     createUser,
		departmentRepo: departmentRepo,
	}
}

func TestBootstrapper_Disabled(t *testing.T) {
	fx := createTestBootstrapper(t, false)

	require.NoError(t, fx.bootstrapper.Run(context.Background()))
	fx.departments.AssertNotCalled(t, "CreateDepartment", mock.Anything, mock.Anything)
}

func TestBootstrapper_SeedsDepartmentAndAdmin(t *testing.T) {
	fx := createTestBootstrapper(t, true)
	departmentID := uuid.New()

	fx.departments.EXPECT().CreateDepartment(mock.Anything, usecase.CreateDepartmentCommand{Name: "Administration"}).
		Return(result.Success(&usecase.CreateDepartmentResponse{ID: departmentID}))
	fx.createUser.EXPECT().Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, cmd usecase.CreateUserCommand) result.Result[*usecase.CreateUserResponse] {
			assert.Equal(t, entity.RoleAdmin, cmd.Role)
			assert.Equal(t, departmentID, cmd.DepartmentID)
			assert.Equal(t, "admin@gmail.com", cmd.Email)

			return result.Success(&usecase.CreateUserResponse{ID: uuid.New()})
		})

	require.NoError(t, fx.bootstrapper.Run(context.Background()))
}

func TestBootstrapper_IsIdempotent(t *testing.T) {
	fx := createTestBootstrapper(t, true)
	departmentID := uuid.New()

	fx.departments.EXPECT().CreateDepartment(mock.Anything, mock.Anything).
		Return(result.Failure[*usecase.CreateDepartmentResponse](domainerrors.ErrDepartmentAlreadyExists))
	fx.departmentRepo.EXPECT().GetDepartmentByName(mock.Anything, "Administration").
		Return(optional.Of(&entity.Department{ID: departmentID, Name: "Administration"}), nil)
	fx.createUser.EXPECT().Execute(mock.Anything, mock.MatchedBy(func(cmd usecase.CreateUserCommand) bool {
		return cmd.DepartmentID == departmentID
	})).Return(result.Failure[*usecase.CreateUserResponse](domainerrors.ErrEmailAlreadyInUse))

	require.NoError(t, fx.bootstrapper.Run(context.Background()))
}

func TestBootstrapper_PropagatesFailures(t *testing.T) {
	t.Run("department", func(t *testing.T) {
		fx := createTestBootstrapper(t, true)
		fx.departments.EXPECT().CreateDepartment(mock.Anything, mock.Anything).
			Return(result.Failure[*usecase.CreateDepartmentResponse](domainerrors.Infrastructure(errors.New("db down"), "save")))

		err := fx.bootstrapper.Run(context.Background())

		require.Error(t, err)
		fx.createUser.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
	})

	t.Run("admin", func(t *testing.T) {
		fx := createTestBootstrapper(t, true)
		fx.departments.EXPECT().CreateDepartment(mock.Anything, mock.Anything).
			Return(result.Success(&usecase.CreateDepartmentResponse{ID: uuid.New()}))
		fx.createUser.EXPECT().Execute(mock.Anything, mock.Anything).
			Return(result.Failure[*usecase.CreateUserResponse](domainerrors.ErrValidationFailed))

		err := fx.bootstrapper.Run(context.Background())

		requireKind(t, domainerrors.KindValidation, err)
	})
}
