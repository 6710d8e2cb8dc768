package impl

import (
	"context"
	"testing"

	"usersvc/internal/domain/entity"
	domainerrors "usersvc/internal/domain/errors"
	"usersvc/internal/domain/optional"
	mockRepo "usersvc/internal/mocks/repository"
	mockSvc "usersvc/internal/mocks/service"
	"usersvc/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type departmentServiceFixtures struct {
	service        usecase.DepartmentUsecase
	departmentRepo *mockRepo.MockDepartmentRepository
	validator      *mockSvc.MockCommandValidator
}

func createTestDepartmentService(t *testing.T) departmentServiceFixtures {
	departmentRepo := mockRepo.NewMockDepartmentRepository(t)
	validator := mockSvc.NewMockCommandValidator(t)

	return departmentServiceFixtures{
		service: NewDepartmentService(DepartmentServiceParams{
			DepartmentRepo: departmentRepo,
			Validator:      validator,
			Logger:         newDiscardLogger(),
		}),
		departmentRepo: departmentRepo,
		validator:      validator,
	}
}

func TestDepartmentService_CreateDepartment(t *testing.T) {
	fx := createTestDepartmentService(t)
	ctx := context.Background()

	fx.validator.EXPECT().Validate(usecase.CreateDepartmentCommand{Name: "Sales"}).Return(nil)
	fx.departmentRepo.EXPECT().GetDepartmentByName(ctx, "Sales").Return(optional.Empty[*entity.Department](), nil)

	var saved *entity.Department
	fx.departmentRepo.EXPECT().SaveDepartment(ctx, mock.Anything).
		Run(func(_ context.Context, department *entity.Department) { saved = department }).
		Return(nil)

	res := fx.service.CreateDepartment(ctx, usecase.CreateDepartmentCommand{Name: "  Sales "})

	resp, err := res.Unwrap()
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, saved.ID, resp.ID)
	assert.Equal(t, "Sales", saved.Name)
}

func TestDepartmentService_CreateDepartment_Duplicate(t *testing.T) {
	fx := createTestDepartmentService(t)

	fx.validator.EXPECT().Validate(mock.Anything).Return(nil)
	fx.departmentRepo.EXPECT().GetDepartmentByName(mock.Anything, "Sales").
		Return(optional.Of(&entity.Department{ID: uuid.New(), Name: "Sales"}), nil)

	res := fx.service.CreateDepartment(context.Background(), usecase.CreateDepartmentCommand{Name: "Sales"})

	requireKind(t, domainerrors.KindConflict, res.Err())
	fx.departmentRepo.AssertNotCalled(t, "SaveDepartment", mock.Anything, mock.Anything)
}

func TestDepartmentService_CreateDepartment_RaceOnInsert(t *testing.T) {
	fx := createTestDepartmentService(t)

	fx.validator.EXPECT().Validate(mock.Anything).Return(nil)
	fx.departmentRepo.EXPECT().GetDepartmentByName(mock.Anything, "Sales").Return(optional.Empty[*entity.Department](), nil)
	fx.departmentRepo.EXPECT().SaveDepartment(mock.Anything, mock.Anything).Return(domainerrors.ErrDepartmentAlreadyExists)

	res := fx.service.CreateDepartment(context.Background(), usecase.CreateDepartmentCommand{Name: "Sales"})

	requireKind(t, domainerrors.KindConflict, res.Err())
}

func TestDepartmentService_CreateDepartment_Invalid(t *testing.T) {
	fx := createTestDepartmentService(t)

	fx.validator.EXPECT().Validate(mock.Anything).Return(errors.New("name too short"))

	res := fx.service.CreateDepartment(context.Background(), usecase.CreateDepartmentCommand{Name: "a"})

	requireKind(t, domainerrors.KindValidation, res.Err())
}

func TestDepartmentService_GetAllDepartments(t *testing.T) {
	t.Run("listing", func(t *testing.T) {
		fx := createTestDepartmentService(t)
		fx.departmentRepo.EXPECT().GetAllDepartments(mock.Anything).
			Return([]*entity.Department{{ID: uuid.New(), Name: "Sales"}}, nil)

		res := fx.service.GetAllDepartments(context.Background())

		got, err := res.Unwrap()
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("empty", func(t *testing.T) {
		fx := createTestDepartmentService(t)
		fx.departmentRepo.EXPECT().GetAllDepartments(mock.Anything).Return([]*entity.Department{}, nil)

		res := fx.service.GetAllDepartments(context.Background())

		requireKind(t, domainerrors.KindNotFound, res.Err())
	})
}

func TestDepartmentService_GetDepartmentByID(t *testing.T) {
	fx := createTestDepartmentService(t)
	id := uuid.New()
	fx.departmentRepo.EXPECT().GetDepartmentByID(mock.Anything, id).Return(optional.Empty[*entity.Department](), nil)

	res := fx.service.GetDepartmentByID(context.Background(), id)

	requireKind(t, domainerrors.KindNotFound, res.Err())
	assert.ErrorIs(t, res.Err(), domainerrors.ErrDepartmentNotFound)
}
