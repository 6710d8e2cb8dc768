package impl

import (
	"context"
	"testing"

	"usersvc/internal/domain/entity"
	domainerrors "usersvc/internal/domain/errors"
	"usersvc/internal/domain/optional"
	"usersvc/internal/domain/repository"
	mockRepo "usersvc/internal/mocks/repository"
	mockSvc "usersvc/internal/mocks/service"
	"usersvc/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type createUserFixtures struct {
	handler         usecase.CreateUserUsecase
	txManager       *mockRepo.MockTransactionManager
	repoFactory     *mockRepo.MockRepositoryFactory
	txUserRepo      *mockRepo.MockUserRepository
	txCredentials   *mockRepo.MockCredentialsRepository
	credentialsRepo *mockRepo.MockCredentialsRepository
	departmentRepo  *mockRepo.MockDepartmentRepository
	crypto          *mockSvc.MockCryptoService
	validator       *mockSvc.MockCommandValidator
}

func createTestCreateUserHandler(t *testing.T) createUserFixtures {
	fixtures := createUserFixtures{
		txManager:       mockRepo.NewMockTransactionManager(t),
		repoFactory:     mockRepo.NewMockRepositoryFactory(t),
		txUserRepo:      mockRepo.NewMockUserRepository(t),
		txCredentials:   mockRepo.NewMockCredentialsRepository(t),
		credentialsRepo: mockRepo.NewMockCredentialsRepository(t),
		departmentRepo:  mockRepo.NewMockDepartmentRepository(t),
		crypto:          mockSvc.NewMockCryptoService(t),
		validator:       mockSvc.NewMockCommandValidator(t),
	}

	fixtures.handler = NewCreateUserHandler(CreateUserHandlerParams{
		TxManager:       fixtures.txManager,
		CredentialsRepo: fixtures.credentialsRepo,
		DepartmentRepo:  fixtures.departmentRepo,
		Crypto:          fixtures.crypto,
		Validator:       fixtures.validator,
		Logger:          newDiscardLogger(),
	})

	return fixtures
}

// runTransaction makes the transaction manager invoke fn with the fixture's factory.
func (f createUserFixtures) runTransaction() {
	f.txManager.EXPECT().Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(f.repoFactory)
		})
}

func newCreateUserCommand(departmentID uuid.UUID) usecase.CreateUserCommand {
	return usecase.CreateUserCommand{
		Name:         "Ana",
		Phone:        "+584242374999",
		Role:         entity.RoleProvider,
		DepartmentID: departmentID,
		Email:        "Ana@Gmail.com",
		Password:     "Passw0rd",
	}
}

func TestCreateUserHandler_Success(t *testing.T) {
	fx := createTestCreateUserHandler(t)
	ctx := context.Background()
	departmentID := uuid.New()

	fx.validator.EXPECT().Validate(mock.Anything).Return(nil)
	fx.departmentRepo.EXPECT().GetDepartmentByID(ctx, departmentID).
		Return(optional.Of(&entity.Department{ID: departmentID, Name: "Sales"}), nil)
	fx.credentialsRepo.EXPECT().GetCredentialsByEmail(ctx, "ana@gmail.com").Return(noCredentials(), nil)
	fx.crypto.EXPECT().Hash(ctx, "Passw0rd").Return("H0", nil)
	fx.runTransaction()
	fx.repoFactory.EXPECT().NewUserRepository().Return(fx.txUserRepo)
	fx.repoFactory.EXPECT().NewCredentialsRepository().Return(fx.txCredentials)

	var saved *entity.User
	fx.txUserRepo.EXPECT().SaveUser(ctx, mock.Anything).
		Run(func(_ context.Context, user *entity.User) { saved = user }).
		Return(nil)

	var added *entity.Credentials
	fx.txCredentials.EXPECT().AddCredentials(ctx, mock.Anything).
		Run(func(_ context.Context, credentials *entity.Credentials) { added = credentials }).
		Return(uuid.New(), nil)

	res := fx.handler.Execute(ctx, newCreateUserCommand(departmentID))

	require.True(t, res.IsSuccess())
	resp, err := res.Unwrap()
	require.NoError(t, err)

	require.NotNil(t, saved)
	assert.Equal(t, saved.ID, resp.ID)
	assert.True(t, saved.Active)
	assert.Equal(t, entity.RoleProvider, saved.Role)
	assert.Equal(t, departmentID, saved.DepartmentID)

	require.NotNil(t, added)
	assert.Equal(t, saved.ID, added.UserID)
	assert.Equal(t, "ana@gmail.com", added.Email)
	assert.Equal(t, "H0", added.PasswordHash)
}

func TestCreateUserHandler_ValidationFailure(t *testing.T) {
	fx := createTestCreateUserHandler(t)

	fx.validator.EXPECT().Validate(mock.Anything).Return(errors.New("phone must be e164"))

	res := fx.handler.Execute(context.Background(), newCreateUserCommand(uuid.New()))

	requireKind(t, domainerrors.KindValidation, res.Err())
	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestCreateUserHandler_UnknownDepartment(t *testing.T) {
	fx := createTestCreateUserHandler(t)
	departmentID := uuid.New()

	fx.validator.EXPECT().Validate(mock.Anything).Return(nil)
	fx.departmentRepo.EXPECT().GetDepartmentByID(mock.Anything, departmentID).
		Return(optional.Empty[*entity.Department](), nil)

	res := fx.handler.Execute(context.Background(), newCreateUserCommand(departmentID))

	requireKind(t, domainerrors.KindNotFound, res.Err())
	assert.ErrorIs(t, res.Err(), domainerrors.ErrDepartmentNotFound)
}

func TestCreateUserHandler_EmailTaken(t *testing.T) {
	fx := createTestCreateUserHandler(t)
	departmentID := uuid.New()

	fx.validator.EXPECT().Validate(mock.Anything).Return(nil)
	fx.departmentRepo.EXPECT().GetDepartmentByID(mock.Anything, departmentID).
		Return(optional.Of(&entity.Department{ID: departmentID}), nil)
	fx.credentialsRepo.EXPECT().GetCredentialsByEmail(mock.Anything, "ana@gmail.com").
		Return(someCredentials("ana@gmail.com", "HX"), nil)

	res := fx.handler.Execute(context.Background(), newCreateUserCommand(departmentID))

	requireKind(t, domainerrors.KindConflict, res.Err())
	fx.crypto.AssertNotCalled(t, "Hash", mock.Anything, mock.Anything)
}

func TestCreateUserHandler_TransactionFailures(t *testing.T) {
	tests := []struct {
		name     string
		addErr   error
		wantKind domainerrors.Kind
	}{
		{name: "unique violation on insert", addErr: domainerrors.ErrEmailAlreadyInUse, wantKind: domainerrors.KindConflict},
		{name: "database fault", addErr: errors.New("connection lost"), wantKind: domainerrors.KindInfrastructure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCreateUserHandler(t)
			departmentID := uuid.New()

			fx.validator.EXPECT().Validate(mock.Anything).Return(nil)
			fx.departmentRepo.EXPECT().GetDepartmentByID(mock.Anything, departmentID).
				Return(optional.Of(&entity.Department{ID: departmentID}), nil)
			fx.credentialsRepo.EXPECT().GetCredentialsByEmail(mock.Anything, "ana@gmail.com").Return(noCredentials(), nil)
			fx.crypto.EXPECT().Hash(mock.Anything, "Passw0rd").Return("H0", nil)
			fx.runTransaction()
			fx.repoFactory.EXPECT().NewUserRepository().Return(fx.txUserRepo)
			fx.repoFactory.EXPECT().NewCredentialsRepository().Return(fx.txCredentials)
			fx.txUserRepo.EXPECT().SaveUser(mock.Anything, mock.Anything).Return(nil)
			fx.txCredentials.EXPECT().AddCredentials(mock.Anything, mock.Anything).Return(uuid.Nil, tt.addErr)

			res := fx.handler.Execute(context.Background(), newCreateUserCommand(departmentID))

			requireKind(t, tt.wantKind, res.Err())
			assert.ErrorIs(t, res.Err(), tt.addErr)
		})
	}
}
