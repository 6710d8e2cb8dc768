package impl

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"testing"

	deliverycontext "usersvc/internal/delivery/context"
	"usersvc/internal/domain/entity"
	domainerrors "usersvc/internal/domain/errors"
	"usersvc/internal/domain/optional"
	"usersvc/internal/domain/service"
	mockRepo "usersvc/internal/mocks/repository"
	mockSvc "usersvc/internal/mocks/service"
	"usersvc/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

type loginFixtures struct {
	handler         usecase.LoginUsecase
	credentialsRepo *mockRepo.MockCredentialsRepository
	userRepo        *mockRepo.MockUserRepository
	crypto          *mockSvc.MockCryptoService
	tokenService    *mockSvc.MockTokenAuthenticationService
}

func createTestLoginHandler(t *testing.T) loginFixtures {
	credentialsRepo := mockRepo.NewMockCredentialsRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	crypto := mockSvc.NewMockCryptoService(t)
	tokenService := mockSvc.NewMockTokenAuthenticationService(t)

	handler := NewLoginHandler(LoginHandlerParams{
		CredentialsRepo: credentialsRepo,
		UserRepo:        userRepo,
		Crypto:          crypto,
		TokenService:    tokenService,
		Logger:          newDiscardLogger(),
	})

	return loginFixtures{
		handler:         handler,
		credentialsRepo: credentialsRepo,
		userRepo:        userRepo,
		crypto:          crypto,
		tokenService:    tokenService,
	}
}

func TestLoginHandler_Success(t *testing.T) {
	fx := createTestLoginHandler(t)
	ctx := context.Background()

	credentials := someCredentials("test@gmail.com", "H0")
	creds, _ := credentials.Get()
	user := &entity.User{ID: creds.UserID, Name: "Test", Phone: "+584242374999", Role: entity.RoleAdmin, Active: true}

	fx.credentialsRepo.EXPECT().GetCredentialsByEmail(ctx, "test@gmail.com").Return(credentials, nil)
	fx.crypto.EXPECT().Compare(ctx, "testpassword", "H0").Return(true, nil)
	fx.userRepo.EXPECT().GetUserByID(ctx, creds.UserID).Return(optional.Of(user), nil)
	fx.tokenService.EXPECT().
		Authenticate(service.TokenSubject{UserID: user.ID, Email: "test@gmail.com", Role: entity.RoleAdmin}).
		Return(&entity.TokenResponse{AccessToken: "token", ExpiresIn: 3600}, nil)

	res := fx.handler.Execute(ctx, usecase.LoginCommand{Email: "test@gmail.com", Password: "testpassword"})

	require.True(t, res.IsSuccess())
	resp, err := res.Unwrap()
	require.NoError(t, err)
	assert.Same(t, user, resp.User)
	assert.Equal(t, "token", resp.AccessToken)
	assert.Equal(t, 3600, resp.ExpiresIn)
}

func TestLoginHandler_NormalizesEmail(t *testing.T) {
	fx := createTestLoginHandler(t)
	ctx := context.Background()

	fx.credentialsRepo.EXPECT().GetCredentialsByEmail(ctx, "test@gmail.com").Return(noCredentials(), nil)

	res := fx.handler.Execute(ctx, usecase.LoginCommand{Email: " Test@Gmail.com ", Password: "testpassword"})

	requireKind(t, domainerrors.KindUnauthorized, res.Err())
}

func TestLoginHandler_UnknownEmail_NeverCompares(t *testing.T) {
	fx := createTestLoginHandler(t)
	ctx := context.Background()

	fx.credentialsRepo.EXPECT().GetCredentialsByEmail(ctx, "nobody@gmail.com").Return(noCredentials(), nil)

	res := fx.handler.Execute(ctx, usecase.LoginCommand{Email: "nobody@gmail.com", Password: "testpassword"})

	requireKind(t, domainerrors.KindUnauthorized, res.Err())
	assert.ErrorIs(t, res.Err(), domainerrors.ErrInvalidCredentials)
	fx.crypto.AssertNotCalled(t, "Compare", mock.Anything, mock.Anything, mock.Anything)
}

func TestLoginHandler_WrongPassword_NeverIssuesToken(t *testing.T) {
	fx := createTestLoginHandler(t)
	ctx := context.Background()

	fx.credentialsRepo.EXPECT().GetCredentialsByEmail(ctx, "test@gmail.com").Return(someCredentials("test@gmail.com", "H0"), nil)
	fx.crypto.EXPECT().Compare(ctx, "wrong", "H0").Return(false, nil)

	res := fx.handler.Execute(ctx, usecase.LoginCommand{Email: "test@gmail.com", Password: "wrong"})

	requireKind(t, domainerrors.KindUnauthorized, res.Err())
	fx.tokenService.AssertNotCalled(t, "Authenticate", mock.Anything)
	fx.userRepo.AssertNotCalled(t, "GetUserByID", mock.Anything, mock.Anything)
}

func TestLoginHandler_EmptyCredentials(t *testing.T) {
	tests := []struct {
		name string
		cmd  usecase.LoginCommand
	}{
		{name: "empty email", cmd: usecase.LoginCommand{Password: "testpassword"}},
		{name: "empty password", cmd: usecase.LoginCommand{Email: "test@gmail.com"}},
		{name: "both empty", cmd: usecase.LoginCommand{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestLoginHandler(t)

			res := fx.handler.Execute(context.Background(), tt.cmd)

			requireKind(t, domainerrors.KindUnauthorized, res.Err())
		})
	}
}

func TestLoginHandler_MissingUser_IsUnauthorized(t *testing.T) {
	fx := createTestLoginHandler(t)
	ctx := context.Background()

	credentials := someCredentials("test@gmail.com", "H0")
	creds, _ := credentials.Get()

	fx.credentialsRepo.EXPECT().GetCredentialsByEmail(ctx, "test@gmail.com").Return(credentials, nil)
	fx.crypto.EXPECT().Compare(ctx, "testpassword", "H0").Return(true, nil)
	fx.userRepo.EXPECT().GetUserByID(ctx, creds.UserID).Return(optional.Empty[*entity.User](), nil)

	res := fx.handler.Execute(ctx, usecase.LoginCommand{Email: "test@gmail.com", Password: "testpassword"})

	requireKind(t, domainerrors.KindUnauthorized, res.Err())
	fx.tokenService.AssertNotCalled(t, "Authenticate", mock.Anything)
}

func TestLoginHandler_InfrastructureFaults(t *testing.T) {
	dbErr := errors.New("connection refused")

	t.Run("credentials lookup", func(t *testing.T) {
		fx := createTestLoginHandler(t)
		fx.credentialsRepo.EXPECT().GetCredentialsByEmail(mock.Anything, "test@gmail.com").
			Return(noCredentials(), dbErr)

		res := fx.handler.Execute(context.Background(), usecase.LoginCommand{Email: "test@gmail.com", Password: "p"})

		requireKind(t, domainerrors.KindInfrastructure, res.Err())
		assert.ErrorIs(t, res.Err(), dbErr)
	})

	t.Run("compare", func(t *testing.T) {
		fx := createTestLoginHandler(t)
		fx.credentialsRepo.EXPECT().GetCredentialsByEmail(mock.Anything, "test@gmail.com").
			Return(someCredentials("test@gmail.com", "H0"), nil)
		fx.crypto.EXPECT().Compare(mock.Anything, "p", "H0").Return(false, context.Canceled)

		res := fx.handler.Execute(context.Background(), usecase.LoginCommand{Email: "test@gmail.com", Password: "p"})

		requireKind(t, domainerrors.KindInfrastructure, res.Err())
		assert.ErrorIs(t, res.Err(), context.Canceled)
	})

	t.Run("token", func(t *testing.T) {
		fx := createTestLoginHandler(t)
		credentials := someCredentials("test@gmail.com", "H0")
		creds, _ := credentials.Get()
		fx.credentialsRepo.EXPECT().GetCredentialsByEmail(mock.Anything, "test@gmail.com").Return(credentials, nil)
		fx.crypto.EXPECT().Compare(mock.Anything, "p", "H0").Return(true, nil)
		fx.userRepo.EXPECT().GetUserByID(mock.Anything, creds.UserID).
			Return(optional.Of(&entity.User{ID: creds.UserID, Role: entity.RoleProvider}), nil)
		fx.tokenService.EXPECT().Authenticate(mock.Anything).Return(nil, errors.New("signing failed"))

		res := fx.handler.Execute(context.Background(), usecase.LoginCommand{Email: "test@gmail.com", Password: "p"})

		requireKind(t, domainerrors.KindInfrastructure, res.Err())
	})
}

func TestLoginHandler_FailureLogLevel(t *testing.T) {
	tests := []struct {
		name       string
		compareErr error
		level      string
	}{
		{name: "wrong password", level: `level=WARN`},
		{name: "compare fault", compareErr: context.Canceled, level: `level=ERROR`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestLoginHandler(t)
			buf := &bytes.Buffer{}
			ctx := deliverycontext.WithLogger(context.Background(), slog.New(slog.NewTextHandler(buf, nil)))

			fx.credentialsRepo.EXPECT().GetCredentialsByEmail(mock.Anything, "test@gmail.com").
				Return(someCredentials("test@gmail.com", "H0"), nil)
			fx.crypto.EXPECT().Compare(mock.Anything, "p", "H0").Return(false, tt.compareErr)

			res := fx.handler.Execute(ctx, usecase.LoginCommand{Email: "test@gmail.com", Password: "p"})

			require.True(t, res.IsFailure())
			assert.Contains(t, buf.String(), tt.level)
			assert.Contains(t, buf.String(), `msg="Login failed"`)
		})
	}
}

func TestLoginHandler_ConcurrentExecutions(t *testing.T) {
	defer goleak.VerifyNone(t)

	fx := createTestLoginHandler(t)
	const workers = 32

	users := make(map[string]*entity.User, workers)
	for i := range workers {
		email := "user" + string(rune('a'+i%26)) + uuid.NewString()[:8] + "@gmail.com"
		user := &entity.User{ID: uuid.New(), Role: entity.RoleProvider}
		users[email] = user

		fx.credentialsRepo.EXPECT().GetCredentialsByEmail(mock.Anything, email).
			Return(optional.Of(&entity.Credentials{UserID: user.ID, Email: email, PasswordHash: "hash-" + email}), nil).Once()
		fx.crypto.EXPECT().Compare(mock.Anything, "secret", "hash-"+email).Return(true, nil).Once()
		fx.userRepo.EXPECT().GetUserByID(mock.Anything, user.ID).Return(optional.Of(user), nil).Once()
	}
	fx.tokenService.EXPECT().Authenticate(mock.Anything).
		RunAndReturn(func(subject service.TokenSubject) (*entity.TokenResponse, error) {
			return &entity.TokenResponse{AccessToken: "token-" + subject.Email, ExpiresIn: 60}, nil
		}).Times(workers)

	var wg sync.WaitGroup
	for email, user := range users {
		wg.Add(1)
		go func() {
			defer wg.Done()

			res := fx.handler.Execute(context.Background(), usecase.LoginCommand{Email: email, Password: "secret"})
			resp, err := res.Unwrap()
			if assert.NoError(t, err) {
				assert.Equal(t, user.ID, resp.User.ID)
				assert.Equal(t, "token-"+email, resp.AccessToken)
			}
		}()
	}
	wg.Wait()
}
