package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"usersvc/config"
	"usersvc/internal/delivery/http/middleware"
	"usersvc/internal/delivery/http/response"
	"usersvc/internal/delivery/http/router"
	"usersvc/internal/delivery/http/router/handler"
	"usersvc/internal/domain/entity"
	domainerrors "usersvc/internal/domain/errors"
	"usersvc/internal/domain/result"
	"usersvc/internal/domain/service"
	"usersvc/internal/errors"
	"usersvc/internal/infra/validation"
	mockservice "usersvc/internal/mocks/service"
	mockusecase "usersvc/internal/mocks/usecase"
	"usersvc/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

const (
	adminToken    = "admin-token"
	providerToken = "provider-token"
)

type serverFixtures struct {
	echo        *echo.Echo
	login       *mockusecase.MockLoginUsecase
	update      *mockusecase.MockUpdateCredentialsUsecase
	recovery    *mockusecase.MockRecoverPasswordUsecase
	users       *mockusecase.MockUserUsecase
	createUser  *mockusecase.MockCreateUserUsecase
	departments *mockusecase.MockDepartmentUsecase
	adminID     uuid.UUID
	providerID  uuid.UUID
}

func newTestServer(t *testing.T) *serverFixtures {
	t.Helper()

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "100KB"
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	validator, err := validation.New(cfg)
	require.NoError(t, err)

	f := &serverFixtures{
		login:       mockusecase.NewMockLoginUsecase(t),
		update:      mockusecase.NewMockUpdateCredentialsUsecase(t),
		recovery:    mockusecase.NewMockRecoverPasswordUsecase(t),
		users:       mockusecase.NewMockUserUsecase(t),
		createUser:  mockusecase.NewMockCreateUserUsecase(t),
		departments: mockusecase.NewMockDepartmentUsecase(t),
		adminID:     uuid.New(),
		providerID:  uuid.New(),
	}

	tokens := mockservice.NewMockTokenAuthenticationService(t)
	tokens.EXPECT().ValidateToken(adminToken).
		Return(&service.Claims{UserID: f.adminID, Email: "admin@example.com", Role: entity.RoleAdmin}, nil).Maybe()
	tokens.EXPECT().ValidateToken(providerToken).
		Return(&service.Claims{UserID: f.providerID, Email: "provider@example.com", Role: entity.RoleProvider}, nil).Maybe()
	tokens.EXPECT().ValidateToken(mock.Anything).Return(nil, domainerrors.ErrTokenInvalid).Maybe()

	f.echo = newEcho(ServerParams{
		Lc:        fxtest.NewLifecycle(t),
		Cfg:       cfg,
		Logger:    logger,
		Validator: validator,
		RouterParams: router.RouterParams{
			AuthHandler: handler.NewAuthHandler(handler.AuthHandlerParams{
				Login:             f.login,
				UpdateCredentials: f.update,
				RecoverPassword:   f.recovery,
			}),
			UserHandler: handler.NewUserHandler(handler.UserHandlerParams{
				Users:      f.users,
				CreateUser: f.createUser,
			}),
			DepartmentHandler: handler.NewDepartmentHandler(f.departments),
			AuthMiddleware:    middleware.NewAuthMiddleware(tokens),
		},
	})

	return f
}

func (f *serverFixtures) do(method, target, token, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) *response.ErrorInfo {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	require.NotNil(t, body.Meta)
	assert.NotEmpty(t, body.Meta.RequestID)

	return body.Error
}

func TestHealth(t *testing.T) {
	f := newTestServer(t)

	rec := f.do(http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestLogin(t *testing.T) {
	f := newTestServer(t)
	user := &entity.User{ID: uuid.New(), Name: "Ana", Role: entity.RoleProvider, Active: true, CreatedAt: time.Now()}
	f.login.EXPECT().
		Execute(mock.Anything, usecase.LoginCommand{Email: "ana@example.com", Password: "Secret123"}).
		Return(result.Success(&usecase.LoginResponse{User: user, AccessToken: "jwt", ExpiresIn: 3600}))

	rec := f.do(http.MethodPost, "/auth/login", "", `{"email":"ana@example.com","password":"Secret123"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Data handler.LoginResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "jwt", body.Data.AccessToken)
	assert.Equal(t, 3600, body.Data.ExpiresIn)
	assert.Equal(t, user.ID, body.Data.User.ID)
	assert.NotContains(t, rec.Body.String(), "Secret123")
}

func TestLogin_FailureKinds(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "invalid credentials",
			err:        domainerrors.ErrInvalidCredentials,
			wantStatus: http.StatusUnauthorized,
			wantCode:   "INVALID_CREDENTIALS",
		},
		{
			name:       "validation",
			err:        domainerrors.ErrValidationFailed.WithDetails("email is required"),
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
		},
		{
			name:       "infrastructure",
			err:        domainerrors.Infrastructure(errors.New("dial tcp 10.0.0.1:5432"), "failed to load credentials"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestServer(t)
			f.login.EXPECT().Execute(mock.Anything, mock.Anything).Return(result.Failure[*usecase.LoginResponse](tt.err))

			rec := f.do(http.MethodPost, "/auth/login", "", `{"email":"a@b.co","password":"x"}`)

			assert.Equal(t, tt.wantStatus, rec.Code)
			info := decodeError(t, rec)
			assert.Equal(t, tt.wantCode, info.Code)
			assert.NotContains(t, rec.Body.String(), "10.0.0.1")
		})
	}
}

func TestLogin_MalformedBody(t *testing.T) {
	f := newTestServer(t)

	rec := f.do(http.MethodPost, "/auth/login", "", `{"email":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", decodeError(t, rec).Code)
}

func TestRecoverPassword_UnknownEmail(t *testing.T) {
	f := newTestServer(t)
	f.recovery.EXPECT().Execute(mock.Anything, usecase.RecoverPasswordCommand{Email: "nobody@example.com"}).
		Return(result.Failure[*usecase.RecoverPasswordResponse](domainerrors.ErrCredentialsNotFound))

	rec := f.do(http.MethodPost, "/auth/recover-password", "", `{"email":"nobody@example.com"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "CREDENTIALS_NOT_FOUND", decodeError(t, rec).Code)
}

func TestAuthentication(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "not a bearer token", header: "Basic abc"},
		{name: "unknown token", header: "Bearer nope"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestServer(t)
			req := httptest.NewRequest(http.MethodGet, "/users", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			f.echo.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			info := decodeError(t, rec)
			assert.Equal(t, "TOKEN_INVALID", info.Code)
			assert.Empty(t, info.Details)
		})
	}
}

func TestCreateUser_RequiresAdmin(t *testing.T) {
	f := newTestServer(t)

	rec := f.do(http.MethodPost, "/users", providerToken, `{"name":"Bob"}`)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "FORBIDDEN", decodeError(t, rec).Code)
	f.createUser.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestCreateUser(t *testing.T) {
	f := newTestServer(t)
	departmentID := uuid.New()
	newID := uuid.New()
	f.createUser.EXPECT().
		Execute(mock.Anything, mock.MatchedBy(func(cmd usecase.CreateUserCommand) bool {
			return cmd.Email == "bob@example.com" && cmd.DepartmentID == departmentID && cmd.Role == entity.RoleProvider
		})).
		Return(result.Success(&usecase.CreateUserResponse{ID: newID}))

	body := `{"name":"Bob","phone":"+584242374999","role":"provider","departmentId":"` + departmentID.String() +
		`","email":"bob@example.com","password":"Secret123"}`
	rec := f.do(http.MethodPost, "/users", adminToken, body)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), newID.String())
}

func TestCreateUser_ValidationDetailsReachClient(t *testing.T) {
	f := newTestServer(t)
	f.createUser.EXPECT().Execute(mock.Anything, mock.Anything).
		Return(result.Failure[*usecase.CreateUserResponse](domainerrors.Validation(errors.New("phone must be a valid E.164 phone number"))))

	rec := f.do(http.MethodPost, "/users", adminToken, `{"name":"Bob"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "phone must be a valid E.164 phone number", decodeError(t, rec).Details)
}

func TestUpdateCredentials_SelfOrAdmin(t *testing.T) {
	t.Run("provider updating someone else is forbidden", func(t *testing.T) {
		f := newTestServer(t)

		rec := f.do(http.MethodPut, "/auth/credentials/"+uuid.NewString(), providerToken,
			`{"email":"x@example.com","password":"Secret123"}`)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		f.update.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
	})

	t.Run("provider updating self", func(t *testing.T) {
		f := newTestServer(t)
		f.update.EXPECT().
			Execute(mock.Anything, usecase.UpdateCredentialsCommand{
				UserID:          f.providerID,
				Email:           "new@example.com",
				Password:        "Secret123",
				CurrentPassword: "Old12345",
			}).
			Return(result.Success(&usecase.UpdateCredentialsResponse{UserID: f.providerID, Email: "new@example.com"}))

		rec := f.do(http.MethodPut, "/auth/credentials/"+f.providerID.String(), providerToken,
			`{"email":"new@example.com","password":"Secret123","currentPassword":"Old12345"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"email":"new@example.com"`)
		assert.NotContains(t, rec.Body.String(), "Secret123")
	})

	t.Run("admin updating another user", func(t *testing.T) {
		f := newTestServer(t)
		target := uuid.New()
		f.update.EXPECT().
			Execute(mock.Anything, mock.MatchedBy(func(cmd usecase.UpdateCredentialsCommand) bool { return cmd.UserID == target })).
			Return(result.Failure[*usecase.UpdateCredentialsResponse](domainerrors.ErrEmailAlreadyInUse))

		rec := f.do(http.MethodPut, "/auth/credentials/"+target.String(), adminToken,
			`{"email":"taken@example.com","password":"Secret123"}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "EMAIL_ALREADY_IN_USE", decodeError(t, rec).Code)
	})
}

func TestGetUserByID(t *testing.T) {
	f := newTestServer(t)
	id := uuid.New()
	f.users.EXPECT().GetUserByID(mock.Anything, id).
		Return(result.Success(&entity.User{ID: id, Name: "Ana", Role: entity.RoleProvider}))

	rec := f.do(http.MethodGet, "/users/"+id.String(), providerToken, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"Ana"`)
}

func TestGetUserByID_MalformedID(t *testing.T) {
	f := newTestServer(t)

	rec := f.do(http.MethodGet, "/users/not-a-uuid", providerToken, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "id must be a UUID", decodeError(t, rec).Details)
}

func TestGetAllUsers_BindsPaging(t *testing.T) {
	f := newTestServer(t)
	f.users.EXPECT().GetAllUsers(mock.Anything, usecase.GetAllUsersQuery{Page: 2, PerPage: 5}).
		Return(result.Success([]*entity.User{{ID: uuid.New()}, {ID: uuid.New()}}))

	rec := f.do(http.MethodGet, "/users?page=2&perPage=5", providerToken, "")

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Data []handler.UserResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Data, 2)
}

func TestGetAllUsers_MalformedPaging(t *testing.T) {
	f := newTestServer(t)

	rec := f.do(http.MethodGet, "/users?page=abc", providerToken, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateUserByID(t *testing.T) {
	f := newTestServer(t)
	name := "Renamed"
	f.users.EXPECT().
		UpdateUserByID(mock.Anything, usecase.UpdateUserCommand{ID: f.providerID, Name: &name}).
		Return(result.Success(&usecase.UpdateUserResponse{ID: f.providerID}))

	rec := f.do(http.MethodPatch, "/users/"+f.providerID.String(), providerToken, `{"name":"Renamed"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestToggleActivity_RequiresAdmin(t *testing.T) {
	f := newTestServer(t)
	id := uuid.New()

	rec := f.do(http.MethodPatch, "/users/"+id.String()+"/toggle-activity", providerToken, "")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	f.users.EXPECT().ToggleActivityUserByID(mock.Anything, id).
		Return(result.Success(&usecase.ToggleActivityResponse{ID: id, Active: false}))

	rec = f.do(http.MethodPatch, "/users/"+id.String()+"/toggle-activity", adminToken, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"active":false`)
}

func TestDepartments(t *testing.T) {
	f := newTestServer(t)
	f.departments.EXPECT().CreateDepartment(mock.Anything, usecase.CreateDepartmentCommand{Name: "Sales"}).
		Return(result.Failure[*usecase.CreateDepartmentResponse](domainerrors.ErrDepartmentAlreadyExists))
	f.departments.EXPECT().GetAllDepartments(mock.Anything).
		Return(result.Failure[[]*entity.Department](domainerrors.ErrDepartmentsNotFound))

	rec := f.do(http.MethodPost, "/departments", adminToken, `{"name":"Sales"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = f.do(http.MethodGet, "/departments", providerToken, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "DEPARTMENTS_NOT_FOUND", decodeError(t, rec).Code)
}

func TestUnknownRoute(t *testing.T) {
	f := newTestServer(t)

	rec := f.do(http.MethodGet, "/nope", "", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "HTTP_ERROR", decodeError(t, rec).Code)
}
