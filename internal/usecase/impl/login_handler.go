package impl

import (
	"context"
	"log/slog"

	deliverycontext "usersvc/internal/delivery/context"
	domainerrors "usersvc/internal/domain/errors"
	"usersvc/internal/domain/repository"
	"usersvc/internal/domain/result"
	"usersvc/internal/domain/service"
	"usersvc/internal/usecase"

	"go.uber.org/fx"
)

type loginHandler struct {
	verifier     credentialVerifier
	userRepo     repository.UserRepository
	tokenService service.TokenAuthenticationService
	logger       *slog.Logger
}

// LoginHandlerParams holds dependencies for the login handler, injected by Fx.
type LoginHandlerParams struct {
	fx.In

	CredentialsRepo repository.CredentialsRepository
	UserRepo        repository.UserRepository
	Crypto          service.CryptoService
	TokenService    service.TokenAuthenticationService
	Logger          *slog.Logger
}

func NewLoginHandler(params LoginHandlerParams) usecase.LoginUsecase {
	return &loginHandler{
		verifier:     newCredentialVerifier(params.CredentialsRepo, params.Crypto),
		userRepo:     params.UserRepo,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

func (h *loginHandler) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, h.logger)
}

// Execute authenticates the caller. Every business failure is reported as
// Unauthorized so callers cannot tell an unknown email from a wrong password.
func (h *loginHandler) Execute(ctx context.Context, cmd usecase.LoginCommand) result.Result[*usecase.LoginResponse] {
	verified := h.verifier.verifyByEmail(ctx, cmd.Email, cmd.Password)
	if verified.IsFailure() {
		h.log(ctx).Log(ctx, failureLevel(verified.Err()), "Login failed", slog.String("email", cmd.Email), slog.Any("error", verified.Err()))

		return result.Failure[*usecase.LoginResponse](verified.Err())
	}
	credentials, _ := verified.Unwrap()

	found, err := h.userRepo.GetUserByID(ctx, credentials.UserID)
	if err != nil {
		h.log(ctx).Error("Failed to load user for login", slog.Any("userID", credentials.UserID), slog.Any("error", err))

		return result.Failure[*usecase.LoginResponse](domainerrors.Infrastructure(err, "failed to load user for login"))
	}

	user, ok := found.Get()
	if !ok {
		h.log(ctx).Error("Credentials reference a missing user", slog.Any("userID", credentials.UserID))

		return result.Failure[*usecase.LoginResponse](domainerrors.ErrInvalidCredentials)
	}

	token, err := h.tokenService.Authenticate(service.TokenSubject{
		UserID: user.ID,
		Email:  credentials.Email,
		Role:   user.Role,
	})
	if err != nil {
		h.log(ctx).Error("Failed to issue access token", slog.Any("userID", user.ID), slog.Any("error", err))

		return result.Failure[*usecase.LoginResponse](domainerrors.Infrastructure(err, "failed to issue access token"))
	}

	h.log(ctx).Debug("User logged in successfully", slog.Any("userID", user.ID))

	return result.Success(&usecase.LoginResponse{
		User:        user,
		AccessToken: token.AccessToken,
		ExpiresIn:   token.ExpiresIn,
	})
}

// failureLevel logs rejected input at Warn and faults of our own at Error.
func failureLevel(err error) slog.Level {
	if domainerrors.KindOf(err) == domainerrors.KindInfrastructure {
		return slog.LevelError
	}

	return slog.LevelWarn
}
