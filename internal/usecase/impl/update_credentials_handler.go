package impl

import (
	"context"
	"log/slog"

	"usersvc/config"
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

type updateCredentialsHandler struct {
	credentialsRepo        repository.CredentialsRepository
	crypto                 service.CryptoService
	validator              service.CommandValidator
	verifier               credentialVerifier
	requireCurrentPassword bool
	logger                 *slog.Logger
}

// UpdateCredentialsHandlerParams holds dependencies for the handler, injected by Fx.
type UpdateCredentialsHandlerParams struct {
	fx.In

	CredentialsRepo repository.CredentialsRepository
	Crypto          service.CryptoService
	Validator       service.CommandValidator
	Config          *config.Config
	Logger          *slog.Logger
}

func NewUpdateCredentialsHandler(params UpdateCredentialsHandlerParams) usecase.UpdateCredentialsUsecase {
	requireCurrentPassword := true
	if params.Config != nil && params.Config.Auth != nil {
		requireCurrentPassword = params.Config.Auth.RequireCurrentPassword
	}

	return &updateCredentialsHandler{
		credentialsRepo:        params.CredentialsRepo,
		crypto:                 params.Crypto,
		validator:              params.Validator,
		verifier:               newCredentialVerifier(params.CredentialsRepo, params.Crypto),
		requireCurrentPassword: requireCurrentPassword,
		logger:                 params.Logger,
	}
}

func (h *updateCredentialsHandler) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, h.logger)
}

// Execute replaces the email and password of cmd.UserID. Nothing is written
// unless every check passes, and the write is a single repository call.
func (h *updateCredentialsHandler) Execute(ctx context.Context, cmd usecase.UpdateCredentialsCommand) result.Result[*usecase.UpdateCredentialsResponse] {
	found, err := h.credentialsRepo.GetCredentialsByUserID(ctx, cmd.UserID)
	if err != nil {
		return h.fail(ctx, cmd, domainerrors.Infrastructure(err, "failed to load credentials by user id"))
	}
	current, ok := found.Get()
	if !ok {
		return h.fail(ctx, cmd, domainerrors.ErrCredentialsNotFound)
	}

	cmd.Email = entity.NormalizeEmail(cmd.Email)
	if err := h.validator.Validate(cmd); err != nil {
		return h.fail(ctx, cmd, domainerrors.Validation(err))
	}

	if h.requiresCurrentPassword(ctx, cmd.UserID) {
		if verified := h.verifier.verify(ctx, current, cmd.CurrentPassword); verified.IsFailure() {
			return h.fail(ctx, cmd, verified.Err())
		}
	}

	if cmd.Email != current.Email {
		owner, err := h.credentialsRepo.GetCredentialsByEmail(ctx, cmd.Email)
		if err != nil {
			return h.fail(ctx, cmd, domainerrors.Infrastructure(err, "failed to check email ownership"))
		}
		if other, taken := owner.Get(); taken && other.UserID != cmd.UserID {
			return h.fail(ctx, cmd, domainerrors.ErrEmailAlreadyInUse)
		}
	}

	hash, err := h.crypto.Hash(ctx, cmd.Password)
	if err != nil {
		return h.fail(ctx, cmd, domainerrors.Infrastructure(err, "failed to hash new password"))
	}

	if err := h.credentialsRepo.UpdateCredentials(ctx, cmd.UserID, cmd.Email, hash); err != nil {
		if kind := domainerrors.KindOf(err); kind == domainerrors.KindConflict || kind == domainerrors.KindNotFound {
			return h.fail(ctx, cmd, err)
		}

		return h.fail(ctx, cmd, domainerrors.Infrastructure(err, "failed to update credentials"))
	}

	h.log(ctx).Info("Credentials updated", slog.Any("userID", cmd.UserID), slog.Bool("emailChanged", cmd.Email != current.Email))

	return result.Success(&usecase.UpdateCredentialsResponse{UserID: cmd.UserID, Email: cmd.Email})
}

// requiresCurrentPassword reports whether the prior password must be presented.
// An admin acting on another account has no way to know it.
func (h *updateCredentialsHandler) requiresCurrentPassword(ctx context.Context, userID uuid.UUID) bool {
	if !h.requireCurrentPassword {
		return false
	}
	principal, ok := deliverycontext.GetPrincipal(ctx)

	return !ok || !principal.IsAdmin() || principal.UserID == userID
}

func (h *updateCredentialsHandler) fail(ctx context.Context, cmd usecase.UpdateCredentialsCommand, err error) result.Result[*usecase.UpdateCredentialsResponse] {
	h.log(ctx).Log(ctx, failureLevel(err), "Update credentials failed", slog.Any("userID", cmd.UserID), slog.Any("error", err))

	return result.Failure[*usecase.UpdateCredentialsResponse](err)
}
