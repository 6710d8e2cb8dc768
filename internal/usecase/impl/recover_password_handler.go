package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "usersvc/internal/delivery/context"
	"usersvc/internal/domain/entity"
	domainerrors "usersvc/internal/domain/errors"
	"usersvc/internal/domain/repository"
	"usersvc/internal/domain/result"
	"usersvc/internal/domain/service"
	"usersvc/internal/usecase"

	"go.uber.org/fx"
)

const recoverySubject = "Your password has been reset"

type recoverPasswordHandler struct {
	credentialsRepo repository.CredentialsRepository
	crypto          service.CryptoService
	secrets         service.SecretGenerator
	notifier        service.CredentialNotifier
	logger          *slog.Logger
}

// RecoverPasswordHandlerParams holds dependencies for the handler, injected by Fx.
type RecoverPasswordHandlerParams struct {
	fx.In

	CredentialsRepo repository.CredentialsRepository
	Crypto          service.CryptoService
	Secrets         service.SecretGenerator
	Notifier        service.CredentialNotifier
	Logger          *slog.Logger
}

func NewRecoverPasswordHandler(params RecoverPasswordHandlerParams) usecase.RecoverPasswordUsecase {
	return &recoverPasswordHandler{
		credentialsRepo: params.CredentialsRepo,
		crypto:          params.Crypto,
		secrets:         params.Secrets,
		notifier:        params.Notifier,
		logger:          params.Logger,
	}
}

func (h *recoverPasswordHandler) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, h.logger)
}

// Execute overwrites the password of the account owning cmd.Email with a
// generated temporary password and mails it to that address.
//
// The lookup and the write are not transactional: two concurrent recoveries
// for the same email both succeed and the later write wins.
func (h *recoverPasswordHandler) Execute(ctx context.Context, cmd usecase.RecoverPasswordCommand) result.Result[*usecase.RecoverPasswordResponse] {
	email := entity.NormalizeEmail(cmd.Email)

	found, err := h.credentialsRepo.GetCredentialsByEmail(ctx, email)
	if err != nil {
		return h.fail(ctx, email, domainerrors.Infrastructure(err, "failed to load credentials by email"))
	}
	credentials, ok := found.Get()
	if !ok {
		h.log(ctx).Warn("Password recovery for unknown email", slog.String("email", email))

		return result.Failure[*usecase.RecoverPasswordResponse](domainerrors.ErrCredentialsNotFound)
	}

	temporary, err := h.secrets.TemporaryPassword()
	if err != nil {
		return h.fail(ctx, email, domainerrors.Infrastructure(err, "failed to generate temporary password"))
	}

	hash, err := h.crypto.Hash(ctx, temporary)
	if err != nil {
		return h.fail(ctx, email, domainerrors.Infrastructure(err, "failed to hash temporary password"))
	}

	if err := h.credentialsRepo.UpdateCredentials(ctx, credentials.UserID, credentials.Email, hash); err != nil {
		return h.fail(ctx, email, domainerrors.Infrastructure(err, "failed to store temporary password"))
	}

	if err := h.notifier.Notify(ctx, recoveryMessage(credentials.Email, temporary)); err != nil {
		return h.fail(ctx, email, domainerrors.Infrastructure(err, "failed to send recovery mail"))
	}

	h.log(ctx).Info("Password recovered", slog.Any("userID", credentials.UserID))

	return result.Success(&usecase.RecoverPasswordResponse{Email: credentials.Email})
}

func (h *recoverPasswordHandler) fail(ctx context.Context, email string, err error) result.Result[*usecase.RecoverPasswordResponse] {
	h.log(ctx).Error("Password recovery failed", slog.String("email", email), slog.Any("error", err))

	return result.Failure[*usecase.RecoverPasswordResponse](err)
}

func recoveryMessage(to, temporary string) service.RecoveryMessage {
	return service.RecoveryMessage{
		To:      to,
		Subject: recoverySubject,
		Body: fmt.Sprintf("Hello,\n\nA password recovery was requested for %s.\n"+
			"Your temporary password is: %s\n\n"+
			"Sign in with it and change it right away. If you did not ask for this, contact your administrator.\n", to, temporary),
	}
}
