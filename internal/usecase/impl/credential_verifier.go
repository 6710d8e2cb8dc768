// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"

	"usersvc/internal/domain/entity"
	domainerrors "usersvc/internal/domain/errors"
	"usersvc/internal/domain/repository"
	"usersvc/internal/domain/result"
	"usersvc/internal/domain/service"
)

// credentialVerifier checks a plaintext password against stored credentials.
// It is shared by Login and by the current-password check of UpdateCredentials,
// so both answer a mismatch with the same Unauthorized failure.
type credentialVerifier struct {
	credentialsRepo repository.CredentialsRepository
	crypto          service.CryptoService
}

func newCredentialVerifier(credentialsRepo repository.CredentialsRepository, crypto service.CryptoService) credentialVerifier {
	return credentialVerifier{credentialsRepo: credentialsRepo, crypto: crypto}
}

// verifyByEmail looks up the credentials for email and compares password.
// Unknown emails fail before any hashing work is done.
func (v credentialVerifier) verifyByEmail(ctx context.Context, email, password string) result.Result[*entity.Credentials] {
	email = entity.NormalizeEmail(email)
	if email == "" || password == "" {
		return result.Failure[*entity.Credentials](domainerrors.ErrInvalidCredentials)
	}

	found, err := v.credentialsRepo.GetCredentialsByEmail(ctx, email)
	if err != nil {
		return result.Failure[*entity.Credentials](domainerrors.Infrastructure(err, "failed to load credentials by email"))
	}

	credentials, ok := found.Get()
	if !ok {
		return result.Failure[*entity.Credentials](domainerrors.ErrInvalidCredentials)
	}

	return v.verify(ctx, credentials, password)
}

// verify compares password against already loaded credentials.
func (v credentialVerifier) verify(ctx context.Context, credentials *entity.Credentials, password string) result.Result[*entity.Credentials] {
	if password == "" {
		return result.Failure[*entity.Credentials](domainerrors.ErrInvalidCredentials)
	}

	matched, err := v.crypto.Compare(ctx, password, credentials.PasswordHash)
	if err != nil {
		return result.Failure[*entity.Credentials](domainerrors.Infrastructure(err, "failed to compare password"))
	}
	if !matched {
		return result.Failure[*entity.Credentials](domainerrors.ErrInvalidCredentials)
	}

	return result.Success(credentials)
}
