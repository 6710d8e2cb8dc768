// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"context"

	"usersvc/config"
	"usersvc/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/semaphore"
)

// bcryptCryptoService implements service.CryptoService with bcrypt. Every hash
// or compare holds one slot of a weighted semaphore so a burst of logins
// cannot occupy every CPU at once.
type bcryptCryptoService struct {
	cost  int
	slots *semaphore.Weighted
}

// NewBcryptCryptoService is the constructor for bcryptCryptoService.
func NewBcryptCryptoService(cfg *config.Config) (service.CryptoService, error) {
	if cfg.Auth == nil {
		return nil, errors.New("auth config must be provided")
	}

	cost := cfg.Auth.BcryptCost
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, errors.Errorf("bcrypt cost %d out of range [%d, %d]", cost, bcrypt.MinCost, bcrypt.MaxCost)
	}

	slots := cfg.Auth.MaxConcurrentHashes
	if slots <= 0 {
		slots = 1
	}

	return &bcryptCryptoService{
		cost:  cost,
		slots: semaphore.NewWeighted(int64(slots)),
	}, nil
}

// Hash generates a salted hash from a plaintext secret.
func (s *bcryptCryptoService) Hash(ctx context.Context, plaintext string) (string, error) {
	if err := s.slots.Acquire(ctx, 1); err != nil {
		return "", errors.Wrap(err, "waiting for hashing capacity")
	}
	defer s.slots.Release(1)

	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), s.cost)
	if err != nil {
		return "", errors.Wrap(err, "bcrypt.GenerateFromPassword")
	}

	return string(hash), nil
}

// Compare reports whether plaintext matches hash.
func (s *bcryptCryptoService) Compare(ctx context.Context, plaintext, hash string) (bool, error) {
	if err := s.slots.Acquire(ctx, 1); err != nil {
		return false, errors.Wrap(err, "waiting for hashing capacity")
	}
	defer s.slots.Release(1)

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, errors.Wrap(err, "bcrypt.CompareHashAndPassword")
	}
}
