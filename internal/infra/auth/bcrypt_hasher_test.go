package auth

import (
	"context"
	"sync"
	"testing"

	"usersvc/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/crypto/bcrypt"
)

func newTestCryptoService(t *testing.T, slots int) *bcryptCryptoService {
	t.Helper()

	svc, err := NewBcryptCryptoService(&config.Config{
		Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost, MaxConcurrentHashes: slots},
	})
	require.NoError(t, err)

	return svc.(*bcryptCryptoService)
}

func TestBcryptCryptoService_HashAndCompare(t *testing.T) {
	svc := newTestCryptoService(t, 2)
	ctx := context.Background()

	hash, err := svc.Hash(ctx, "testpassword")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "testpassword", hash)

	matched, err := svc.Compare(ctx, "testpassword", hash)
	require.NoError(t, err)
	assert.True(t, matched)

	matched, err = svc.Compare(ctx, "wrong", hash)
	require.NoError(t, err)
	assert.False(t, matched)
}

func TestBcryptCryptoService_HashIsSalted(t *testing.T) {
	svc := newTestCryptoService(t, 1)

	first, err := svc.Hash(context.Background(), "testpassword")
	require.NoError(t, err)
	second, err := svc.Hash(context.Background(), "testpassword")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestBcryptCryptoService_MalformedHash(t *testing.T) {
	svc := newTestCryptoService(t, 1)

	matched, err := svc.Compare(context.Background(), "testpassword", "invalid_hash")

	assert.Error(t, err)
	assert.False(t, matched)
}

func TestBcryptCryptoService_PasswordTooLong(t *testing.T) {
	svc := newTestCryptoService(t, 1)

	_, err := svc.Hash(context.Background(), string(make([]byte, 73)))

	assert.ErrorIs(t, err, bcrypt.ErrPasswordTooLong)
}

func TestBcryptCryptoService_HonoursContextWhileWaiting(t *testing.T) {
	svc := newTestCryptoService(t, 1)
	require.NoError(t, svc.slots.Acquire(context.Background(), 1))
	defer svc.slots.Release(1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Hash(ctx, "testpassword")
	assert.ErrorIs(t, err, context.Canceled)

	_, err = svc.Compare(ctx, "testpassword", "hash")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBcryptCryptoService_Concurrent(t *testing.T) {
	defer goleak.VerifyNone(t)

	svc := newTestCryptoService(t, 2)
	hash, err := svc.Hash(context.Background(), "testpassword")
	require.NoError(t, err)

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()

			matched, err := svc.Compare(context.Background(), "testpassword", hash)
			assert.NoError(t, err)
			assert.True(t, matched)
		}()
	}
	wg.Wait()
}

func TestNewBcryptCryptoService_RejectsBadCost(t *testing.T) {
	_, err := NewBcryptCryptoService(&config.Config{Auth: &config.AuthConfig{BcryptCost: 99}})
	assert.Error(t, err)

	_, err = NewBcryptCryptoService(&config.Config{})
	assert.Error(t, err)
}
