// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import "context"

// CryptoService hashes secrets one way and compares a plaintext against a hash.
// Both operations are deliberately slow. Implementations may block while waiting
// for capacity and must then honour ctx.
type CryptoService interface {
	// Hash generates a salted hash from a plaintext secret.
	Hash(ctx context.Context, plaintext string) (string, error)

	// Compare reports whether plaintext matches hash. A mismatch is (false, nil);
	// the error is reserved for faults such as a malformed hash or a cancelled ctx.
	Compare(ctx context.Context, plaintext, hash string) (bool, error)
}
