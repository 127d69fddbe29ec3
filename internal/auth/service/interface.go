// Package service provides technical services for authentication operations.
//
// This package implements password hashing with PBKDF2-SHA256 and stateless
// session tokens signed with HMAC-SHA256 (JWT).
package service

import (
	"github.com/google/uuid"

	"github.com/lifebook/lifebook/internal/auth/domain"
)

// PasswordService defines operations for password hashing and validation.
// Implementations must use cryptographically secure random salt generation
// and a slow key-derivation function.
type PasswordService interface {
	// HashPassword derives a hash from the plain password with a fresh random
	// salt. Both values are returned hex-encoded for storage.
	HashPassword(plainPassword string) (passwordHash string, passwordSalt string, err error)

	// ComparePassword re-derives the hash from the plain password and the
	// stored salt and compares it against the stored hash in constant time.
	ComparePassword(plainPassword string, passwordHash string, passwordSalt string) bool
}

// TokenService defines operations for session token issuance and verification.
type TokenService interface {
	// Sign issues a signed token for the subject. Returns the token and its
	// expiration time.
	Sign(userID uuid.UUID, isAdmin bool) (domain.Session, error)

	// VerifyAndDecode checks the token signature and expiry and returns the
	// embedded claims. Signature and expiry failures are indistinguishable:
	// both return domain.ErrInvalidToken.
	VerifyAndDecode(token string) (domain.TokenClaims, error)
}
