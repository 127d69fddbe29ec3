package service

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"

	"golang.org/x/crypto/pbkdf2"

	apperrors "github.com/lifebook/lifebook/internal/errors"
)

const (
	pbkdf2Iterations = 150_000
	pbkdf2KeyLength  = 32
	saltLength       = 16
)

// passwordService implements PasswordService using PBKDF2-SHA256.
type passwordService struct{}

// NewPasswordService creates a new PasswordService instance using PBKDF2-SHA256.
func NewPasswordService() PasswordService {
	return &passwordService{}
}

// HashPassword derives a PBKDF2-SHA256 hash from the plain password with a
// fresh 16-byte random salt. Hash and salt are returned hex-encoded.
func (p *passwordService) HashPassword(plainPassword string) (string, string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", "", apperrors.Wrap(err, "failed to generate password salt")
	}

	hash := pbkdf2.Key([]byte(plainPassword), salt, pbkdf2Iterations, pbkdf2KeyLength, sha256.New)

	return hex.EncodeToString(hash), hex.EncodeToString(salt), nil
}

// ComparePassword re-derives the hash from the plain password and the stored
// salt and compares it against the stored hash in constant time. Corrupt
// stored values compare as a mismatch.
func (p *passwordService) ComparePassword(plainPassword string, passwordHash string, passwordSalt string) bool {
	salt, err := hex.DecodeString(passwordSalt)
	if err != nil {
		return false
	}
	storedHash, err := hex.DecodeString(passwordHash)
	if err != nil {
		return false
	}

	hash := pbkdf2.Key([]byte(plainPassword), salt, pbkdf2Iterations, pbkdf2KeyLength, sha256.New)

	return subtle.ConstantTimeCompare(hash, storedHash) == 1
}
