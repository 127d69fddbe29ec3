// Package domain defines the core user domain entities and types.
package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/lifebook/lifebook/internal/errors"
)

// User represents an account in the system. PasswordHash and PasswordSalt are
// hex-encoded PBKDF2 outputs; the plain password is never stored.
type User struct {
	ID           uuid.UUID
	Username     string
	Email        string
	PasswordHash string
	PasswordSalt string
	IsAdmin      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Domain-specific errors for user operations.
var (
	// ErrUserNotFound indicates the requested user does not exist.
	ErrUserNotFound = errors.Wrap(errors.ErrNotFound, "user not found")

	// ErrUserAlreadyExists indicates a user with the same username or email already exists.
	ErrUserAlreadyExists = errors.Wrap(errors.ErrConflict, "user already exists")
)
