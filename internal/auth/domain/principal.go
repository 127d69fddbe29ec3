// Package domain defines the authentication domain models: verified request
// identities and session token claims.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Principal is the identity attached to a request after the auth gate has
// verified its token and confirmed the subject still exists. It is built
// fresh for every request and never persisted.
type Principal struct {
	UserID  uuid.UUID
	IsAdmin bool
}

// TokenClaims are the verified contents of a session token.
type TokenClaims struct {
	UserID    uuid.UUID
	IsAdmin   bool
	ExpiresAt time.Time
}

// Credentials is the raw login input.
type Credentials struct {
	Username string
	Password string
}

// Session is the result of a successful login.
type Session struct {
	Token     string
	ExpiresAt time.Time
}
