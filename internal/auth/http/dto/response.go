package dto

import (
	"time"

	"github.com/google/uuid"
)

// RegisterResponse represents the API response for a newly created account.
// It excludes the password hash and salt.
type RegisterResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginResponse represents the API response for a successful login
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
