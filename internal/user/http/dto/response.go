// Package dto provides data transfer objects for the user HTTP layer.
package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/lifebook/lifebook/internal/user/domain"
	"github.com/lifebook/lifebook/internal/user/usecase"
)

// UserResponse represents the API response for a user account.
// It excludes the password hash and salt.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ListUsersResponse represents a page of user accounts
type ListUsersResponse struct {
	Items      []UserResponse `json:"items"`
	TotalCount int            `json:"total_count"`
	TotalPages int            `json:"total_pages"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
}

// ToUserResponse converts a domain User to a UserResponse DTO
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		IsAdmin:   user.IsAdmin,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// ToListUsersResponse converts a use case listing output to a response DTO
func ToListUsersResponse(output usecase.ListUsersOutput) ListUsersResponse {
	items := make([]UserResponse, 0, len(output.Items))
	for _, user := range output.Items {
		items = append(items, ToUserResponse(user))
	}

	return ListUsersResponse{
		Items:      items,
		TotalCount: output.TotalCount,
		TotalPages: output.TotalPages,
		Page:       output.Page,
		Limit:      output.Limit,
	}
}
