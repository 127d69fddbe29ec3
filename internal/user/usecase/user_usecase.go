// Package usecase implements the user account business logic.
package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/lifebook/lifebook/internal/httputil"
	"github.com/lifebook/lifebook/internal/user/domain"
)

// UserRepository interface defines user repository operations
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context, limit int, offset int) ([]*domain.User, error)
	Count(ctx context.Context) (int, error)
}

// ListUsersOutput is a page of user accounts.
type ListUsersOutput struct {
	Items      []*domain.User
	TotalCount int
	TotalPages int
	Page       int
	Limit      int
}

// UseCase defines the interface for user business logic operations
type UseCase interface {
	// ListUsers returns a page of accounts ordered by creation time, newest
	// first. Reserved for administrators; the HTTP layer enforces that.
	ListUsers(ctx context.Context, page int, limit int) (ListUsersOutput, error)

	// GetUserByID retrieves a single account.
	GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// UserUseCase handles user account business logic
type UserUseCase struct {
	userRepo UserRepository
}

// NewUserUseCase creates a new UserUseCase
func NewUserUseCase(userRepo UserRepository) *UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
	}
}

// ListUsers returns a page of accounts ordered by creation time, newest first.
func (uc *UserUseCase) ListUsers(ctx context.Context, page int, limit int) (ListUsersOutput, error) {
	if page < 1 {
		page = httputil.DefaultPage
	}
	if limit < 1 || limit > httputil.MaxLimit {
		limit = httputil.DefaultLimit
	}

	totalCount, err := uc.userRepo.Count(ctx)
	if err != nil {
		return ListUsersOutput{}, err
	}

	users, err := uc.userRepo.List(ctx, limit, (page-1)*limit)
	if err != nil {
		return ListUsersOutput{}, err
	}

	return ListUsersOutput{
		Items:      users,
		TotalCount: totalCount,
		TotalPages: httputil.TotalPages(totalCount, limit),
		Page:       page,
		Limit:      limit,
	}, nil
}

// GetUserByID retrieves a single account.
func (uc *UserUseCase) GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return uc.userRepo.GetByID(ctx, id)
}
