package app

import (
	"context"
	"fmt"
	"sync"

	authService "github.com/lifebook/lifebook/internal/auth/service"
	authUsecase "github.com/lifebook/lifebook/internal/auth/usecase"
	"github.com/lifebook/lifebook/internal/database"
	userRepository "github.com/lifebook/lifebook/internal/user/repository"
	userUsecase "github.com/lifebook/lifebook/internal/user/usecase"
)

// authComponents holds the authentication and user dependencies of the
// container.
type authComponents struct {
	passwordService authService.PasswordService
	tokenService    authService.TokenService
	userRepo        userUsecase.UserRepository
	authUseCase     authUsecase.UseCase
	userUseCase     userUsecase.UseCase

	passwordServiceInit sync.Once
	tokenServiceInit    sync.Once
	userRepoInit        sync.Once
	authUseCaseInit     sync.Once
	userUseCaseInit     sync.Once
}

// PasswordService returns the password hashing service.
func (c *Container) PasswordService() authService.PasswordService {
	c.passwordServiceInit.Do(func() {
		c.passwordService = authService.NewPasswordService()
	})
	return c.passwordService
}

// TokenService returns the session token service. The context is used for a
// possible KMS round trip when the signing secret is stored encrypted.
func (c *Container) TokenService(ctx context.Context) (authService.TokenService, error) {
	c.tokenServiceInit.Do(func() {
		signingSecret, err := authService.LoadSigningSecret(ctx, c.config)
		if err != nil {
			c.initErrors["tokenService"] = fmt.Errorf("failed to load signing secret: %w", err)
			return
		}
		c.tokenService = authService.NewTokenService(signingSecret, c.config.AuthTokenExpiration)
	})
	if storedErr, exists := c.initErrors["tokenService"]; exists {
		return nil, storedErr
	}
	return c.tokenService, nil
}

// UserRepository returns the user repository matching the configured driver.
func (c *Container) UserRepository() (userUsecase.UserRepository, error) {
	c.userRepoInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			c.initErrors["userRepo"] = fmt.Errorf("failed to get database for user repository: %w", err)
			return
		}

		switch c.config.DBDriver {
		case database.DriverMySQL:
			c.userRepo = userRepository.NewMySQLUserRepository(db)
		case database.DriverPostgres:
			c.userRepo = userRepository.NewPostgreSQLUserRepository(db)
		default:
			c.initErrors["userRepo"] = fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
		}
	})
	if storedErr, exists := c.initErrors["userRepo"]; exists {
		return nil, storedErr
	}
	return c.userRepo, nil
}

// AuthUseCase returns the authentication use case.
func (c *Container) AuthUseCase(ctx context.Context) (authUsecase.UseCase, error) {
	c.authUseCaseInit.Do(func() {
		userRepo, err := c.UserRepository()
		if err != nil {
			c.initErrors["authUseCase"] = fmt.Errorf("failed to get user repository for auth use case: %w", err)
			return
		}

		tokenService, err := c.TokenService(ctx)
		if err != nil {
			c.initErrors["authUseCase"] = fmt.Errorf("failed to get token service for auth use case: %w", err)
			return
		}

		c.authUseCase = authUsecase.NewAuthUseCase(userRepo, c.PasswordService(), tokenService)
	})
	if storedErr, exists := c.initErrors["authUseCase"]; exists {
		return nil, storedErr
	}
	return c.authUseCase, nil
}

// UserUseCase returns the user administration use case.
func (c *Container) UserUseCase() (userUsecase.UseCase, error) {
	c.userUseCaseInit.Do(func() {
		userRepo, err := c.UserRepository()
		if err != nil {
			c.initErrors["userUseCase"] = fmt.Errorf("failed to get user repository for user use case: %w", err)
			return
		}
		c.userUseCase = userUsecase.NewUserUseCase(userRepo)
	})
	if storedErr, exists := c.initErrors["userUseCase"]; exists {
		return nil, storedErr
	}
	return c.userUseCase, nil
}
