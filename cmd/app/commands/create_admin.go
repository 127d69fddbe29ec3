package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lifebook/lifebook/internal/app"
	authUsecase "github.com/lifebook/lifebook/internal/auth/usecase"
	"github.com/lifebook/lifebook/internal/config"
)

// RunCreateAdmin creates an administrator account. Administrators can list
// every registered account over the API; regular registration never grants
// the flag.
func RunCreateAdmin(ctx context.Context, username, email, password string) error {
	cfg := config.Load()

	container := app.NewContainer(cfg)
	logger := container.Logger()

	defer closeContainer(container, logger)

	authUseCase, err := container.AuthUseCase(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize auth use case: %w", err)
	}

	user, err := authUseCase.RegisterAdmin(ctx, authUsecase.RegisterInput{
		Username: username,
		Email:    email,
		Password: password,
	})
	if err != nil {
		return fmt.Errorf("failed to create administrator: %w", err)
	}

	logger.Info("administrator created",
		slog.String("user_id", user.ID.String()),
		slog.String("username", user.Username),
	)

	return nil
}
