// Package usecase implements authentication business logic: registration,
// login and request authentication.
package usecase

import (
	"context"
	"strings"

	validation "github.com/jellydator/validation"

	"github.com/google/uuid"

	"github.com/lifebook/lifebook/internal/auth/domain"
	authService "github.com/lifebook/lifebook/internal/auth/service"
	apperrors "github.com/lifebook/lifebook/internal/errors"
	userDomain "github.com/lifebook/lifebook/internal/user/domain"
	userUseCase "github.com/lifebook/lifebook/internal/user/usecase"
	appValidation "github.com/lifebook/lifebook/internal/validation"
)

// RegisterInput contains the input data for account registration
type RegisterInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UseCase defines the interface for authentication business logic operations
type UseCase interface {
	// Register creates a new non-administrator account.
	Register(ctx context.Context, input RegisterInput) (*userDomain.User, error)

	// RegisterAdmin creates a new administrator account. Not exposed over
	// HTTP; used by the create-admin CLI command.
	RegisterAdmin(ctx context.Context, input RegisterInput) (*userDomain.User, error)

	// Login verifies credentials and issues a session token. Unknown
	// usernames and wrong passwords are indistinguishable.
	Login(ctx context.Context, credentials domain.Credentials) (domain.Session, error)

	// Authenticate verifies a session token and confirms its subject still
	// exists. Returns the request principal.
	Authenticate(ctx context.Context, token string) (*domain.Principal, error)
}

// AuthUseCase handles authentication business logic
type AuthUseCase struct {
	userRepo        userUseCase.UserRepository
	passwordService authService.PasswordService
	tokenService    authService.TokenService
}

// NewAuthUseCase creates a new AuthUseCase
func NewAuthUseCase(
	userRepo userUseCase.UserRepository,
	passwordService authService.PasswordService,
	tokenService authService.TokenService,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
	}
}

// validateRegisterInput validates the registration input using jellydator/validation
func (uc *AuthUseCase) validateRegisterInput(input RegisterInput) error {
	err := validation.ValidateStruct(&input,
		validation.Field(&input.Username,
			validation.Required.Error("username is required"),
			appValidation.NotBlank,
			appValidation.Username,
			validation.Length(3, 64).Error("username must be between 3 and 64 characters"),
		),
		validation.Field(&input.Email,
			validation.Required.Error("email is required"),
			appValidation.NotBlank,
			appValidation.Email,
			validation.Length(5, 255).Error("email must be between 5 and 255 characters"),
		),
		validation.Field(&input.Password,
			validation.Required.Error("password is required"),
			validation.Length(8, 128).Error("password must be between 8 and 128 characters"),
			appValidation.PasswordStrength{
				MinLength:     8,
				RequireUpper:  true,
				RequireLower:  true,
				RequireNumber: true,
			},
		),
	)
	return appValidation.WrapValidationError(err)
}

// Register creates a new non-administrator account.
func (uc *AuthUseCase) Register(ctx context.Context, input RegisterInput) (*userDomain.User, error) {
	return uc.register(ctx, input, false)
}

// RegisterAdmin creates a new administrator account.
func (uc *AuthUseCase) RegisterAdmin(ctx context.Context, input RegisterInput) (*userDomain.User, error) {
	return uc.register(ctx, input, true)
}

func (uc *AuthUseCase) register(ctx context.Context, input RegisterInput, isAdmin bool) (*userDomain.User, error) {
	if err := uc.validateRegisterInput(input); err != nil {
		return nil, err
	}

	passwordHash, passwordSalt, err := uc.passwordService.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &userDomain.User{
		ID:           uuid.Must(uuid.NewV7()),
		Username:     strings.TrimSpace(input.Username),
		Email:        strings.TrimSpace(strings.ToLower(input.Email)),
		PasswordHash: passwordHash,
		PasswordSalt: passwordSalt,
		IsAdmin:      isAdmin,
	}

	// Repository maps unique violations to userDomain.ErrUserAlreadyExists
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login verifies credentials and issues a session token.
func (uc *AuthUseCase) Login(ctx context.Context, credentials domain.Credentials) (domain.Session, error) {
	user, err := uc.userRepo.GetByUsername(ctx, strings.TrimSpace(credentials.Username))
	if err != nil {
		// Unknown username collapses into invalid credentials to prevent
		// user enumeration.
		return domain.Session{}, domain.ErrInvalidCredentials
	}

	if !uc.passwordService.ComparePassword(credentials.Password, user.PasswordHash, user.PasswordSalt) {
		return domain.Session{}, domain.ErrInvalidCredentials
	}

	return uc.tokenService.Sign(user.ID, user.IsAdmin)
}

// Authenticate verifies a session token and confirms its subject still exists.
func (uc *AuthUseCase) Authenticate(ctx context.Context, token string) (*domain.Principal, error) {
	claims, err := uc.tokenService.VerifyAndDecode(token)
	if err != nil {
		return nil, err
	}

	// A valid token for a deleted account must not pass the gate.
	user, err := uc.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		if apperrors.Is(err, userDomain.ErrUserNotFound) {
			return nil, domain.ErrSubjectGone
		}
		return nil, apperrors.Wrap(apperrors.ErrUnauthorized, "failed to verify token subject")
	}

	return &domain.Principal{
		UserID:  user.ID,
		IsAdmin: user.IsAdmin,
	}, nil
}
