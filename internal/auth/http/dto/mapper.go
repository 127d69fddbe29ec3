package dto

import (
	authDomain "github.com/lifebook/lifebook/internal/auth/domain"
	authUseCase "github.com/lifebook/lifebook/internal/auth/usecase"
	userDomain "github.com/lifebook/lifebook/internal/user/domain"
)

// ToRegisterInput converts a RegisterRequest DTO to a use case input
func ToRegisterInput(req RegisterRequest) authUseCase.RegisterInput {
	return authUseCase.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	}
}

// ToCredentials converts a LoginRequest DTO to domain credentials
func ToCredentials(req LoginRequest) authDomain.Credentials {
	return authDomain.Credentials{
		Username: req.Username,
		Password: req.Password,
	}
}

// ToRegisterResponse converts a domain User to a RegisterResponse DTO.
// This enforces the boundary between internal domain models and external API contracts
func ToRegisterResponse(user *userDomain.User) RegisterResponse {
	return RegisterResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}

// ToLoginResponse converts a domain Session to a LoginResponse DTO
func ToLoginResponse(session authDomain.Session) LoginResponse {
	return LoginResponse{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
	}
}
