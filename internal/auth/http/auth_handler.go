package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lifebook/lifebook/internal/auth/http/dto"
	authUseCase "github.com/lifebook/lifebook/internal/auth/usecase"
	"github.com/lifebook/lifebook/internal/httputil"
)

// AuthHandler handles registration and login HTTP requests
type AuthHandler struct {
	authUseCase authUseCase.UseCase
	logger      *slog.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authUseCase authUseCase.UseCase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		logger:      logger,
	}
}

// RegisterHandler creates a new account.
// POST /v1/auth/register - No authentication required.
// Returns 201 Created with the new account, 409 on duplicate username or email.
func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	user, err := h.authUseCase.Register(c.Request.Context(), dto.ToRegisterInput(req))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	h.logger.Info("account registered", slog.String("user_id", user.ID.String()))

	c.JSON(http.StatusCreated, dto.ToRegisterResponse(user))
}

// LoginHandler verifies credentials and issues a session token.
// POST /v1/auth/login - No authentication required (this is the authentication endpoint).
// Returns 200 OK with token and expiration time, 401 on bad credentials.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	session, err := h.authUseCase.Login(c.Request.Context(), dto.ToCredentials(req))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToLoginResponse(session))
}
