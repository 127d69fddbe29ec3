// Package http provides HTTP handlers for user account administration.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lifebook/lifebook/internal/httputil"
	"github.com/lifebook/lifebook/internal/user/http/dto"
	"github.com/lifebook/lifebook/internal/user/usecase"
)

// UserHandler handles user administration HTTP requests
type UserHandler struct {
	userUseCase usecase.UseCase
	logger      *slog.Logger
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userUseCase usecase.UseCase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
		logger:      logger,
	}
}

// ListUsersHandler returns a page of accounts, newest first.
// GET /v1/users - Administrators only (enforced by middleware).
func (h *UserHandler) ListUsersHandler(c *gin.Context) {
	params := httputil.ParseQuery(c.Request.URL.RawQuery)
	page, limit := httputil.ParsePagination(params)

	output, err := h.userUseCase.ListUsers(c.Request.Context(), page, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToListUsersResponse(output))
}
