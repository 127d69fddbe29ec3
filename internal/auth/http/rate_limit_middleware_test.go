package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	authDomain "github.com/lifebook/lifebook/internal/auth/domain"
)

func TestLoginRateLimitMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	router := gin.New()
	router.POST("/login", LoginRateLimitMiddleware(ctx, 1, 1, testLogger()), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	// burst of 1: first request passes, second is throttled
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
}

func TestRateLimitMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	principal := &authDomain.Principal{UserID: uuid.Must(uuid.NewV7())}
	authUC := new(MockAuthUseCase)
	authUC.On("Authenticate", mock.Anything, "token").Return(principal, nil)

	router := gin.New()
	router.GET("/items",
		RequireLogin(authUC, testLogger()),
		RateLimitMiddleware(ctx, 1, 2, testLogger()),
		func(c *gin.Context) { c.Status(http.StatusOK) },
	)

	get := func() int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/items", nil)
		req.Header.Set("Authorization", "Bearer token")
		router.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, get())
	assert.Equal(t, http.StatusOK, get())
	assert.Equal(t, http.StatusTooManyRequests, get())
}

func TestRateLimitMiddleware_NoPrincipal(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	router := gin.New()
	// misconfigured route: rate limiter without the auth gate
	router.GET("/items", RateLimitMiddleware(ctx, 1, 1, testLogger()), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/items", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
