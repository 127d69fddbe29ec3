package http

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	authDomain "github.com/lifebook/lifebook/internal/auth/domain"
	authUseCase "github.com/lifebook/lifebook/internal/auth/usecase"
	userDomain "github.com/lifebook/lifebook/internal/user/domain"
)

// MockAuthUseCase is a mock implementation of authUseCase.UseCase
type MockAuthUseCase struct {
	mock.Mock
}

func (m *MockAuthUseCase) Register(ctx context.Context, input authUseCase.RegisterInput) (*userDomain.User, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userDomain.User), args.Error(1)
}

func (m *MockAuthUseCase) RegisterAdmin(ctx context.Context, input authUseCase.RegisterInput) (*userDomain.User, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userDomain.User), args.Error(1)
}

func (m *MockAuthUseCase) Login(ctx context.Context, credentials authDomain.Credentials) (authDomain.Session, error) {
	args := m.Called(ctx, credentials)
	return args.Get(0).(authDomain.Session), args.Error(1)
}

func (m *MockAuthUseCase) Authenticate(ctx context.Context, token string) (*authDomain.Principal, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.Principal), args.Error(1)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func setupRouter(t *testing.T, authUC authUseCase.UseCase, adminOnly bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	handlers := []gin.HandlerFunc{RequireLogin(authUC, testLogger())}
	if adminOnly {
		handlers = append(handlers, RequireAdmin(testLogger()))
	}

	router.GET("/protected", append(handlers, func(c *gin.Context) {
		principal, ok := GetPrincipal(c.Request.Context())
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"user_id": principal.UserID.String()})
	})...)

	return router
}

func TestRequireLogin(t *testing.T) {
	principal := &authDomain.Principal{UserID: uuid.Must(uuid.NewV7())}

	t.Run("Success_ValidBearerToken", func(t *testing.T) {
		authUC := new(MockAuthUseCase)
		authUC.On("Authenticate", mock.Anything, "valid-token").Return(principal, nil)

		router := setupRouter(t, authUC, false)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer valid-token")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), principal.UserID.String())
	})

	t.Run("Success_CaseInsensitiveScheme", func(t *testing.T) {
		authUC := new(MockAuthUseCase)
		authUC.On("Authenticate", mock.Anything, "valid-token").Return(principal, nil)

		router := setupRouter(t, authUC, false)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "bearer valid-token")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Failure_MissingHeader", func(t *testing.T) {
		authUC := new(MockAuthUseCase)
		router := setupRouter(t, authUC, false)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		authUC.AssertNotCalled(t, "Authenticate")
	})

	t.Run("Failure_MalformedHeader", func(t *testing.T) {
		authUC := new(MockAuthUseCase)
		router := setupRouter(t, authUC, false)

		for _, header := range []string{"Token abc", "Bearer", "Bearer "} {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			req.Header.Set("Authorization", header)
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
		}
	})

	t.Run("Failure_InvalidToken", func(t *testing.T) {
		authUC := new(MockAuthUseCase)
		authUC.On("Authenticate", mock.Anything, "bad-token").Return(nil, authDomain.ErrInvalidToken)

		router := setupRouter(t, authUC, false)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer bad-token")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Failure_SubjectGone", func(t *testing.T) {
		authUC := new(MockAuthUseCase)
		authUC.On("Authenticate", mock.Anything, "orphan-token").Return(nil, authDomain.ErrSubjectGone)

		router := setupRouter(t, authUC, false)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer orphan-token")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRequireAdmin(t *testing.T) {
	t.Run("Success_AdminPrincipal", func(t *testing.T) {
		admin := &authDomain.Principal{UserID: uuid.Must(uuid.NewV7()), IsAdmin: true}
		authUC := new(MockAuthUseCase)
		authUC.On("Authenticate", mock.Anything, "admin-token").Return(admin, nil)

		router := setupRouter(t, authUC, true)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer admin-token")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Failure_NonAdminPrincipal", func(t *testing.T) {
		user := &authDomain.Principal{UserID: uuid.Must(uuid.NewV7())}
		authUC := new(MockAuthUseCase)
		authUC.On("Authenticate", mock.Anything, "user-token").Return(user, nil)

		router := setupRouter(t, authUC, true)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer user-token")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
