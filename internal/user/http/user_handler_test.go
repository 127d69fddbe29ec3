package http

import (
	"context"
	"encoding/json"
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

	"github.com/lifebook/lifebook/internal/user/domain"
	"github.com/lifebook/lifebook/internal/user/usecase"
)

// MockUserUseCase is a mock implementation of usecase.UseCase
type MockUserUseCase struct {
	mock.Mock
}

func (m *MockUserUseCase) ListUsers(ctx context.Context, page int, limit int) (usecase.ListUsersOutput, error) {
	args := m.Called(ctx, page, limit)
	return args.Get(0).(usecase.ListUsersOutput), args.Error(1)
}

func (m *MockUserUseCase) GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func setupUserRouter(userUC usecase.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	handler := NewUserHandler(userUC, slog.New(slog.NewTextHandler(io.Discard, nil)))
	router.GET("/v1/users", handler.ListUsersHandler)

	return router
}

func TestUserHandler_ListUsers(t *testing.T) {
	t.Run("Success_ReturnsPageWithoutSecrets", func(t *testing.T) {
		userUC := new(MockUserUseCase)
		output := usecase.ListUsersOutput{
			Items: []*domain.User{
				{ID: uuid.Must(uuid.NewV7()), Username: "jane", PasswordHash: "deadbeef", PasswordSalt: "cafebabe"},
			},
			TotalCount: 1,
			TotalPages: 1,
			Page:       1,
			Limit:      10,
		}
		userUC.On("ListUsers", mock.Anything, 1, 10).Return(output, nil)

		router := setupUserRouter(userUC)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/users", nil))

		assert.Equal(t, http.StatusOK, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, float64(1), resp["total_count"])
		assert.NotContains(t, w.Body.String(), "deadbeef")
		assert.NotContains(t, w.Body.String(), "cafebabe")
	})

	t.Run("Success_CoercesPaginationParams", func(t *testing.T) {
		userUC := new(MockUserUseCase)
		userUC.On("ListUsers", mock.Anything, 1, 10).Return(usecase.ListUsersOutput{
			Items: []*domain.User{}, TotalPages: 1, Page: 1, Limit: 10,
		}, nil)

		router := setupUserRouter(userUC)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/users?page=zero&limit=-5", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		userUC.AssertCalled(t, "ListUsers", mock.Anything, 1, 10)
	})
}
