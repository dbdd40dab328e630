package handler_test

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Olelouer/backend-chatop/internal/auth/domain"
	"github.com/Olelouer/backend-chatop/internal/auth/dto"
	"github.com/Olelouer/backend-chatop/internal/auth/handler"
	"github.com/Olelouer/backend-chatop/internal/auth/service"
	"github.com/Olelouer/backend-chatop/internal/logging"
	"github.com/Olelouer/backend-chatop/internal/middleware"
	"github.com/Olelouer/backend-chatop/internal/mocks"
)

func newAuthApp(t *testing.T, ctrl *gomock.Controller) (*fiber.App, *mocks.MockUserRepository, *service.TokenService) {
	t.Helper()

	mockRepo := mocks.NewMockUserRepository(ctrl)

	secret := base64.StdEncoding.EncodeToString([]byte("routes-test-secret"))
	tokens, err := service.NewTokenService(secret, 60)
	require.NoError(t, err)

	userService := service.NewUserService(mockRepo, tokens)
	authHandler := handler.NewAuthHandler(userService)

	log := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(io.Discard, nil)))
	authenticate := middleware.Authenticate(tokens, mockRepo, log)

	app := fiber.New()
	handler.RegisterRoutes(app, authHandler, authenticate)

	return app, mockRepo, tokens
}

// TestRegisterRoutes verifies the auth routes are mounted.
func TestRegisterRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	app, _, _ := newAuthApp(t, ctrl)

	testCases := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/auth/register"},
		{http.MethodPost, "/api/auth/login"},
		{http.MethodGet, "/api/auth/me"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+"_"+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.NotEqual(t, fiber.StatusNotFound, resp.StatusCode)
			assert.NotEqual(t, fiber.StatusMethodNotAllowed, resp.StatusCode)
		})
	}
}

func TestMe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	app, mockRepo, tokens := newAuthApp(t, ctrl)

	user := &domain.User{
		ID:        "user-1",
		Name:      "Test User",
		Email:     "me@example.com",
		Role:      domain.RoleUser,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	t.Run("valid token resolves the identity", func(t *testing.T) {
		token, err := tokens.Issue(user.Email, nil, time.Hour)
		require.NoError(t, err)

		mockRepo.EXPECT().GetByEmail(gomock.Any(), user.Email).Return(user, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var out dto.UserOutput
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		assert.Equal(t, user.ID, out.ID)
		assert.Equal(t, user.Email, out.Email)
		assert.Equal(t, user.Name, out.Name)
	})

	t.Run("missing token is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer not-a-token")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		token, err := tokens.Issue(user.Email, nil, -time.Minute)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("token for a deleted identity is rejected", func(t *testing.T) {
		token, err := tokens.Issue("gone@example.com", nil, time.Hour)
		require.NoError(t, err)

		mockRepo.EXPECT().GetByEmail(gomock.Any(), "gone@example.com").Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})
}
