package handler_test

import (
	"bytes"
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

	authdomain "github.com/Olelouer/backend-chatop/internal/auth/domain"
	authservice "github.com/Olelouer/backend-chatop/internal/auth/service"
	"github.com/Olelouer/backend-chatop/internal/logging"
	"github.com/Olelouer/backend-chatop/internal/message/handler"
	"github.com/Olelouer/backend-chatop/internal/message/service"
	"github.com/Olelouer/backend-chatop/internal/middleware"
	"github.com/Olelouer/backend-chatop/internal/mocks"
	rentaldomain "github.com/Olelouer/backend-chatop/internal/rental/domain"
)

func TestCreateMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	messageRepo := mocks.NewMockMessageRepository(ctrl)
	rentalRepo := mocks.NewMockRentalRepository(ctrl)
	userRepo := mocks.NewMockUserRepository(ctrl)

	secret := base64.StdEncoding.EncodeToString([]byte("message-test-secret"))
	tokens, err := authservice.NewTokenService(secret, 60)
	require.NoError(t, err)

	log := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(io.Discard, nil)))

	messageService := service.NewMessageService(messageRepo, rentalRepo, userRepo)
	messageHandler := handler.NewMessageHandler(messageService)

	app := fiber.New()
	handler.RegisterRoutes(app, messageHandler, middleware.Authenticate(tokens, userRepo, log))

	user := &authdomain.User{ID: "user-1", Email: "sender@example.com", Role: authdomain.RoleUser}
	token, err := tokens.Issue(user.Email, nil, time.Hour)
	require.NoError(t, err)

	postMessage := func(t *testing.T, payload any, authorized bool) *http.Response {
		t.Helper()

		body, err := json.Marshal(payload)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/api/messages/", bytes.NewReader(body))
		req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
		if authorized {
			req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
		}

		resp, err := app.Test(req)
		require.NoError(t, err)
		return resp
	}

	payload := fiber.Map{
		"rental_id": "rental-1",
		"user_id":   "user-1",
		"message":   "Is it still available?",
	}

	t.Run("success", func(t *testing.T) {
		userRepo.EXPECT().GetByEmail(gomock.Any(), user.Email).Return(user, nil)
		rentalRepo.EXPECT().GetByID(gomock.Any(), "rental-1").Return(&rentaldomain.Rental{ID: "rental-1"}, nil)
		userRepo.EXPECT().GetByID(gomock.Any(), "user-1").Return(user, nil)
		messageRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		resp := postMessage(t, payload, true)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var out map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		assert.Equal(t, "Message send with success", out["message"])
	})

	t.Run("unauthorized without token", func(t *testing.T) {
		resp := postMessage(t, payload, false)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("unknown rental", func(t *testing.T) {
		userRepo.EXPECT().GetByEmail(gomock.Any(), user.Email).Return(user, nil)
		rentalRepo.EXPECT().GetByID(gomock.Any(), "rental-1").Return(nil, nil)

		resp := postMessage(t, payload, true)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})

	t.Run("empty message", func(t *testing.T) {
		userRepo.EXPECT().GetByEmail(gomock.Any(), user.Email).Return(user, nil)

		resp := postMessage(t, fiber.Map{"rental_id": "rental-1", "user_id": "user-1"}, true)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}
