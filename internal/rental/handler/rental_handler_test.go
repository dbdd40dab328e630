package handler_test

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
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
	"github.com/Olelouer/backend-chatop/internal/middleware"
	"github.com/Olelouer/backend-chatop/internal/mocks"
	"github.com/Olelouer/backend-chatop/internal/rental/domain"
	"github.com/Olelouer/backend-chatop/internal/rental/dto"
	"github.com/Olelouer/backend-chatop/internal/rental/handler"
	"github.com/Olelouer/backend-chatop/internal/rental/service"
)

type rentalTestApp struct {
	app         *fiber.App
	userRepo    *mocks.MockUserRepository
	rentalRepo  *mocks.MockRentalRepository
	storage     *mocks.MockStorage
	bearerToken string
	user        *authdomain.User
}

func newRentalApp(t *testing.T, ctrl *gomock.Controller) *rentalTestApp {
	t.Helper()

	userRepo := mocks.NewMockUserRepository(ctrl)
	rentalRepo := mocks.NewMockRentalRepository(ctrl)
	mockStorage := mocks.NewMockStorage(ctrl)

	secret := base64.StdEncoding.EncodeToString([]byte("rental-test-secret"))
	tokens, err := authservice.NewTokenService(secret, 60)
	require.NoError(t, err)

	log := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(io.Discard, nil)))
	rentalService := service.NewRentalService(rentalRepo, mockStorage, log)
	rentalHandler := handler.NewRentalHandler(rentalService)

	app := fiber.New()
	handler.RegisterRoutes(app, rentalHandler, middleware.Authenticate(tokens, userRepo, log))

	user := &authdomain.User{ID: "owner-1", Email: "owner@example.com", Role: authdomain.RoleUser}

	token, err := tokens.Issue(user.Email, nil, time.Hour)
	require.NoError(t, err)

	return &rentalTestApp{
		app:         app,
		userRepo:    userRepo,
		rentalRepo:  rentalRepo,
		storage:     mockStorage,
		bearerToken: "Bearer " + token,
		user:        user,
	}
}

func (ta *rentalTestApp) expectAuth() {
	ta.userRepo.EXPECT().GetByEmail(gomock.Any(), ta.user.Email).Return(ta.user, nil)
}

func rentalForm(t *testing.T, withPicture bool) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)

	require.NoError(t, w.WriteField("name", "Seaside flat"))
	require.NoError(t, w.WriteField("surface", "42"))
	require.NoError(t, w.WriteField("price", "900"))
	require.NoError(t, w.WriteField("description", "Nice view"))

	if withPicture {
		fw, err := w.CreateFormFile("picture", "flat.jpg")
		require.NoError(t, err)
		_, err = fw.Write([]byte("jpeg-bytes"))
		require.NoError(t, err)
	}

	require.NoError(t, w.Close())

	return body, w.FormDataContentType()
}

func TestCreateRental(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ta := newRentalApp(t, ctrl)

	t.Run("success with picture", func(t *testing.T) {
		ta.expectAuth()

		var created *domain.Rental

		ta.storage.EXPECT().Store(gomock.Any(), "flat.jpg", []byte("jpeg-bytes")).
			Return("http://localhost:3001/uploads/1_flat.jpg", nil)
		ta.rentalRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r *domain.Rental) error {
				created = r
				return nil
			})

		body, contentType := rentalForm(t, true)
		req := httptest.NewRequest(http.MethodPost, "/api/rentals/", body)
		req.Header.Set("Content-Type", contentType)
		req.Header.Set(fiber.HeaderAuthorization, ta.bearerToken)

		resp, err := ta.app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var out map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		assert.Equal(t, "Rental created !", out["message"])

		require.NotNil(t, created)
		assert.Equal(t, ta.user.ID, created.OwnerID)
		assert.Equal(t, "http://localhost:3001/uploads/1_flat.jpg", created.Picture)
	})

	t.Run("unauthorized without token", func(t *testing.T) {
		body, contentType := rentalForm(t, false)
		req := httptest.NewRequest(http.MethodPost, "/api/rentals/", body)
		req.Header.Set("Content-Type", contentType)

		resp, err := ta.app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("bad request on non-numeric surface", func(t *testing.T) {
		ta.expectAuth()

		body := &bytes.Buffer{}
		w := multipart.NewWriter(body)
		require.NoError(t, w.WriteField("name", "Flat"))
		require.NoError(t, w.WriteField("surface", "a-lot"))
		require.NoError(t, w.WriteField("price", "900"))
		require.NoError(t, w.Close())

		req := httptest.NewRequest(http.MethodPost, "/api/rentals/", body)
		req.Header.Set("Content-Type", w.FormDataContentType())
		req.Header.Set(fiber.HeaderAuthorization, ta.bearerToken)

		resp, err := ta.app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestGetRentals(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ta := newRentalApp(t, ctrl)

	t.Run("list", func(t *testing.T) {
		ta.expectAuth()
		ta.rentalRepo.EXPECT().GetAll(gomock.Any()).Return([]domain.Rental{
			{ID: "r-1", Name: "Flat", OwnerID: "owner-1"},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/rentals/", nil)
		req.Header.Set(fiber.HeaderAuthorization, ta.bearerToken)

		resp, err := ta.app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var out dto.RentalListOutput
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		require.Len(t, out.Rentals, 1)
		assert.Equal(t, "r-1", out.Rentals[0].ID)
	})

	t.Run("by id not found", func(t *testing.T) {
		ta.expectAuth()
		ta.rentalRepo.EXPECT().GetByID(gomock.Any(), "missing").Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/rentals/missing", nil)
		req.Header.Set(fiber.HeaderAuthorization, ta.bearerToken)

		resp, err := ta.app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}

func TestUpdateRental(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ta := newRentalApp(t, ctrl)

	t.Run("forbidden for non-owner", func(t *testing.T) {
		ta.expectAuth()
		ta.rentalRepo.EXPECT().GetByID(gomock.Any(), "r-1").
			Return(&domain.Rental{ID: "r-1", OwnerID: "someone-else"}, nil)

		body, contentType := rentalForm(t, false)
		req := httptest.NewRequest(http.MethodPut, "/api/rentals/r-1", body)
		req.Header.Set("Content-Type", contentType)
		req.Header.Set(fiber.HeaderAuthorization, ta.bearerToken)

		resp, err := ta.app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})

	t.Run("owner updates", func(t *testing.T) {
		ta.expectAuth()
		ta.rentalRepo.EXPECT().GetByID(gomock.Any(), "r-1").
			Return(&domain.Rental{ID: "r-1", OwnerID: ta.user.ID}, nil)
		ta.rentalRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		body, contentType := rentalForm(t, false)
		req := httptest.NewRequest(http.MethodPut, "/api/rentals/r-1", body)
		req.Header.Set("Content-Type", contentType)
		req.Header.Set(fiber.HeaderAuthorization, ta.bearerToken)

		resp, err := ta.app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var out map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		assert.Equal(t, "Rental updated !", out["message"])
	})
}
