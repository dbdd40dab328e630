package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Olelouer/backend-chatop/internal/middleware"
)

// RegisterRoutes mounts the auth endpoints. Register and login are public;
// /me goes through the identity middleware.
func RegisterRoutes(app *fiber.App, h *AuthHandler, authenticate fiber.Handler) {
	auth := app.Group("/api/auth")
	auth.Post("/register", h.Register)
	auth.Post("/login", h.Login)
	auth.Get("/me", authenticate, middleware.RequireUser(), h.Me)
}
