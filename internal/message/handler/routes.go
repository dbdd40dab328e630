package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Olelouer/backend-chatop/internal/middleware"
)

func RegisterRoutes(app *fiber.App, h *MessageHandler, authenticate fiber.Handler) {
	messages := app.Group("/api/messages", authenticate, middleware.RequireUser())
	messages.Post("/", h.Create)
}
