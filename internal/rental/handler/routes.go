package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Olelouer/backend-chatop/internal/middleware"
)

// RegisterRoutes mounts the rental endpoints; all of them require identity.
func RegisterRoutes(app *fiber.App, h *RentalHandler, authenticate fiber.Handler) {
	rentals := app.Group("/api/rentals", authenticate, middleware.RequireUser())
	rentals.Post("/", h.Create)
	rentals.Get("/", h.GetAll)
	rentals.Get("/:id", h.GetByID)
	rentals.Put("/:id", h.Update)
}
