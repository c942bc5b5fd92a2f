package routes

import (
	"github.com/gofiber/fiber/v2"

	"buildtrack/interfaces/api/handlers"
)

func SetupLaborRoutes(api fiber.Router, h *handlers.Handlers) {
	labor := api.Group("/labor")
	labor.Get("/", h.LaborHandler.ListEntries)
	labor.Post("/", h.LaborHandler.CreateEntry)
}
