package routes

import (
	"github.com/gofiber/fiber/v2"

	"buildtrack/interfaces/api/handlers"
)

func SetupSchemaRoutes(api fiber.Router, h *handlers.Handlers) {
	api.Post("/bootstrap", h.SchemaHandler.Bootstrap)
}
