package routes

import (
	"github.com/gofiber/fiber/v2"

	"buildtrack/interfaces/api/handlers"
)

func SetupRoutes(app *fiber.App, h *handlers.Handlers) {
	SetupHealthRoutes(app)

	api := app.Group("/api")

	SetupSchemaRoutes(api, h)
	SetupTaskRoutes(api, h)
	SetupLaborRoutes(api, h)
	SetupMaterialRoutes(api, h)
}
