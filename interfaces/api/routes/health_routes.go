package routes

import (
	"github.com/gofiber/fiber/v2"

	"buildtrack/pkg/utils"
)

func SetupHealthRoutes(app *fiber.App) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return utils.OKResponse(c)
	})

	app.Get("/api/health", func(c *fiber.Ctx) error {
		return utils.OKResponse(c)
	})
}
