package routes

import (
	"github.com/gofiber/fiber/v2"

	"buildtrack/interfaces/api/handlers"
)

func SetupMaterialRoutes(api fiber.Router, h *handlers.Handlers) {
	materials := api.Group("/materials")
	materials.Get("/", h.MaterialHandler.ListMaterials)
	materials.Post("/", h.MaterialHandler.CreateMaterial)
	materials.Post("/url", h.MaterialHandler.CreateMaterialWithURL)
	materials.Post("/upload", h.MaterialHandler.CreateMaterialWithUpload)
	materials.Get("/:id/image", h.MaterialHandler.GetImage)
}
