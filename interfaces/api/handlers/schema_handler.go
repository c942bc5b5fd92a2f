package handlers

import (
	"github.com/gofiber/fiber/v2"

	"buildtrack/domain/services"
	"buildtrack/pkg/logger"
	"buildtrack/pkg/utils"
)

type SchemaHandler struct {
	schemaService services.SchemaService
}

func NewSchemaHandler(schemaService services.SchemaService) *SchemaHandler {
	return &SchemaHandler{schemaService: schemaService}
}

// Bootstrap creates missing tables and columns. Safe to call repeatedly.
func (h *SchemaHandler) Bootstrap(c *fiber.Ctx) error {
	ctx := c.UserContext()

	if err := h.schemaService.Bootstrap(ctx); err != nil {
		return utils.InternalServerErrorResponse(c, err)
	}

	logger.InfoContext(ctx, "Bootstrap requested and completed")

	return utils.OKResponse(c)
}
