package handlers

import (
	"github.com/gofiber/fiber/v2"

	"buildtrack/domain/dto"
	"buildtrack/domain/services"
	"buildtrack/pkg/logger"
	"buildtrack/pkg/utils"
)

type LaborHandler struct {
	laborService services.LaborService
}

func NewLaborHandler(laborService services.LaborService) *LaborHandler {
	return &LaborHandler{laborService: laborService}
}

func (h *LaborHandler) CreateEntry(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.CreateLaborRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	// hours=0 and rate=0 fail the required check here. That matches the
	// endpoint's documented presence semantics: zero reads as missing.
	if err := utils.ValidateStruct(&req); err != nil {
		message := utils.ValidationMessage(err)
		logger.WarnContext(ctx, "Validation failed", "error", message)
		return utils.BadRequestResponse(c, message)
	}

	entry, err := h.laborService.CreateEntry(ctx, &req)
	if err != nil {
		return utils.InternalServerErrorResponse(c, err)
	}

	return utils.CreatedResponse(c, dto.LaborToLaborResponse(entry))
}

func (h *LaborHandler) ListEntries(c *fiber.Ctx) error {
	ctx := c.UserContext()

	entries, err := h.laborService.ListEntries(ctx)
	if err != nil {
		return utils.InternalServerErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, dto.LaborToLaborResponses(entries))
}
