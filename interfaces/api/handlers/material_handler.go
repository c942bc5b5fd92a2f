package handlers

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"buildtrack/domain/dto"
	"buildtrack/domain/services"
	"buildtrack/pkg/logger"
	"buildtrack/pkg/utils"
)

type MaterialHandler struct {
	materialService services.MaterialService
	uploadMaxBytes  int64
}

func NewMaterialHandler(materialService services.MaterialService, uploadMaxBytes int64) *MaterialHandler {
	return &MaterialHandler{
		materialService: materialService,
		uploadMaxBytes:  uploadMaxBytes,
	}
}

func (h *MaterialHandler) CreateMaterial(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.CreateMaterialRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	// quantity and unit_cost are pointers: a null is rejected but an
	// explicit 0 passes, unlike the labor endpoint.
	if err := utils.ValidateStruct(&req); err != nil {
		message := utils.ValidationMessage(err)
		logger.WarnContext(ctx, "Validation failed", "error", message)
		return utils.BadRequestResponse(c, message)
	}

	material, err := h.materialService.CreateMaterial(ctx, &req)
	if err != nil {
		return utils.InternalServerErrorResponse(c, err)
	}

	return utils.CreatedResponse(c, dto.MaterialToMaterialResponse(material))
}

func (h *MaterialHandler) CreateMaterialWithURL(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.CreateMaterialWithURLRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		message := utils.ValidationMessage(err)
		logger.WarnContext(ctx, "Validation failed", "error", message)
		return utils.BadRequestResponse(c, message)
	}

	material, err := h.materialService.CreateMaterialWithURL(ctx, &req)
	if err != nil {
		return utils.InternalServerErrorResponse(c, err)
	}

	return utils.CreatedResponse(c, dto.MaterialToMaterialResponse(material))
}

// CreateMaterialWithUpload handles the multipart path: form fields plus a
// required image file. The material row and image row are written in one
// transaction; a failure on either side leaves nothing behind.
func (h *MaterialHandler) CreateMaterialWithUpload(c *fiber.Ctx) error {
	ctx := c.UserContext()

	req, err := parseMaterialForm(c)
	if err != nil {
		logger.WarnContext(ctx, "Invalid upload form", "error", err)
		return utils.BadRequestResponse(c, err.Error())
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		logger.WarnContext(ctx, "No file provided", "error", err)
		return utils.BadRequestResponse(c, "file is required")
	}

	if fileHeader.Size == 0 {
		return utils.BadRequestResponse(c, "Empty file not allowed")
	}

	if fileHeader.Size > h.uploadMaxBytes {
		logger.WarnContext(ctx, "Upload too large", "size", fileHeader.Size, "max", h.uploadMaxBytes)
		return utils.BadRequestResponse(c, fmt.Sprintf("file exceeds %d byte limit", h.uploadMaxBytes))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return utils.InternalServerErrorResponse(c, err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return utils.InternalServerErrorResponse(c, err)
	}

	mimeType := fileHeader.Header.Get(fiber.HeaderContentType)
	if mimeType == "" {
		mimeType = fiber.MIMEOctetStream
	}

	logger.InfoContext(ctx, "Material upload attempt",
		"item", req.ItemName,
		"filename", fileHeader.Filename,
		"size", fileHeader.Size,
	)

	material, err := h.materialService.CreateMaterialWithUpload(ctx, req, &services.Upload{
		MimeType: mimeType,
		Data:     data,
	})
	if err != nil {
		return utils.InternalServerErrorResponse(c, err)
	}

	return utils.CreatedResponse(c, dto.MaterialToMaterialResponse(material))
}

func (h *MaterialHandler) ListMaterials(c *fiber.Ctx) error {
	ctx := c.UserContext()

	materials, err := h.materialService.ListMaterials(ctx)
	if err != nil {
		return utils.InternalServerErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, dto.MaterialsToMaterialResponses(materials))
}

// GetImage streams the newest stored image for a material. This is the one
// endpoint that answers outside the JSON envelope: raw bytes on success,
// plain-text "No image" on 404.
func (h *MaterialHandler) GetImage(c *fiber.Ctx) error {
	ctx := c.UserContext()

	materialID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		logger.WarnContext(ctx, "Invalid material ID", "id", c.Params("id"))
		return utils.BadRequestResponse(c, "Invalid material ID")
	}

	image, err := h.materialService.GetImage(ctx, materialID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).SendString("No image")
		}
		return utils.InternalServerErrorResponse(c, err)
	}

	c.Set(fiber.HeaderContentType, image.MimeType)
	return c.Send(image.Data)
}

// parseMaterialForm reads the non-file multipart fields into the same DTO the
// JSON endpoint uses, applying the same presence rules.
func parseMaterialForm(c *fiber.Ctx) (*dto.CreateMaterialRequest, error) {
	req := &dto.CreateMaterialRequest{
		ItemName: c.FormValue("item_name"),
		Category: c.FormValue("category"),
	}

	if v := c.FormValue("quantity"); v != "" {
		quantity, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, errors.New("quantity must be a number")
		}
		req.Quantity = &quantity
	}
	if v := c.FormValue("unit_cost"); v != "" {
		unitCost, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, errors.New("unit_cost must be a number")
		}
		req.UnitCost = &unitCost
	}

	if err := utils.ValidateStruct(req); err != nil {
		return nil, errors.New(utils.ValidationMessage(err))
	}

	return req, nil
}
