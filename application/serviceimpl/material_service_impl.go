package serviceimpl

import (
	"context"

	"buildtrack/domain/dto"
	"buildtrack/domain/models"
	"buildtrack/domain/repositories"
	"buildtrack/domain/services"
	"buildtrack/pkg/logger"
)

type MaterialServiceImpl struct {
	materialRepo repositories.MaterialRepository
}

func NewMaterialService(materialRepo repositories.MaterialRepository) services.MaterialService {
	return &MaterialServiceImpl{materialRepo: materialRepo}
}

func (s *MaterialServiceImpl) CreateMaterial(ctx context.Context, req *dto.CreateMaterialRequest) (*models.Material, error) {
	material := &models.Material{
		ItemName: req.ItemName,
		Category: req.Category,
		Quantity: *req.Quantity,
		UnitCost: *req.UnitCost,
	}

	if err := s.materialRepo.Create(ctx, material); err != nil {
		logger.ErrorContext(ctx, "Failed to create material", "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Material created", "material_id", material.ID, "item", material.ItemName)

	return material, nil
}

func (s *MaterialServiceImpl) CreateMaterialWithURL(ctx context.Context, req *dto.CreateMaterialWithURLRequest) (*models.Material, error) {
	// The URL is stored opaquely; nothing is fetched or validated.
	imageURL := req.ImageURL
	material := &models.Material{
		ItemName: req.ItemName,
		Category: req.Category,
		Quantity: *req.Quantity,
		UnitCost: *req.UnitCost,
		ImageURL: &imageURL,
	}

	if err := s.materialRepo.Create(ctx, material); err != nil {
		logger.ErrorContext(ctx, "Failed to create material with URL", "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Material created with image URL", "material_id", material.ID, "item", material.ItemName)

	return material, nil
}

func (s *MaterialServiceImpl) CreateMaterialWithUpload(ctx context.Context, req *dto.CreateMaterialRequest, upload *services.Upload) (*models.Material, error) {
	material := &models.Material{
		ItemName: req.ItemName,
		Category: req.Category,
		Quantity: *req.Quantity,
		UnitCost: *req.UnitCost,
	}
	image := &models.MaterialImage{
		MimeType: upload.MimeType,
		Data:     upload.Data,
	}

	if err := s.materialRepo.CreateWithImage(ctx, material, image); err != nil {
		logger.ErrorContext(ctx, "Failed to create material with upload", "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Material created with upload",
		"material_id", material.ID,
		"item", material.ItemName,
		"mime_type", image.MimeType,
		"bytes", len(image.Data),
	)

	return material, nil
}

func (s *MaterialServiceImpl) ListMaterials(ctx context.Context) ([]*models.Material, error) {
	materials, err := s.materialRepo.List(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list materials", "error", err)
		return nil, err
	}
	return materials, nil
}

func (s *MaterialServiceImpl) GetImage(ctx context.Context, materialID int64) (*models.MaterialImage, error) {
	return s.materialRepo.GetLatestImage(ctx, materialID)
}
