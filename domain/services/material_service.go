package services

import (
	"context"

	"buildtrack/domain/dto"
	"buildtrack/domain/models"
)

// Upload carries the multipart file payload into the service layer.
type Upload struct {
	MimeType string
	Data     []byte
}

type MaterialService interface {
	CreateMaterial(ctx context.Context, req *dto.CreateMaterialRequest) (*models.Material, error)
	CreateMaterialWithURL(ctx context.Context, req *dto.CreateMaterialWithURLRequest) (*models.Material, error)
	CreateMaterialWithUpload(ctx context.Context, req *dto.CreateMaterialRequest, upload *Upload) (*models.Material, error)
	ListMaterials(ctx context.Context) ([]*models.Material, error)
	GetImage(ctx context.Context, materialID int64) (*models.MaterialImage, error)
}
