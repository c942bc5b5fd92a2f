package repositories

import (
	"context"

	"buildtrack/domain/models"
)

type MaterialRepository interface {
	Create(ctx context.Context, material *models.Material) error
	// CreateWithImage inserts the material and its image in one transaction;
	// neither row survives if either insert fails.
	CreateWithImage(ctx context.Context, material *models.Material, image *models.MaterialImage) error
	// List returns all materials newest-first, each annotated with HasFile.
	List(ctx context.Context) ([]*models.Material, error)
	// GetLatestImage returns the most recently created image row for the
	// material, or gorm.ErrRecordNotFound when none exists.
	GetLatestImage(ctx context.Context, materialID int64) (*models.MaterialImage, error)
}
