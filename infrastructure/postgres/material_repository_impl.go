package postgres

import (
	"context"

	"gorm.io/gorm"

	"buildtrack/domain/models"
	"buildtrack/domain/repositories"
)

// materialColumns derives total and has_file on every read. has_file tracks
// stored image rows only; image_url never influences it.
const materialColumns = "materials.*, ROUND(quantity * unit_cost, 2) AS total, " +
	"EXISTS(SELECT 1 FROM material_images WHERE material_images.material_id = materials.id) AS has_file"

type MaterialRepositoryImpl struct {
	db *gorm.DB
}

func NewMaterialRepository(db *gorm.DB) repositories.MaterialRepository {
	return &MaterialRepositoryImpl{db: db}
}

func (r *MaterialRepositoryImpl) Create(ctx context.Context, material *models.Material) error {
	if err := r.db.WithContext(ctx).Create(material).Error; err != nil {
		return err
	}
	return r.getByID(ctx, material)
}

func (r *MaterialRepositoryImpl) CreateWithImage(ctx context.Context, material *models.Material, image *models.MaterialImage) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(material).Error; err != nil {
			return err
		}
		image.MaterialID = material.ID
		if err := tx.Create(image).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return r.getByID(ctx, material)
}

func (r *MaterialRepositoryImpl) List(ctx context.Context) ([]*models.Material, error) {
	var materials []*models.Material
	err := r.db.WithContext(ctx).
		Model(&models.Material{}).
		Select(materialColumns).
		Order("id DESC").
		Find(&materials).Error
	return materials, err
}

func (r *MaterialRepositoryImpl) GetLatestImage(ctx context.Context, materialID int64) (*models.MaterialImage, error) {
	var image models.MaterialImage
	err := r.db.WithContext(ctx).
		Where("material_id = ?", materialID).
		Order("created_at DESC, id DESC").
		First(&image).Error
	if err != nil {
		return nil, err
	}
	return &image, nil
}

func (r *MaterialRepositoryImpl) getByID(ctx context.Context, material *models.Material) error {
	return r.db.WithContext(ctx).
		Model(&models.Material{}).
		Select(materialColumns).
		Where("materials.id = ?", material.ID).
		Take(material).Error
}
