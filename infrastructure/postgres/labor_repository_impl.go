package postgres

import (
	"context"

	"gorm.io/gorm"

	"buildtrack/domain/models"
	"buildtrack/domain/repositories"
)

// laborColumns recomputes total on every read; it is never stored.
const laborColumns = "labor_entries.*, ROUND(hours * rate, 2) AS total"

type LaborRepositoryImpl struct {
	db *gorm.DB
}

func NewLaborRepository(db *gorm.DB) repositories.LaborRepository {
	return &LaborRepositoryImpl{db: db}
}

func (r *LaborRepositoryImpl) Create(ctx context.Context, entry *models.LaborEntry) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return err
	}
	// Re-read so the derived total and timestamp come back with the row.
	return r.db.WithContext(ctx).
		Model(&models.LaborEntry{}).
		Select(laborColumns).
		Where("id = ?", entry.ID).
		Take(entry).Error
}

func (r *LaborRepositoryImpl) List(ctx context.Context) ([]*models.LaborEntry, error) {
	var entries []*models.LaborEntry
	err := r.db.WithContext(ctx).
		Model(&models.LaborEntry{}).
		Select(laborColumns).
		Order("id DESC").
		Find(&entries).Error
	return entries, err
}
