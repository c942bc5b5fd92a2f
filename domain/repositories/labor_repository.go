package repositories

import (
	"context"

	"buildtrack/domain/models"
)

type LaborRepository interface {
	Create(ctx context.Context, entry *models.LaborEntry) error
	List(ctx context.Context) ([]*models.LaborEntry, error)
}
