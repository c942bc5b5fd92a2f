package repositories

import (
	"context"

	"buildtrack/domain/models"
)

type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) error
	List(ctx context.Context) ([]*models.Task, error)
}
