package postgres

import (
	"context"

	"gorm.io/gorm"

	"buildtrack/domain/models"
	"buildtrack/domain/repositories"
)

type TaskRepositoryImpl struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) repositories.TaskRepository {
	return &TaskRepositoryImpl{db: db}
}

func (r *TaskRepositoryImpl) Create(ctx context.Context, task *models.Task) error {
	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return err
	}
	// Re-read so generated id, defaults and timestamp are all materialized.
	return r.db.WithContext(ctx).First(task, task.ID).Error
}

func (r *TaskRepositoryImpl) List(ctx context.Context) ([]*models.Task, error) {
	var tasks []*models.Task
	err := r.db.WithContext(ctx).Order("id DESC").Find(&tasks).Error
	return tasks, err
}
