package services

import (
	"context"

	"buildtrack/domain/dto"
	"buildtrack/domain/models"
)

type TaskService interface {
	CreateTask(ctx context.Context, req *dto.CreateTaskRequest) (*models.Task, error)
	ListTasks(ctx context.Context) ([]*models.Task, error)
}
