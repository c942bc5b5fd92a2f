package serviceimpl

import (
	"context"

	"buildtrack/domain/dto"
	"buildtrack/domain/models"
	"buildtrack/domain/repositories"
	"buildtrack/domain/services"
	"buildtrack/pkg/logger"
)

type TaskServiceImpl struct {
	taskRepo repositories.TaskRepository
}

func NewTaskService(taskRepo repositories.TaskRepository) services.TaskService {
	return &TaskServiceImpl{taskRepo: taskRepo}
}

func (s *TaskServiceImpl) CreateTask(ctx context.Context, req *dto.CreateTaskRequest) (*models.Task, error) {
	task := &models.Task{
		Title:  req.Title,
		Status: req.Status,
		Amount: req.Amount,
	}

	if task.Status == "" {
		task.Status = "todo"
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		logger.ErrorContext(ctx, "Failed to create task", "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Task created", "task_id", task.ID, "title", task.Title)

	return task, nil
}

func (s *TaskServiceImpl) ListTasks(ctx context.Context) ([]*models.Task, error) {
	tasks, err := s.taskRepo.List(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list tasks", "error", err)
		return nil, err
	}
	return tasks, nil
}
