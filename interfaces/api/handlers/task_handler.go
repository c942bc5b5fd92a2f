package handlers

import (
	"github.com/gofiber/fiber/v2"

	"buildtrack/domain/dto"
	"buildtrack/domain/services"
	"buildtrack/pkg/logger"
	"buildtrack/pkg/utils"
)

type TaskHandler struct {
	taskService services.TaskService
}

func NewTaskHandler(taskService services.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) CreateTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		message := utils.ValidationMessage(err)
		logger.WarnContext(ctx, "Validation failed", "error", message)
		return utils.BadRequestResponse(c, message)
	}

	task, err := h.taskService.CreateTask(ctx, &req)
	if err != nil {
		return utils.InternalServerErrorResponse(c, err)
	}

	return utils.CreatedResponse(c, dto.TaskToTaskResponse(task))
}

func (h *TaskHandler) ListTasks(c *fiber.Ctx) error {
	ctx := c.UserContext()

	tasks, err := h.taskService.ListTasks(ctx)
	if err != nil {
		return utils.InternalServerErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, dto.TasksToTaskResponses(tasks))
}
