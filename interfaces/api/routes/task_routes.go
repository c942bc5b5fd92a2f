package routes

import (
	"github.com/gofiber/fiber/v2"

	"buildtrack/interfaces/api/handlers"
)

func SetupTaskRoutes(api fiber.Router, h *handlers.Handlers) {
	tasks := api.Group("/tasks")
	tasks.Get("/", h.TaskHandler.ListTasks)
	tasks.Post("/", h.TaskHandler.CreateTask)
}
