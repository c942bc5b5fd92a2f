package handlers

import (
	"buildtrack/domain/services"
)

// Services contains all the services needed for handlers
type Services struct {
	SchemaService   services.SchemaService
	TaskService     services.TaskService
	LaborService    services.LaborService
	MaterialService services.MaterialService

	// UploadMaxBytes caps a single multipart image upload.
	UploadMaxBytes int64
}

// Handlers contains all HTTP handlers
type Handlers struct {
	SchemaHandler   *SchemaHandler
	TaskHandler     *TaskHandler
	LaborHandler    *LaborHandler
	MaterialHandler *MaterialHandler
}

func NewHandlers(services *Services) *Handlers {
	return &Handlers{
		SchemaHandler:   NewSchemaHandler(services.SchemaService),
		TaskHandler:     NewTaskHandler(services.TaskService),
		LaborHandler:    NewLaborHandler(services.LaborService),
		MaterialHandler: NewMaterialHandler(services.MaterialService, services.UploadMaxBytes),
	}
}
