package dto

import (
	"buildtrack/domain/models"
)

func TaskToTaskResponse(task *models.Task) *TaskResponse {
	if task == nil {
		return nil
	}
	return &TaskResponse{
		ID:        task.ID,
		Title:     task.Title,
		Status:    task.Status,
		Amount:    task.Amount,
		CreatedAt: task.CreatedAt,
	}
}

func TasksToTaskResponses(tasks []*models.Task) []TaskResponse {
	responses := make([]TaskResponse, len(tasks))
	for i, task := range tasks {
		responses[i] = *TaskToTaskResponse(task)
	}
	return responses
}

func LaborToLaborResponse(entry *models.LaborEntry) *LaborResponse {
	if entry == nil {
		return nil
	}
	return &LaborResponse{
		ID:         entry.ID,
		WorkerName: entry.WorkerName,
		Role:       entry.Role,
		Hours:      entry.Hours,
		Rate:       entry.Rate,
		Total:      entry.Total,
		CreatedAt:  entry.CreatedAt,
	}
}

func LaborToLaborResponses(entries []*models.LaborEntry) []LaborResponse {
	responses := make([]LaborResponse, len(entries))
	for i, entry := range entries {
		responses[i] = *LaborToLaborResponse(entry)
	}
	return responses
}

func MaterialToMaterialResponse(material *models.Material) *MaterialResponse {
	if material == nil {
		return nil
	}
	return &MaterialResponse{
		ID:        material.ID,
		ItemName:  material.ItemName,
		Category:  material.Category,
		Quantity:  material.Quantity,
		UnitCost:  material.UnitCost,
		Total:     material.Total,
		ImageURL:  material.ImageURL,
		HasFile:   material.HasFile,
		CreatedAt: material.CreatedAt,
	}
}

func MaterialsToMaterialResponses(materials []*models.Material) []MaterialResponse {
	responses := make([]MaterialResponse, len(materials))
	for i, material := range materials {
		responses[i] = *MaterialToMaterialResponse(material)
	}
	return responses
}
