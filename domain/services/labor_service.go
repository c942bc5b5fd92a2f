package services

import (
	"context"

	"buildtrack/domain/dto"
	"buildtrack/domain/models"
)

type LaborService interface {
	CreateEntry(ctx context.Context, req *dto.CreateLaborRequest) (*models.LaborEntry, error)
	ListEntries(ctx context.Context) ([]*models.LaborEntry, error)
}
