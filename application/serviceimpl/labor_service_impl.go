package serviceimpl

import (
	"context"

	"buildtrack/domain/dto"
	"buildtrack/domain/models"
	"buildtrack/domain/repositories"
	"buildtrack/domain/services"
	"buildtrack/pkg/logger"
)

type LaborServiceImpl struct {
	laborRepo repositories.LaborRepository
}

func NewLaborService(laborRepo repositories.LaborRepository) services.LaborService {
	return &LaborServiceImpl{laborRepo: laborRepo}
}

func (s *LaborServiceImpl) CreateEntry(ctx context.Context, req *dto.CreateLaborRequest) (*models.LaborEntry, error) {
	entry := &models.LaborEntry{
		WorkerName: req.WorkerName,
		Role:       req.Role,
		Hours:      req.Hours,
		Rate:       req.Rate,
	}

	if err := s.laborRepo.Create(ctx, entry); err != nil {
		logger.ErrorContext(ctx, "Failed to create labor entry", "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Labor entry created", "entry_id", entry.ID, "worker", entry.WorkerName)

	return entry, nil
}

func (s *LaborServiceImpl) ListEntries(ctx context.Context) ([]*models.LaborEntry, error) {
	entries, err := s.laborRepo.List(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list labor entries", "error", err)
		return nil, err
	}
	return entries, nil
}
