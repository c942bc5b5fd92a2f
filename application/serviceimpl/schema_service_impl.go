package serviceimpl

import (
	"context"

	"gorm.io/gorm"

	"buildtrack/domain/services"
	"buildtrack/infrastructure/postgres"
	"buildtrack/pkg/logger"
)

type SchemaServiceImpl struct {
	db *gorm.DB
}

func NewSchemaService(db *gorm.DB) services.SchemaService {
	return &SchemaServiceImpl{db: db}
}

func (s *SchemaServiceImpl) Bootstrap(ctx context.Context) error {
	if err := postgres.Migrate(s.db.WithContext(ctx)); err != nil {
		logger.ErrorContext(ctx, "Schema bootstrap failed", "error", err)
		return err
	}
	logger.InfoContext(ctx, "Schema bootstrap complete")
	return nil
}
