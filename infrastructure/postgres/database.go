package postgres

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"buildtrack/domain/models"
)

func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %v", err)
	}

	return db, nil
}

// Migrate creates the four tables if missing and adds any columns an older
// deployment lacks (image_url on materials included). AutoMigrate is additive
// and per-object idempotent, so repeated runs are no-ops and a failed run
// leaves already-created objects in place for the next attempt.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Task{},
		&models.LaborEntry{},
		&models.Material{},
		&models.MaterialImage{},
	)
}
