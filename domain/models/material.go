package models

import (
	"time"
)

type Material struct {
	ID       int64   `gorm:"primaryKey;autoIncrement"`
	ItemName string  `gorm:"type:text;not null"`
	Category string  `gorm:"type:text"`
	Quantity float64 `gorm:"type:numeric(14,2);not null"`
	UnitCost float64 `gorm:"type:numeric(14,2);not null"`
	// Total is recomputed in SQL on every read, never stored.
	Total float64 `gorm:"->;-:migration"`
	// ImageURL is the external-reference alternative to uploaded bytes.
	ImageURL  *string   `gorm:"type:text"`
	CreatedAt time.Time

	// HasFile is derived per read via an EXISTS subquery on material_images.
	// It is never stored.
	HasFile bool `gorm:"->;-:migration"`
}

func (Material) TableName() string {
	return "materials"
}
