package models

import (
	"time"
)

// LaborEntry records hours worked at an hourly rate. Total is not a column:
// every read recomputes it in SQL, so it can never be written independently.
type LaborEntry struct {
	ID         int64   `gorm:"primaryKey;autoIncrement"`
	WorkerName string  `gorm:"type:text;not null"`
	Role       string  `gorm:"type:text"`
	Hours      float64 `gorm:"type:numeric(14,2);not null"`
	Rate       float64 `gorm:"type:numeric(14,2);not null"`
	Total      float64 `gorm:"->;-:migration"`
	CreatedAt  time.Time
}

func (LaborEntry) TableName() string {
	return "labor_entries"
}
