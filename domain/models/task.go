package models

import (
	"time"
)

type Task struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Title     string    `gorm:"type:text;not null"`
	Status    string    `gorm:"type:text;not null;default:'todo'"`
	Amount    float64   `gorm:"type:numeric(14,2);not null;default:0"`
	CreatedAt time.Time
}

func (Task) TableName() string {
	return "tasks"
}
