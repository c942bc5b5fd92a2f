package models

import (
	"time"
)

// MaterialImage holds uploaded image bytes for a material. A material may
// accumulate several rows over time; only the newest is ever served.
// The cascade keeps images from outliving their material.
type MaterialImage struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	MaterialID int64     `gorm:"not null;index"`
	MimeType   string    `gorm:"type:text;not null"`
	Data       []byte    `gorm:"type:bytea;not null"`
	CreatedAt  time.Time

	Material *Material `gorm:"foreignKey:MaterialID;constraint:OnDelete:CASCADE"`
}

func (MaterialImage) TableName() string {
	return "material_images"
}
