package dto

import "time"

// CreateMaterialRequest requires item_name, quantity and unit_cost. Unlike the
// labor endpoint, quantity and unit_cost are pointers: absent is rejected but
// an explicit 0 is a legitimate value.
type CreateMaterialRequest struct {
	ItemName string   `json:"item_name" validate:"required"`
	Category string   `json:"category"`
	Quantity *float64 `json:"quantity" validate:"required"`
	UnitCost *float64 `json:"unit_cost" validate:"required"`
}

type CreateMaterialWithURLRequest struct {
	ItemName string   `json:"item_name" validate:"required"`
	Category string   `json:"category"`
	Quantity *float64 `json:"quantity" validate:"required"`
	UnitCost *float64 `json:"unit_cost" validate:"required"`
	ImageURL string   `json:"image_url" validate:"required"`
}

type MaterialResponse struct {
	ID        int64     `json:"id"`
	ItemName  string    `json:"item_name"`
	Category  string    `json:"category"`
	Quantity  float64   `json:"quantity"`
	UnitCost  float64   `json:"unit_cost"`
	Total     float64   `json:"total"`
	ImageURL  *string   `json:"image_url"`
	HasFile   bool      `json:"has_file"`
	CreatedAt time.Time `json:"created_at"`
}
