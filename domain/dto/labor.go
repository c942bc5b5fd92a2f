package dto

import "time"

// CreateLaborRequest requires worker_name, hours and rate. hours and rate are
// value-typed on purpose: a literal 0 is indistinguishable from "missing" and
// gets rejected, matching the API's documented presence semantics.
type CreateLaborRequest struct {
	WorkerName string  `json:"worker_name" validate:"required"`
	Role       string  `json:"role"`
	Hours      float64 `json:"hours" validate:"required"`
	Rate       float64 `json:"rate" validate:"required"`
}

type LaborResponse struct {
	ID         int64     `json:"id"`
	WorkerName string    `json:"worker_name"`
	Role       string    `json:"role"`
	Hours      float64   `json:"hours"`
	Rate       float64   `json:"rate"`
	Total      float64   `json:"total"`
	CreatedAt  time.Time `json:"created_at"`
}
