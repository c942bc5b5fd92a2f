package dto

import "time"

type CreateTaskRequest struct {
	Title  string  `json:"title" validate:"required"`
	Status string  `json:"status"`
	Amount float64 `json:"amount"`
}

type TaskResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Status    string    `json:"status"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}
