package dto

import "time"

type CreateTaskRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description *string `json:"description"`
}

type UpdateTaskRequest struct {
	Id          uint
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

type TaskResponse struct {
	Id          uint      `json:"id"`
	UserId      string    `json:"user_id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
