package entity

import "time"

type Task struct {
	Id          uint
	UserId      string
	Title       string
	Description *string
	Completed   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
