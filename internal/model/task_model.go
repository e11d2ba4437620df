package model

import "time"

type Task struct {
	Id          uint      `gorm:"primaryKey;autoIncrement"`
	UserId      string    `gorm:"type:varchar(255);not null;index"` // User ownership for data isolation
	Title       string    `gorm:"type:text;not null"`
	Description *string   `gorm:"type:text"`
	Completed   bool      `gorm:"not null;default:false;index"`
	CreatedAt   time.Time `gorm:"autoCreateTime;index"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (Task) TableName() string {
	return "tasks"
}
