package model

import "time"

type Conversation struct {
	Id        uint      `gorm:"primaryKey;autoIncrement"`
	UserId    string    `gorm:"type:varchar(255);not null;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Conversation) TableName() string {
	return "conversations"
}
