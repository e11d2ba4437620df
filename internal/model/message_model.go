package model

import "time"

type Message struct {
	Id             uint         `gorm:"primaryKey;autoIncrement"`
	UserId         string       `gorm:"type:varchar(255);not null;index"`
	ConversationId uint         `gorm:"not null;index"`
	Conversation   Conversation `gorm:"foreignKey:ConversationId;constraint:OnDelete:CASCADE"`
	Role           string       `gorm:"type:varchar(50);not null"` // "user" or "assistant"
	Content        string       `gorm:"type:text;not null"`
	CreatedAt      time.Time    `gorm:"autoCreateTime;index"`
	UpdatedAt      time.Time    `gorm:"autoUpdateTime"`
}

func (Message) TableName() string {
	return "messages"
}
