package entity

import "time"

const (
	MessageRoleUser      = "user"
	MessageRoleAssistant = "assistant"
)

type Message struct {
	Id             uint
	UserId         string
	ConversationId uint
	Role           string
	Content        string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
