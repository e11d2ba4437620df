package dto

import "time"

type ChatRequest struct {
	ConversationId *uint  `json:"conversation_id"`
	Message        string `json:"message" validate:"required"`
}

type ToolCallResult struct {
	Name      string                 `json:"name"`
	Arguments map[string]interface{} `json:"arguments"`
	Result    map[string]interface{} `json:"result"`
}

type ChatResponse struct {
	ConversationId uint             `json:"conversation_id"`
	Response       string           `json:"response"`
	ToolCalls      []ToolCallResult `json:"tool_calls"`
}

type ConversationResponse struct {
	Id        uint      `json:"id"`
	UserId    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type MessageResponse struct {
	Id             uint      `json:"id"`
	UserId         string    `json:"user_id"`
	ConversationId uint      `json:"conversation_id"`
	Role           string    `json:"role"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
