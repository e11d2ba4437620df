package entity

import "time"

type Conversation struct {
	Id        uint
	UserId    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
