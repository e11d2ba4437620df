package unitofwork

import (
	"context"

	"todo-ai-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	TaskRepository() contract.TaskRepository
	ConversationRepository() contract.ConversationRepository
	MessageRepository() contract.MessageRepository
}
