package service

import (
	"context"
	"strings"

	"todo-ai-be/internal/dto"
	"todo-ai-be/internal/entity"
	"todo-ai-be/internal/pkg/apperror"
	"todo-ai-be/internal/repository/specification"
	"todo-ai-be/internal/repository/unitofwork"
)

type IMessageService interface {
	Create(ctx context.Context, userId string, conversationId uint, role, content string) (*dto.MessageResponse, error)
	GetByConversation(ctx context.Context, userId string, conversationId uint) ([]*dto.MessageResponse, error)
	GetById(ctx context.Context, userId string, id uint) (*dto.MessageResponse, error)
	Update(ctx context.Context, userId string, id uint, content string) (*dto.MessageResponse, error)
	Delete(ctx context.Context, userId string, id uint) error
}

type messageService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewMessageService(uowFactory unitofwork.RepositoryFactory) IMessageService {
	return &messageService{
		uowFactory: uowFactory,
	}
}

func messageToResponse(m *entity.Message) *dto.MessageResponse {
	return &dto.MessageResponse{
		Id:             m.Id,
		UserId:         m.UserId,
		ConversationId: m.ConversationId,
		Role:           m.Role,
		Content:        m.Content,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func (s *messageService) Create(ctx context.Context, userId string, conversationId uint, role, content string) (*dto.MessageResponse, error) {
	if role != entity.MessageRoleUser && role != entity.MessageRoleAssistant {
		return nil, apperror.NewValidation("Message role must be 'user' or 'assistant'")
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperror.NewValidation("Message content cannot be empty")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	message := entity.Message{
		UserId:         userId,
		ConversationId: conversationId,
		Role:           role,
		Content:        content,
	}
	if err := uow.MessageRepository().Create(ctx, &message); err != nil {
		return nil, err
	}
	return messageToResponse(&message), nil
}

// GetByConversation returns the conversation history in chronological
// order; within one turn the user message precedes the assistant reply.
func (s *messageService) GetByConversation(ctx context.Context, userId string, conversationId uint) ([]*dto.MessageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	messages, err := uow.MessageRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.ByConversationID{ConversationID: conversationId},
		specification.OrderBy{Field: "created_at"},
		specification.OrderBy{Field: "id"},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.MessageResponse, len(messages))
	for i, m := range messages {
		responses[i] = messageToResponse(m)
	}
	return responses, nil
}

func (s *messageService) GetById(ctx context.Context, userId string, id uint) (*dto.MessageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	message, err := uow.MessageRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if message == nil {
		return nil, nil // Not found is not an error for lookups
	}
	return messageToResponse(message), nil
}

func (s *messageService) Update(ctx context.Context, userId string, id uint, content string) (*dto.MessageResponse, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperror.NewValidation("Message content cannot be empty")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	message, err := uow.MessageRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if message == nil {
		return nil, apperror.NewNotFound("Message", id, userId)
	}

	message.Content = content
	if err := uow.MessageRepository().Update(ctx, message); err != nil {
		return nil, err
	}
	return messageToResponse(message), nil
}

func (s *messageService) Delete(ctx context.Context, userId string, id uint) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	message, err := uow.MessageRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if message == nil {
		return apperror.NewNotFound("Message", id, userId)
	}
	return uow.MessageRepository().Delete(ctx, id)
}
