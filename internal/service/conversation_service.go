package service

import (
	"context"
	"time"

	"todo-ai-be/internal/dto"
	"todo-ai-be/internal/entity"
	"todo-ai-be/internal/pkg/apperror"
	"todo-ai-be/internal/repository/specification"
	"todo-ai-be/internal/repository/unitofwork"
)

type IConversationService interface {
	Create(ctx context.Context, userId string) (*dto.ConversationResponse, error)
	GetById(ctx context.Context, userId string, id uint) (*dto.ConversationResponse, error)
	List(ctx context.Context, userId string) ([]*dto.ConversationResponse, error)
	Touch(ctx context.Context, userId string, id uint) error
}

type conversationService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewConversationService(uowFactory unitofwork.RepositoryFactory) IConversationService {
	return &conversationService{
		uowFactory: uowFactory,
	}
}

func conversationToResponse(c *entity.Conversation) *dto.ConversationResponse {
	return &dto.ConversationResponse{
		Id:        c.Id,
		UserId:    c.UserId,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (s *conversationService) Create(ctx context.Context, userId string) (*dto.ConversationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	conversation := entity.Conversation{
		UserId: userId,
	}
	if err := uow.ConversationRepository().Create(ctx, &conversation); err != nil {
		return nil, err
	}
	return conversationToResponse(&conversation), nil
}

func (s *conversationService) GetById(ctx context.Context, userId string, id uint) (*dto.ConversationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	conversation, err := uow.ConversationRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if conversation == nil {
		return nil, nil // Not found is not an error for lookups
	}
	return conversationToResponse(conversation), nil
}

func (s *conversationService) List(ctx context.Context, userId string) ([]*dto.ConversationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	conversations, err := uow.ConversationRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "updated_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.ConversationResponse, len(conversations))
	for i, c := range conversations {
		responses[i] = conversationToResponse(c)
	}
	return responses, nil
}

// Touch refreshes updated_at; each completed turn calls it.
func (s *conversationService) Touch(ctx context.Context, userId string, id uint) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	conversation, err := uow.ConversationRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if conversation == nil {
		return apperror.NewNotFound("Conversation", id, userId)
	}

	conversation.UpdatedAt = time.Now()
	return uow.ConversationRepository().Update(ctx, conversation)
}
