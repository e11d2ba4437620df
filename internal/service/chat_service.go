package service

import (
	"context"
	"strings"

	"todo-ai-be/internal/dto"
	"todo-ai-be/internal/entity"
	"todo-ai-be/internal/pkg/apperror"
	"todo-ai-be/internal/pkg/logger"
	"todo-ai-be/internal/repository/memory"
	"todo-ai-be/pkg/agent"
	"todo-ai-be/pkg/llm"
)

type IChatService interface {
	// ProcessTurn runs one chat turn. On provider failure it returns both
	// the response (carrying the sanitized apology text) and a
	// *apperror.ProviderError so the transport can pick the status code.
	ProcessTurn(ctx context.Context, userId string, req *dto.ChatRequest) (*dto.ChatResponse, error)
}

type chatService struct {
	conversationService IConversationService
	messageService      IMessageService
	agent               *agent.Agent
	historyCache        *memory.HistoryRepository
	log                 logger.ILogger
}

func NewChatService(
	conversationService IConversationService,
	messageService IMessageService,
	todoAgent *agent.Agent,
	historyCache *memory.HistoryRepository,
	log logger.ILogger,
) IChatService {
	return &chatService{
		conversationService: conversationService,
		messageService:      messageService,
		agent:               todoAgent,
		historyCache:        historyCache,
		log:                 log,
	}
}

func (s *chatService) ProcessTurn(ctx context.Context, userId string, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	userInput := strings.TrimSpace(req.Message)
	if userInput == "" {
		return nil, apperror.NewValidation("Message cannot be empty")
	}

	// 1. Resolve the conversation. A missing or foreign id silently starts
	// a new conversation; it never errors and never crosses users.
	conversation, err := s.resolveConversation(ctx, userId, req.ConversationId)
	if err != nil {
		return nil, err
	}

	// 2. Prior history, before this turn's user message is added.
	history, err := s.loadHistory(ctx, userId, conversation.Id)
	if err != nil {
		return nil, err
	}

	// 3. Persist the user message first so history is durable even if the
	// model call fails.
	if _, err := s.messageService.Create(ctx, userId, conversation.Id, entity.MessageRoleUser, userInput); err != nil {
		return nil, err
	}

	// 4. Run the agent.
	turn := s.agent.Run(ctx, userInput, userId, history)

	// 5. Persist the assistant reply (apology text included) and refresh
	// the conversation timestamp. The user message is never rolled back.
	if _, err := s.messageService.Create(ctx, userId, conversation.Id, entity.MessageRoleAssistant, turn.Response); err != nil {
		return nil, err
	}
	if err := s.conversationService.Touch(ctx, userId, conversation.Id); err != nil {
		return nil, err
	}

	s.historyCache.Save(userId, conversation.Id, append(history,
		llm.Message{Role: entity.MessageRoleUser, Content: userInput},
		llm.Message{Role: entity.MessageRoleAssistant, Content: turn.Response},
	))

	response := &dto.ChatResponse{
		ConversationId: conversation.Id,
		Response:       turn.Response,
		ToolCalls:      make([]dto.ToolCallResult, 0, len(turn.ToolCalls)),
	}
	for _, call := range turn.ToolCalls {
		response.ToolCalls = append(response.ToolCalls, dto.ToolCallResult{
			Name:      call.Name,
			Arguments: call.Arguments,
			Result:    call.Result,
		})
	}

	if turn.Err != nil {
		s.log.Error("chat", "Turn failed at the provider", map[string]interface{}{
			"user_id":         userId,
			"conversation_id": conversation.Id,
			"error":           turn.Err.Error(),
		})
		return response, apperror.NewProvider(turn.Response, turn.Err)
	}

	return response, nil
}

func (s *chatService) resolveConversation(ctx context.Context, userId string, conversationId *uint) (*dto.ConversationResponse, error) {
	if conversationId != nil && *conversationId > 0 {
		conversation, err := s.conversationService.GetById(ctx, userId, *conversationId)
		if err != nil {
			return nil, err
		}
		if conversation != nil {
			return conversation, nil
		}
	}
	return s.conversationService.Create(ctx, userId)
}

func (s *chatService) loadHistory(ctx context.Context, userId string, conversationId uint) ([]llm.Message, error) {
	if history, found := s.historyCache.Get(userId, conversationId); found {
		return history, nil
	}

	messages, err := s.messageService.GetByConversation(ctx, userId, conversationId)
	if err != nil {
		return nil, err
	}

	history := make([]llm.Message, len(messages))
	for i, m := range messages {
		history[i] = llm.Message{Role: m.Role, Content: m.Content}
	}
	return history, nil
}
