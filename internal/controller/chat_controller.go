package controller

import (
	"errors"
	"strconv"

	"todo-ai-be/internal/dto"
	"todo-ai-be/internal/pkg/apperror"
	"todo-ai-be/internal/pkg/serverutils"
	"todo-ai-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router, middleware ...fiber.Handler)
	Chat(ctx *fiber.Ctx) error
	ListConversations(ctx *fiber.Ctx) error
	GetConversationMessages(ctx *fiber.Ctx) error
}

type chatController struct {
	chatService         service.IChatService
	conversationService service.IConversationService
	messageService      service.IMessageService
}

func NewChatController(
	chatService service.IChatService,
	conversationService service.IConversationService,
	messageService service.IMessageService,
) IChatController {
	return &chatController{
		chatService:         chatService,
		conversationService: conversationService,
		messageService:      messageService,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router, middleware ...fiber.Handler) {
	h := r.Group("/:userId")
	for _, m := range middleware {
		h.Use(m)
	}
	h.Post("chat", c.Chat)
	h.Get("conversations", c.ListConversations)
	h.Get("conversations/:id/messages", c.GetConversationMessages)
}

func (c *chatController) Chat(ctx *fiber.Ctx) error {
	userId := ctx.Params("userId")

	var req dto.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.NewValidation("Message cannot be empty")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.chatService.ProcessTurn(ctx.Context(), userId, &req)
	if err != nil {
		var providerErr *apperror.ProviderError
		if errors.As(err, &providerErr) {
			// The turn is already persisted; surface the sanitized text.
			return ctx.Status(fiber.StatusInternalServerError).
				JSON(serverutils.ErrorResponse(500, providerErr.Message))
		}
		return err
	}

	// The chat contract predates the response envelope; keep it flat.
	return ctx.JSON(res)
}

func (c *chatController) ListConversations(ctx *fiber.Ctx) error {
	userId := ctx.Params("userId")

	res, err := c.conversationService.List(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list conversations", res))
}

func (c *chatController) GetConversationMessages(ctx *fiber.Ctx) error {
	userId := ctx.Params("userId")
	id, err := strconv.ParseUint(ctx.Params("id"), 10, 64)
	if err != nil {
		return apperror.NewValidation("conversation id must be a positive integer")
	}

	conversation, err := c.conversationService.GetById(ctx.Context(), userId, uint(id))
	if err != nil {
		return err
	}
	if conversation == nil {
		return apperror.NewNotFound("Conversation", uint(id), userId)
	}

	res, err := c.messageService.GetByConversation(ctx.Context(), userId, uint(id))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get conversation messages", res))
}
