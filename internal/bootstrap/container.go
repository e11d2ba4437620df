package bootstrap

import (
	"errors"
	"log"

	"todo-ai-be/internal/config"
	"todo-ai-be/internal/controller"
	appLogger "todo-ai-be/internal/pkg/logger"
	"todo-ai-be/internal/repository/memory"
	"todo-ai-be/internal/repository/unitofwork"
	"todo-ai-be/internal/service"
	"todo-ai-be/pkg/agent"
	"todo-ai-be/pkg/llm/factory"

	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ChatController controller.IChatController
	TaskController controller.ITaskController

	// Shared facades
	Logger appLogger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := appLogger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. LLM Provider. A missing credential is not fatal: the agent falls
	// back to its degraded keyword mode.
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Keys.GoogleGemini,
	)
	if err != nil {
		if !errors.Is(err, factory.ErrMissingCredential) {
			log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
		}
		log.Printf("[WARN] LLM provider unavailable, running in degraded mode: %v", err)
		llmProvider = nil
	} else {
		log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)
	}

	// 3. Services
	taskService := service.NewTaskService(uowFactory)
	conversationService := service.NewConversationService(uowFactory)
	messageService := service.NewMessageService(uowFactory)

	executor := agent.NewExecutor(taskService)
	todoAgent := agent.New(llmProvider, executor, sysLogger, cfg.Ai.Temperature, cfg.Ai.MaxOutputTokens)

	historyCache := memory.NewHistoryRepository()
	chatService := service.NewChatService(conversationService, messageService, todoAgent, historyCache, sysLogger)

	return &Container{
		ChatController: controller.NewChatController(chatService, conversationService, messageService),
		TaskController: controller.NewTaskController(taskService),
		Logger:         sysLogger,
	}
}
