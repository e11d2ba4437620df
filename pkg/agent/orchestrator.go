package agent

import (
	"context"
	"strings"

	"todo-ai-be/internal/pkg/logger"
	"todo-ai-be/pkg/llm"
)

// Agent turns one user utterance into zero-or-more tool invocations and a
// synthesized reply. A nil provider puts the agent in degraded mode: canned
// keyword responses, no tool calls.
type Agent struct {
	provider    llm.LLMProvider
	executor    *Executor
	log         logger.ILogger
	temperature float64
	maxTokens   int
}

// TurnResult is the outcome of one turn. Err is set only for provider
// failures; Response then carries the classified apology string.
type TurnResult struct {
	Response  string
	ToolCalls []ToolCall
	Err       error
}

func New(provider llm.LLMProvider, executor *Executor, log logger.ILogger, temperature float64, maxTokens int) *Agent {
	return &Agent{
		provider:    provider,
		executor:    executor,
		log:         log,
		temperature: temperature,
		maxTokens:   maxTokens,
	}
}

// Degraded reports whether the agent is running without a provider.
func (a *Agent) Degraded() bool {
	return a.provider == nil
}

// Run executes one turn. history holds all prior persisted messages of the
// conversation, oldest first, excluding the current user input.
func (a *Agent) Run(ctx context.Context, userInput, userId string, history []llm.Message) *TurnResult {
	if a.provider == nil {
		return &TurnResult{Response: fallbackResponse(userInput)}
	}

	messages := make([]llm.Message, 0, len(history)+1)
	messages = append(messages, history...)
	messages = append(messages, llm.Message{Role: "user", Content: userInput})

	result, err := a.provider.ChatWithTools(ctx, messages, Toolset(),
		llm.WithSystemPrompt(SystemPrompt),
		llm.WithTemperature(a.temperature),
		llm.WithMaxTokens(a.maxTokens),
	)
	if err != nil {
		a.log.Error("agent", "LLM provider call failed", map[string]interface{}{
			"user_id": userId,
			"error":   err.Error(),
		})
		return &TurnResult{Response: ClassifyProviderError(err), Err: err}
	}

	// Execute structured calls sequentially: later calls may depend on
	// earlier ones, and narration assumes call order.
	var toolCalls []ToolCall
	for _, call := range result.Calls {
		if call.Name == "" {
			continue
		}
		args := call.Args
		if args == nil {
			args = map[string]interface{}{}
		}
		// The authenticated caller wins over whatever the model put here.
		args["user_id"] = userId

		toolResult := a.executor.Execute(ctx, call.Name, args)
		toolCalls = append(toolCalls, ToolCall{
			Name:      call.Name,
			Arguments: args,
			Result:    toolResult,
		})
	}

	var response string
	if len(toolCalls) > 0 {
		response = Narrate(toolCalls)
	} else {
		response = strings.TrimSpace(result.Text)
		if response == "" {
			response = DefaultAcknowledgement
		}
	}

	return &TurnResult{Response: response, ToolCalls: toolCalls}
}
