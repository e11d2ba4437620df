package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"

	"todo-ai-be/internal/dto"
	"todo-ai-be/internal/entity"
	"todo-ai-be/internal/pkg/logger"
	"todo-ai-be/internal/pkg/serverutils"
	"todo-ai-be/internal/repository/memory"
	"todo-ai-be/internal/repository/unitofwork"
	"todo-ai-be/internal/service"
	"todo-ai-be/pkg/agent"
	"todo-ai-be/pkg/database"
	"todo-ai-be/pkg/llm"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedProvider replays a fixed model result, or fails with err.
type scriptedProvider struct {
	result *llm.ChatResult
	err    error
}

func (p *scriptedProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	if p.err != nil {
		return "", p.err
	}
	return p.result.Text, nil
}

func (p *scriptedProvider) ChatWithTools(ctx context.Context, history []llm.Message, tools []llm.Tool, options ...llm.Option) (*llm.ChatResult, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.result, nil
}

func (p *scriptedProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return p.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, options...)
}

type apiFixture struct {
	app      *fiber.App
	tasks    service.ITaskService
	messages service.IMessageService
	provider *scriptedProvider
}

// newAPIFixture wires the full request path against sqlite, with the
// provider swapped for a scripted fake. middleware mirrors the optional auth
// chain of the real server.
func newAPIFixture(t *testing.T, provider *scriptedProvider, middleware ...fiber.Handler) *apiFixture {
	t.Helper()

	db, err := database.NewSQLiteDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	factory := unitofwork.NewRepositoryFactory(db)
	tasks := service.NewTaskService(factory)
	conversations := service.NewConversationService(factory)
	messages := service.NewMessageService(factory)

	var llmProvider llm.LLMProvider
	if provider != nil {
		llmProvider = provider
	}
	todoAgent := agent.New(llmProvider, agent.NewExecutor(tasks), logger.NewNopLogger(), 0.7, 1000)
	chat := service.NewChatService(conversations, messages, todoAgent, memory.NewHistoryRepository(), logger.NewNopLogger())

	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware(logger.NewNopLogger()))
	api := app.Group("/api")
	NewChatController(chat, conversations, messages).RegisterRoutes(api, middleware...)
	NewTaskController(tasks).RegisterRoutes(api, middleware...)

	return &apiFixture{app: app, tasks: tasks, messages: messages, provider: provider}
}

func (f *apiFixture) request(t *testing.T, method, path string, body interface{}, header ...string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	res, err := f.app.Test(req, -1)
	require.NoError(t, err)
	return res
}

func decodeBody(t *testing.T, res *http.Response, out interface{}) {
	t.Helper()
	defer res.Body.Close()
	require.NoError(t, json.NewDecoder(res.Body).Decode(out))
}

func TestChatEndpoint_AddTask(t *testing.T) {
	f := newAPIFixture(t, &scriptedProvider{result: &llm.ChatResult{
		Calls: []llm.ToolCall{{
			Name: "add_task",
			Args: map[string]interface{}{"title": "buy milk"},
		}},
	}})

	res := f.request(t, fiber.MethodPost, "/api/alice/chat", fiber.Map{"message": "add a task to buy milk"})
	require.Equal(t, http.StatusOK, res.StatusCode)

	var body dto.ChatResponse
	decodeBody(t, res, &body)
	assert.NotZero(t, body.ConversationId)
	assert.Equal(t, "I've added the task 'buy milk' for you!", body.Response)
	require.Len(t, body.ToolCalls, 1)
	assert.Equal(t, "add_task", body.ToolCalls[0].Name)
	assert.Equal(t, "alice", body.ToolCalls[0].Arguments["user_id"])

	// The task landed in the store for the path user.
	tasks, err := f.tasks.List(context.Background(), "alice", "all")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "buy milk", tasks[0].Title)

	// And the turn is readable back through the API.
	history, err := f.messages.GetByConversation(context.Background(), "alice", body.ConversationId)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, entity.MessageRoleUser, history[0].Role)
	assert.Equal(t, entity.MessageRoleAssistant, history[1].Role)
}

func TestChatEndpoint_EmptyMessage(t *testing.T) {
	f := newAPIFixture(t, &scriptedProvider{result: &llm.ChatResult{Text: "unused"}})

	res := f.request(t, fiber.MethodPost, "/api/alice/chat", fiber.Map{"message": ""})
	require.Equal(t, http.StatusBadRequest, res.StatusCode)

	var body serverutils.Response[any]
	decodeBody(t, res, &body)
	assert.False(t, body.Success)
	assert.Equal(t, 400, body.Code)
}

func TestChatEndpoint_MalformedBody(t *testing.T) {
	f := newAPIFixture(t, &scriptedProvider{result: &llm.ChatResult{Text: "unused"}})

	req := httptest.NewRequest(fiber.MethodPost, "/api/alice/chat", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	res, err := f.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestChatEndpoint_ProviderQuotaFailure(t *testing.T) {
	f := newAPIFixture(t, &scriptedProvider{
		err: &quotaError{},
	})

	res := f.request(t, fiber.MethodPost, "/api/alice/chat", fiber.Map{"message": "add a task"})
	require.Equal(t, http.StatusInternalServerError, res.StatusCode)

	var body serverutils.Response[any]
	decodeBody(t, res, &body)
	assert.False(t, body.Success)
	assert.Equal(t, agent.ErrMsgQuota, body.Message)

	// The failed turn is still on record: the user input and the apology.
	conversations := f.listConversations(t, "alice")
	require.Len(t, conversations, 1)
	history, err := f.messages.GetByConversation(context.Background(), "alice", conversations[0].Id)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "add a task", history[0].Content)
	assert.Equal(t, agent.ErrMsgQuota, history[1].Content)
}

type quotaError struct{}

func (e *quotaError) Error() string {
	return "429 Resource has been exhausted (e.g. check quota)"
}

func (f *apiFixture) listConversations(t *testing.T, userId string) []*dto.ConversationResponse {
	t.Helper()
	res := f.request(t, fiber.MethodGet, "/api/"+userId+"/conversations", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	var body serverutils.Response[[]*dto.ConversationResponse]
	decodeBody(t, res, &body)
	return body.Data
}

func TestConversationEndpoints(t *testing.T) {
	f := newAPIFixture(t, &scriptedProvider{result: &llm.ChatResult{Text: "noted"}})

	res := f.request(t, fiber.MethodPost, "/api/alice/chat", fiber.Map{"message": "remember this"})
	require.Equal(t, http.StatusOK, res.StatusCode)
	var chatBody dto.ChatResponse
	decodeBody(t, res, &chatBody)

	t.Run("conversations are listed per user", func(t *testing.T) {
		assert.Len(t, f.listConversations(t, "alice"), 1)
		assert.Empty(t, f.listConversations(t, "bob"))
	})

	t.Run("messages are returned in order", func(t *testing.T) {
		res := f.request(t, fiber.MethodGet, "/api/alice/conversations/"+itoa(chatBody.ConversationId)+"/messages", nil)
		require.Equal(t, http.StatusOK, res.StatusCode)

		var body serverutils.Response[[]*dto.MessageResponse]
		decodeBody(t, res, &body)
		require.Len(t, body.Data, 2)
		assert.Equal(t, "remember this", body.Data[0].Content)
		assert.Equal(t, "noted", body.Data[1].Content)
	})

	t.Run("foreign conversations are not found", func(t *testing.T) {
		res := f.request(t, fiber.MethodGet, "/api/bob/conversations/"+itoa(chatBody.ConversationId)+"/messages", nil)
		assert.Equal(t, http.StatusNotFound, res.StatusCode)
	})

	t.Run("non-numeric conversation id is rejected", func(t *testing.T) {
		res := f.request(t, fiber.MethodGet, "/api/alice/conversations/abc/messages", nil)
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	})
}

func itoa(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}
