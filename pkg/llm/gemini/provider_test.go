package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"todo-ai-be/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProvider(t *testing.T, handler http.HandlerFunc) *GeminiProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	provider := NewGeminiProvider("test-key", "gemini-2.5-flash")
	provider.BaseURL = server.URL
	return provider
}

func TestChatWithTools_RequestShape(t *testing.T) {
	var captured geminiRequest
	var gotPath, gotKey string

	provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		json.NewEncoder(w).Encode(geminiResponse{Candidates: []geminiCandidate{
			{Content: &geminiContent{Parts: []geminiPart{{Text: "ok"}}}},
		}})
	})

	history := []llm.Message{
		{Role: "user", Content: "add a task"},
		{Role: "assistant", Content: "done"},
		{Role: "user", Content: "another"},
	}
	tools := []llm.Tool{{
		Name:        "add_task",
		Description: "Add a new task",
		Parameters: llm.Schema{
			Type: "object",
			Properties: map[string]llm.Property{
				"title": {Type: "string", Description: "Task title"},
			},
			Required: []string{"title"},
		},
	}}

	result, err := provider.ChatWithTools(context.Background(), history, tools,
		llm.WithSystemPrompt("You are a helpful assistant."),
		llm.WithTemperature(0.7),
		llm.WithMaxTokens(1000),
	)
	require.NoError(t, err)
	assert.Equal(t, "ok", result.Text)

	assert.Equal(t, "/models/gemini-2.5-flash:generateContent", gotPath)
	assert.Equal(t, "test-key", gotKey)

	// Assistant turns go over the wire as "model".
	require.Len(t, captured.Contents, 3)
	assert.Equal(t, "user", captured.Contents[0].Role)
	assert.Equal(t, "model", captured.Contents[1].Role)

	require.NotNil(t, captured.SystemInstruction)
	assert.Equal(t, "You are a helpful assistant.", captured.SystemInstruction.Parts[0].Text)

	require.Len(t, captured.Tools, 1)
	require.Len(t, captured.Tools[0].FunctionDeclarations, 1)
	decl := captured.Tools[0].FunctionDeclarations[0]
	assert.Equal(t, "add_task", decl.Name)
	assert.Equal(t, []string{"title"}, decl.Parameters.Required)

	require.NotNil(t, captured.GenerationConfig)
	assert.Equal(t, 0.7, captured.GenerationConfig.Temperature)
	assert.Equal(t, 1000, captured.GenerationConfig.MaxOutputTokens)
}

func TestChatWithTools_ParsesMixedParts(t *testing.T) {
	provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(geminiResponse{Candidates: []geminiCandidate{
			{Content: &geminiContent{Parts: []geminiPart{
				{Text: "Sure, "},
				{FunctionCall: &geminiFunctionCall{
					Name: "add_task",
					Args: map[string]interface{}{"title": "buy milk"},
				}},
				{Text: "adding it now."},
			}}},
		}})
	})

	result, err := provider.ChatWithTools(context.Background(), []llm.Message{{Role: "user", Content: "add buy milk"}}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Sure, adding it now.", result.Text)
	require.Len(t, result.Calls, 1)
	assert.Equal(t, "add_task", result.Calls[0].Name)
	assert.Equal(t, "buy milk", result.Calls[0].Args["title"])
}

func TestChatWithTools_NilArgsBecomeEmptyMap(t *testing.T) {
	provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(geminiResponse{Candidates: []geminiCandidate{
			{Content: &geminiContent{Parts: []geminiPart{
				{FunctionCall: &geminiFunctionCall{Name: "list_tasks"}},
			}}},
		}})
	})

	result, err := provider.ChatWithTools(context.Background(), []llm.Message{{Role: "user", Content: "list"}}, nil)
	require.NoError(t, err)
	require.Len(t, result.Calls, 1)
	assert.NotNil(t, result.Calls[0].Args)
}

func TestChatWithTools_EmptyCandidates(t *testing.T) {
	provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(geminiResponse{})
	})

	result, err := provider.ChatWithTools(context.Background(), []llm.Message{{Role: "user", Content: "hi"}}, nil)
	require.NoError(t, err)
	assert.Empty(t, result.Text)
	assert.Empty(t, result.Calls)
}

func TestChatWithTools_HTTPError(t *testing.T) {
	provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error": {"message": "Resource has been exhausted (e.g. check quota)"}}`))
	})

	_, err := provider.ChatWithTools(context.Background(), []llm.Message{{Role: "user", Content: "hi"}}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 429")
	assert.Contains(t, err.Error(), "quota")
}
