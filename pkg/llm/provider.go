package llm

import (
	"context"
)

// Message represents a chat message in a provider-agnostic format
type Message struct {
	Role    string // "user", "assistant", "system"
	Content string
}

// Tool describes one callable function handed to the model. Parameter names
// must match what the executor expects; arguments are passed through without
// renaming.
type Tool struct {
	Name        string
	Description string
	Parameters  Schema
}

// Schema is a minimal JSON-schema subset: an object with typed properties.
type Schema struct {
	Type       string
	Properties map[string]Property
	Required   []string
}

type Property struct {
	Type        string
	Description string
	Enum        []string
}

// ToolCall is one structured call emitted by the model. Name may be empty or
// garbled; callers must tolerate both.
type ToolCall struct {
	Name string
	Args map[string]interface{}
}

// ChatResult carries the model's reply: free text, structured calls, or both.
type ChatResult struct {
	Text  string
	Calls []ToolCall
}

// Option allows for optional parameters like Temperature, MaxTokens, etc.
type Option func(*Options)

type Options struct {
	Temperature  float64
	MaxTokens    int
	Model        string // Override default model
	SystemPrompt string
}

func WithTemperature(temp float64) Option {
	return func(o *Options) {
		o.Temperature = temp
	}
}

func WithMaxTokens(maxTokens int) Option {
	return func(o *Options) {
		o.MaxTokens = maxTokens
	}
}

func WithModel(model string) Option {
	return func(o *Options) {
		o.Model = model
	}
}

func WithSystemPrompt(prompt string) Option {
	return func(o *Options) {
		o.SystemPrompt = prompt
	}
}

// LLMProvider defines the contract for any LLM backend
type LLMProvider interface {
	// Chat sends a chat history to the model and returns the response text
	Chat(ctx context.Context, history []Message, options ...Option) (string, error)

	// ChatWithTools sends a chat history plus a tool schema and returns text
	// and/or zero-or-more structured calls
	ChatWithTools(ctx context.Context, history []Message, tools []Tool, options ...Option) (*ChatResult, error)

	// Generate sends a single prompt to the model (convenience method)
	Generate(ctx context.Context, prompt string, options ...Option) (string, error)
}
