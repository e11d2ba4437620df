package factory

import (
	"fmt"

	"todo-ai-be/pkg/llm"
	"todo-ai-be/pkg/llm/gemini"
	"todo-ai-be/pkg/llm/ollama"
)

// ErrMissingCredential signals that the provider cannot be constructed at
// all. Callers may fall back to a degraded mode instead of failing startup.
var ErrMissingCredential = fmt.Errorf("missing LLM credential")

func NewLLMProvider(providerType, modelName, baseURL, apiKey string) (llm.LLMProvider, error) {
	switch providerType {
	case "gemini":
		if apiKey == "" {
			return nil, fmt.Errorf("%w: GEMINI_API_KEY is not set", ErrMissingCredential)
		}
		return gemini.NewGeminiProvider(apiKey, modelName), nil
	case "ollama":
		if baseURL == "" {
			baseURL = "http://localhost:11434" // Default
		}
		return ollama.NewOllamaProvider(baseURL, modelName), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
