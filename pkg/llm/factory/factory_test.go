package factory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLLMProvider(t *testing.T) {
	t.Run("gemini", func(t *testing.T) {
		provider, err := NewLLMProvider("gemini", "gemini-2.5-flash", "", "key")
		require.NoError(t, err)
		assert.NotNil(t, provider)
	})

	t.Run("gemini without a key", func(t *testing.T) {
		_, err := NewLLMProvider("gemini", "gemini-2.5-flash", "", "")
		require.ErrorIs(t, err, ErrMissingCredential)
	})

	t.Run("ollama", func(t *testing.T) {
		provider, err := NewLLMProvider("ollama", "llama3.2", "http://localhost:11434", "")
		require.NoError(t, err)
		assert.NotNil(t, provider)
	})

	t.Run("unknown provider", func(t *testing.T) {
		_, err := NewLLMProvider("openrouter", "model", "", "key")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrMissingCredential)
	})
}
