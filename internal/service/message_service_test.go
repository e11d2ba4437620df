package service

import (
	"context"
	"fmt"
	"testing"

	"todo-ai-be/internal/entity"
	"todo-ai-be/internal/pkg/apperror"
	"todo-ai-be/internal/repository/unitofwork"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageService_Create(t *testing.T) {
	factory := unitofwork.NewRepositoryFactory(newTestDB(t))
	conversations := NewConversationService(factory)
	messages := NewMessageService(factory)
	ctx := context.Background()

	conversation, err := conversations.Create(ctx, "alice")
	require.NoError(t, err)

	t.Run("stores user and assistant roles", func(t *testing.T) {
		for _, role := range []string{entity.MessageRoleUser, entity.MessageRoleAssistant} {
			m, err := messages.Create(ctx, "alice", conversation.Id, role, "hello")
			require.NoError(t, err)
			assert.Equal(t, role, m.Role)
			assert.Equal(t, conversation.Id, m.ConversationId)
		}
	})

	t.Run("rejects unknown roles", func(t *testing.T) {
		_, err := messages.Create(ctx, "alice", conversation.Id, "system", "hello")
		var valErr *apperror.ValidationError
		require.ErrorAs(t, err, &valErr)
	})

	t.Run("rejects blank content", func(t *testing.T) {
		_, err := messages.Create(ctx, "alice", conversation.Id, entity.MessageRoleUser, "   ")
		var valErr *apperror.ValidationError
		require.ErrorAs(t, err, &valErr)
	})
}

func TestMessageService_ConversationHistory(t *testing.T) {
	factory := unitofwork.NewRepositoryFactory(newTestDB(t))
	conversations := NewConversationService(factory)
	messages := NewMessageService(factory)
	ctx := context.Background()

	conversation, err := conversations.Create(ctx, "alice")
	require.NoError(t, err)
	other, err := conversations.Create(ctx, "alice")
	require.NoError(t, err)

	// Three turns, inserted back-to-back; the id tiebreak keeps the order
	// stable even when timestamps collide.
	for i := 0; i < 3; i++ {
		_, err := messages.Create(ctx, "alice", conversation.Id, entity.MessageRoleUser, fmt.Sprintf("question %d", i))
		require.NoError(t, err)
		_, err = messages.Create(ctx, "alice", conversation.Id, entity.MessageRoleAssistant, fmt.Sprintf("answer %d", i))
		require.NoError(t, err)
	}
	_, err = messages.Create(ctx, "alice", other.Id, entity.MessageRoleUser, "unrelated")
	require.NoError(t, err)

	history, err := messages.GetByConversation(ctx, "alice", conversation.Id)
	require.NoError(t, err)
	require.Len(t, history, 6)
	for i := 0; i < 3; i++ {
		assert.Equal(t, entity.MessageRoleUser, history[2*i].Role)
		assert.Equal(t, fmt.Sprintf("question %d", i), history[2*i].Content)
		assert.Equal(t, entity.MessageRoleAssistant, history[2*i+1].Role)
		assert.Equal(t, fmt.Sprintf("answer %d", i), history[2*i+1].Content)
	}

	t.Run("history is hidden from other users", func(t *testing.T) {
		history, err := messages.GetByConversation(ctx, "bob", conversation.Id)
		require.NoError(t, err)
		assert.Empty(t, history)
	})
}

func TestMessageService_UpdateAndDelete(t *testing.T) {
	factory := unitofwork.NewRepositoryFactory(newTestDB(t))
	conversations := NewConversationService(factory)
	messages := NewMessageService(factory)
	ctx := context.Background()

	conversation, err := conversations.Create(ctx, "alice")
	require.NoError(t, err)
	message, err := messages.Create(ctx, "alice", conversation.Id, entity.MessageRoleUser, "tpyo")
	require.NoError(t, err)

	updated, err := messages.Update(ctx, "alice", message.Id, "typo fixed")
	require.NoError(t, err)
	assert.Equal(t, "typo fixed", updated.Content)

	var notFound *apperror.NotFoundError
	_, err = messages.Update(ctx, "bob", message.Id, "hijack")
	require.ErrorAs(t, err, &notFound)
	require.ErrorAs(t, messages.Delete(ctx, "bob", message.Id), &notFound)

	require.NoError(t, messages.Delete(ctx, "alice", message.Id))
	got, err := messages.GetById(ctx, "alice", message.Id)
	require.NoError(t, err)
	assert.Nil(t, got)
}
