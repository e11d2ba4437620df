package memory

import (
	"fmt"
	"time"

	"todo-ai-be/pkg/llm"

	"github.com/patrickmn/go-cache"
)

// HistoryRepository keeps recently-used conversation histories in memory so
// an active conversation does not re-read every message row on each turn.
// The database stays the source of truth; entries expire on their own.
type HistoryRepository struct {
	cache *cache.Cache
}

func NewHistoryRepository() *HistoryRepository {
	// Default expiration of 30 minutes, purge of expired items every 10.
	c := cache.New(30*time.Minute, 10*time.Minute)
	return &HistoryRepository{
		cache: c,
	}
}

func historyKey(userId string, conversationId uint) string {
	return fmt.Sprintf("%s:%d", userId, conversationId)
}

func (r *HistoryRepository) Save(userId string, conversationId uint, history []llm.Message) {
	r.cache.Set(historyKey(userId, conversationId), history, cache.DefaultExpiration)
}

func (r *HistoryRepository) Get(userId string, conversationId uint) ([]llm.Message, bool) {
	if x, found := r.cache.Get(historyKey(userId, conversationId)); found {
		return x.([]llm.Message), true
	}
	return nil, false
}

func (r *HistoryRepository) Delete(userId string, conversationId uint) {
	r.cache.Delete(historyKey(userId, conversationId))
}
