package memory

import (
	"time"

	"github.com/PriyadarshiniSathishKumar/Viyara-StudyBot/pkg/agent"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// QuizCache remembers the most recent quiz per conversation so the checker
// does not have to rescan the transcript on every answer. Entries expire;
// on a miss the dispatcher falls back to the transcript scan.
type QuizCache struct {
	cache *cache.Cache
}

func NewQuizCache() *QuizCache {
	// Default expiration of 1 hour, purge sweep every 10 minutes
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &QuizCache{cache: c}
}

func (q *QuizCache) Put(conversationId uuid.UUID, quiz agent.QuizMetadata) {
	q.cache.Set(conversationId.String(), quiz, cache.DefaultExpiration)
}

func (q *QuizCache) Get(conversationId uuid.UUID) (agent.QuizMetadata, bool) {
	if x, found := q.cache.Get(conversationId.String()); found {
		return x.(agent.QuizMetadata), true
	}
	return agent.QuizMetadata{}, false
}
