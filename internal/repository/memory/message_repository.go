package memory

import (
	"context"
	"sync"
	"time"

	"github.com/PriyadarshiniSathishKumar/Viyara-StudyBot/internal/entity"
	"github.com/PriyadarshiniSathishKumar/Viyara-StudyBot/internal/repository/contract"

	"github.com/google/uuid"
)

// MessageRepository keeps transcripts in process memory. Appends and reads
// share one lock so a reader never sees a partially appended turn.
type MessageRepository struct {
	mu       sync.RWMutex
	messages map[uuid.UUID][]*entity.Message // conversationId -> ordered turns
}

var _ contract.MessageRepository = &MessageRepository{}

func NewMessageRepository() *MessageRepository {
	return &MessageRepository{
		messages: make(map[uuid.UUID][]*entity.Message),
	}
}

func (r *MessageRepository) Create(_ context.Context, message *entity.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if message.Id == uuid.Nil {
		message.Id = uuid.New()
	}
	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now()
	}

	stored := *message
	r.messages[message.ConversationId] = append(r.messages[message.ConversationId], &stored)
	return nil
}

func (r *MessageRepository) FindByConversation(_ context.Context, conversationId uuid.UUID) ([]*entity.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := r.messages[conversationId]
	out := make([]*entity.Message, len(stored))
	for i, m := range stored {
		copied := *m
		out[i] = &copied
	}
	return out, nil
}

func (r *MessageRepository) CountByConversation(_ context.Context, conversationId uuid.UUID) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.messages[conversationId])), nil
}
