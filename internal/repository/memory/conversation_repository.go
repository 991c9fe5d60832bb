package memory

import (
	"context"
	"sync"
	"time"

	"github.com/PriyadarshiniSathishKumar/Viyara-StudyBot/internal/entity"
	"github.com/PriyadarshiniSathishKumar/Viyara-StudyBot/internal/repository/contract"

	"github.com/google/uuid"
)

type ConversationRepository struct {
	mu            sync.RWMutex
	conversations map[uuid.UUID]*entity.Conversation
	order         []uuid.UUID
}

var _ contract.ConversationRepository = &ConversationRepository{}

func NewConversationRepository() *ConversationRepository {
	return &ConversationRepository{
		conversations: make(map[uuid.UUID]*entity.Conversation),
	}
}

func (r *ConversationRepository) Create(_ context.Context, conversation *entity.Conversation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if conversation.Id == uuid.Nil {
		conversation.Id = uuid.New()
	}
	if conversation.CreatedAt.IsZero() {
		conversation.CreatedAt = time.Now()
	}

	stored := *conversation
	r.conversations[conversation.Id] = &stored
	r.order = append(r.order, conversation.Id)
	return nil
}

func (r *ConversationRepository) FindById(_ context.Context, id uuid.UUID) (*entity.Conversation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.conversations[id]
	if !ok {
		return nil, nil
	}
	copied := *c
	return &copied, nil
}

func (r *ConversationRepository) FindByUser(_ context.Context, userId uuid.UUID) ([]*entity.Conversation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*entity.Conversation
	for _, id := range r.order {
		if c := r.conversations[id]; c.UserId == userId {
			copied := *c
			out = append(out, &copied)
		}
	}
	return out, nil
}
