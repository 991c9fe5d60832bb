package memory

import (
	"context"
	"sync"
	"time"

	"github.com/PriyadarshiniSathishKumar/Viyara-StudyBot/internal/entity"
	"github.com/PriyadarshiniSathishKumar/Viyara-StudyBot/internal/repository/contract"

	"github.com/google/uuid"
)

type QuizSessionRepository struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*entity.QuizSession
	order    []uuid.UUID
}

var _ contract.QuizSessionRepository = &QuizSessionRepository{}

func NewQuizSessionRepository() *QuizSessionRepository {
	return &QuizSessionRepository{
		sessions: make(map[uuid.UUID]*entity.QuizSession),
	}
}

func (r *QuizSessionRepository) Create(_ context.Context, session *entity.QuizSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if session.Id == uuid.Nil {
		session.Id = uuid.New()
	}
	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now()
	}

	stored := *session
	r.sessions[session.Id] = &stored
	r.order = append(r.order, session.Id)
	return nil
}

func (r *QuizSessionRepository) Update(_ context.Context, session *entity.QuizSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *session
	r.sessions[session.Id] = &stored
	return nil
}

func (r *QuizSessionRepository) FindByUser(_ context.Context, userId uuid.UUID) ([]*entity.QuizSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*entity.QuizSession
	for _, id := range r.order {
		if s := r.sessions[id]; s.UserId == userId {
			copied := *s
			out = append(out, &copied)
		}
	}
	return out, nil
}
