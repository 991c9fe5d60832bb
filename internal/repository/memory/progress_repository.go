package memory

import (
	"context"
	"sync"
	"time"

	"github.com/PriyadarshiniSathishKumar/Viyara-StudyBot/internal/entity"
	"github.com/PriyadarshiniSathishKumar/Viyara-StudyBot/internal/repository/contract"

	"github.com/google/uuid"
)

type progressKey struct {
	userId uuid.UUID
	topic  string
}

type ProgressRepository struct {
	mu       sync.RWMutex
	progress map[progressKey]*entity.UserProgress
}

var _ contract.ProgressRepository = &ProgressRepository{}

func NewProgressRepository() *ProgressRepository {
	return &ProgressRepository{
		progress: make(map[progressKey]*entity.UserProgress),
	}
}

func (r *ProgressRepository) FindByUserAndTopic(_ context.Context, userId uuid.UUID, topic string) (*entity.UserProgress, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.progress[progressKey{userId, topic}]
	if !ok {
		return nil, nil
	}
	copied := *p
	return &copied, nil
}

func (r *ProgressRepository) FindByUser(_ context.Context, userId uuid.UUID) ([]*entity.UserProgress, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*entity.UserProgress
	for key, p := range r.progress {
		if key.userId == userId {
			copied := *p
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *ProgressRepository) Upsert(_ context.Context, userId uuid.UUID, topic string, delta entity.ProgressDelta) (*entity.UserProgress, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := progressKey{userId, topic}
	p, ok := r.progress[key]
	if !ok {
		p = &entity.UserProgress{
			Id:     uuid.New(),
			UserId: userId,
			Topic:  topic,
		}
		r.progress[key] = p
	}

	p.QuestionsAnswered += delta.QuestionsAnswered
	p.CorrectAnswers += delta.CorrectAnswers
	p.StudyTimeMinutes += delta.StudyTimeMinutes
	p.LastStudied = time.Now()

	copied := *p
	return &copied, nil
}
