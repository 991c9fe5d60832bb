package contract

import (
	"context"

	"github.com/PriyadarshiniSathishKumar/Viyara-StudyBot/internal/entity"

	"github.com/google/uuid"
)

// ProgressRepository stores per-topic study counters keyed by
// (userId, topic). Upsert creates the record on first update and applies
// the delta additively thereafter.
type ProgressRepository interface {
	FindByUserAndTopic(ctx context.Context, userId uuid.UUID, topic string) (*entity.UserProgress, error)
	FindByUser(ctx context.Context, userId uuid.UUID) ([]*entity.UserProgress, error)
	Upsert(ctx context.Context, userId uuid.UUID, topic string, delta entity.ProgressDelta) (*entity.UserProgress, error)
}
