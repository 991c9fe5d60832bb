package contract

import (
	"context"

	"github.com/PriyadarshiniSathishKumar/Viyara-StudyBot/internal/entity"

	"github.com/google/uuid"
)

type QuizSessionRepository interface {
	Create(ctx context.Context, session *entity.QuizSession) error
	Update(ctx context.Context, session *entity.QuizSession) error
	FindByUser(ctx context.Context, userId uuid.UUID) ([]*entity.QuizSession, error)
}
