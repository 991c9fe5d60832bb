package contract

import (
	"context"

	"github.com/PriyadarshiniSathishKumar/Viyara-StudyBot/internal/entity"

	"github.com/google/uuid"
)

type ConversationRepository interface {
	Create(ctx context.Context, conversation *entity.Conversation) error
	FindById(ctx context.Context, id uuid.UUID) (*entity.Conversation, error)
	FindByUser(ctx context.Context, userId uuid.UUID) ([]*entity.Conversation, error)
}
