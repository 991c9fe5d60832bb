package contract

import (
	"context"

	"github.com/PriyadarshiniSathishKumar/Viyara-StudyBot/internal/entity"

	"github.com/google/uuid"
)

// MessageRepository is the transcript store. Messages are append-only;
// FindByConversation returns turns oldest first. Implementations must keep
// append and read atomic per conversation so a reader never observes a
// half-written turn.
type MessageRepository interface {
	Create(ctx context.Context, message *entity.Message) error
	FindByConversation(ctx context.Context, conversationId uuid.UUID) ([]*entity.Message, error)
	CountByConversation(ctx context.Context, conversationId uuid.UUID) (int64, error)
}
