package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Message is one immutable turn in a conversation transcript. Turns are
// append-only per conversation. AgentType is empty for user turns;
// Metadata holds the raw JSON of the per-agent payload.
type Message struct {
	Id             uuid.UUID
	ConversationId uuid.UUID
	Role           string // "user" | "assistant"
	Content        string
	AgentType      string
	Metadata       json.RawMessage
	CreatedAt      time.Time
}
