package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	TypeAgentActivated  = "AGENT_ACTIVATED"
	TypeProgressUpdated = "PROGRESS_UPDATED"
)

// AgentActivated is published whenever a message is routed to an agent.
type AgentActivated struct {
	UserId         uuid.UUID `json:"userId"`
	ConversationId uuid.UUID `json:"conversationId"`
	Agent          string    `json:"agent"`
	OccurredAt     time.Time `json:"occurredAt"`
}

func (e AgentActivated) EventType() string { return TypeAgentActivated }

func (e AgentActivated) Payload() map[string]interface{} {
	return map[string]interface{}{
		"userId":         e.UserId.String(),
		"conversationId": e.ConversationId.String(),
		"agent":          e.Agent,
	}
}

func (e AgentActivated) Timestamp() time.Time { return e.OccurredAt }

// ProgressUpdated is published after a checked answer changes a user's
// per-topic counters.
type ProgressUpdated struct {
	UserId     uuid.UUID `json:"userId"`
	Topic      string    `json:"topic"`
	Correct    bool      `json:"correct"`
	OccurredAt time.Time `json:"occurredAt"`
}

func (e ProgressUpdated) EventType() string { return TypeProgressUpdated }

func (e ProgressUpdated) Payload() map[string]interface{} {
	return map[string]interface{}{
		"userId":  e.UserId.String(),
		"topic":   e.Topic,
		"correct": e.Correct,
	}
}

func (e ProgressUpdated) Timestamp() time.Time { return e.OccurredAt }

// Envelope is the wire form used on the pub/sub bus.
type Envelope struct {
	Type       string          `json:"type"`
	Payload    json.RawMessage `json:"payload"`
	OccurredAt time.Time       `json:"occurredAt"`
}

// Marshal wraps a concrete event in an Envelope and serializes it.
func Marshal(e Event) ([]byte, error) {
	payload, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("marshal %s payload: %w", e.EventType(), err)
	}
	return json.Marshal(Envelope{
		Type:       e.EventType(),
		Payload:    payload,
		OccurredAt: e.Timestamp(),
	})
}

// Unmarshal decodes an Envelope and its typed payload.
func Unmarshal(data []byte) (Event, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("unmarshal envelope: %w", err)
	}

	switch env.Type {
	case TypeAgentActivated:
		var e AgentActivated
		if err := json.Unmarshal(env.Payload, &e); err != nil {
			return nil, fmt.Errorf("unmarshal %s: %w", env.Type, err)
		}
		return e, nil
	case TypeProgressUpdated:
		var e ProgressUpdated
		if err := json.Unmarshal(env.Payload, &e); err != nil {
			return nil, fmt.Errorf("unmarshal %s: %w", env.Type, err)
		}
		return e, nil
	default:
		return nil, fmt.Errorf("unknown event type %q", env.Type)
	}
}
