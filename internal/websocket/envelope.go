package websocket

import (
	"encoding/json"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Envelope types carried over the realtime connection.
const (
	TypeUserMessage   = "user_message"
	TypeAgentResponse = "agent_response"
	TypeTypingStart   = "typing_start"
	TypeTypingEnd     = "typing_end"
	TypeError         = "error"
)

// Envelope is the single message shape used in both directions on the
// realtime connection. ConversationId is absent on connection-scoped
// envelopes such as the welcome message and errors.
type Envelope struct {
	Type           string          `json:"type" validate:"required,oneof=user_message agent_response typing_start typing_end error"`
	ConversationId *uuid.UUID      `json:"conversationId,omitempty"`
	Content        string          `json:"content"`
	AgentType      string          `json:"agentType,omitempty"`
	Metadata       json.RawMessage `json:"metadata,omitempty"`
}

var validate = validator.New()

// ParseEnvelope decodes and validates one inbound frame.
func ParseEnvelope(data []byte) (*Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, err
	}
	if err := validate.Struct(&env); err != nil {
		return nil, err
	}
	return &env, nil
}
