package agent

import (
	"encoding/json"
	"fmt"
)

// Type identifies one of the five fixed study agents.
type Type string

const (
	TypeExplainer Type = "explainer"
	TypeQuiz      Type = "quiz"
	TypeChecker   Type = "checker"
	TypeMotivator Type = "motivator"
	TypeMemory    Type = "memory"
)

// AllTypes lists the agents in their fixed presentation order.
var AllTypes = []Type{TypeExplainer, TypeQuiz, TypeChecker, TypeMotivator, TypeMemory}

// Valid reports whether t is one of the five known agents.
func (t Type) Valid() bool {
	switch t {
	case TypeExplainer, TypeQuiz, TypeChecker, TypeMotivator, TypeMemory:
		return true
	}
	return false
}

// Metadata is the per-agent structured payload attached to a response.
// Each agent produces exactly one concrete shape; the union is keyed by
// the agent type on the wire.
type Metadata interface {
	AgentType() Type
}

// QuizQuestion is a single multiple-choice question.
type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

// QuizMetadata carries a generated quiz. CorrectAnswer is always a valid
// index into Options.
type QuizMetadata struct {
	Topic     string         `json:"topic"`
	Questions []QuizQuestion `json:"questions"`
}

func (QuizMetadata) AgentType() Type { return TypeQuiz }

// FeedbackMetadata carries the checker's evaluation of an answer. Topic is
// copied from the quiz being answered so progress updates can key on it.
type FeedbackMetadata struct {
	IsCorrect   bool   `json:"isCorrect"`
	Feedback    string `json:"feedback"`
	Explanation string `json:"explanation"`
	Score       int    `json:"score"`
	Topic       string `json:"topic,omitempty"`
}

func (FeedbackMetadata) AgentType() Type { return TypeChecker }

// ExplanationMetadata carries the raw explanation behind a formatted
// explainer response.
type ExplanationMetadata struct {
	Explanation string   `json:"explanation"`
	KeyPoints   []string `json:"keyPoints"`
	Examples    []string `json:"examples,omitempty"`
}

func (ExplanationMetadata) AgentType() Type { return TypeExplainer }

// MotivationMetadata carries the motivator's three-part message.
type MotivationMetadata struct {
	Message       string `json:"message"`
	Tip           string `json:"tip"`
	Encouragement string `json:"encouragement"`
}

func (MotivationMetadata) AgentType() Type { return TypeMotivator }

// MemoryMetadata summarizes what the conversation has covered so far.
type MemoryMetadata struct {
	Topics       []string `json:"topics"`
	MessageCount int      `json:"messageCount"`
}

func (MemoryMetadata) AgentType() Type { return TypeMemory }

// Response is the structured output of exactly one agent handler.
type Response struct {
	Content   string   `json:"content"`
	AgentType Type     `json:"agentType"`
	Metadata  Metadata `json:"metadata,omitempty"`
}

// DecodeMetadata parses raw metadata JSON into the concrete shape for the
// given agent type. Returns nil for empty input.
func DecodeMetadata(t Type, raw []byte) (Metadata, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	switch t {
	case TypeQuiz:
		var m QuizMetadata
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, fmt.Errorf("decode quiz metadata: %w", err)
		}
		return m, nil
	case TypeChecker:
		var m FeedbackMetadata
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, fmt.Errorf("decode feedback metadata: %w", err)
		}
		return m, nil
	case TypeExplainer:
		var m ExplanationMetadata
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, fmt.Errorf("decode explanation metadata: %w", err)
		}
		return m, nil
	case TypeMotivator:
		var m MotivationMetadata
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, fmt.Errorf("decode motivation metadata: %w", err)
		}
		return m, nil
	case TypeMemory:
		var m MemoryMetadata
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, fmt.Errorf("decode memory metadata: %w", err)
		}
		return m, nil
	default:
		return nil, fmt.Errorf("unknown agent type %q", t)
	}
}

// MetadataTopic extracts the topic label from metadata shapes that carry
// one. Returns "" when the shape has no topic.
func MetadataTopic(m Metadata) string {
	switch v := m.(type) {
	case QuizMetadata:
		return v.Topic
	case FeedbackMetadata:
		return v.Topic
	default:
		return ""
	}
}
