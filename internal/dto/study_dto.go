package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type CreateConversationRequest struct {
	UserId uuid.UUID `json:"userId" validate:"required"`
	Title  string    `json:"title" validate:"required,max=255"`
}

type ConversationResponse struct {
	Id        uuid.UUID  `json:"id"`
	UserId    uuid.UUID  `json:"userId"`
	Title     string     `json:"title"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt"`
}

type MessageResponse struct {
	Id             uuid.UUID       `json:"id"`
	ConversationId uuid.UUID       `json:"conversationId"`
	Role           string          `json:"role"`
	Content        string          `json:"content"`
	AgentType      string          `json:"agentType,omitempty"`
	Metadata       json.RawMessage `json:"metadata,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
}

type AgentStatusResponse struct {
	Type        string `json:"type"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IsActive    bool   `json:"isActive"`
	Color       string `json:"color"`
	Icon        string `json:"icon"`
}

type UserStatsResponse struct {
	QuestionsAnswered int    `json:"questionsAnswered"`
	CorrectAnswers    int    `json:"correctAnswers"`
	Accuracy          int    `json:"accuracy"`
	StudyTime         string `json:"studyTime"`
	TopicsLearned     int    `json:"topicsLearned"`
	Streak            int    `json:"streak"`
}

type TopicProgressResponse struct {
	UserId            uuid.UUID `json:"userId"`
	Topic             string    `json:"topic"`
	QuestionsAnswered int       `json:"questionsAnswered"`
	CorrectAnswers    int       `json:"correctAnswers"`
	StudyTimeMinutes  int       `json:"studyTimeMinutes"`
	LastStudied       time.Time `json:"lastStudied"`
}

// AgentReply is the outcome of routing one user message. IsError marks a
// reply whose Content is the generic error text rather than agent output.
type AgentReply struct {
	ConversationId uuid.UUID       `json:"conversationId"`
	AgentType      string          `json:"agentType,omitempty"`
	Content        string          `json:"content"`
	Metadata       json.RawMessage `json:"metadata,omitempty"`
	IsError        bool            `json:"-"`
}
