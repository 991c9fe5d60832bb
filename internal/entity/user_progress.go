package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserProgress accumulates per-topic study counters. Keyed uniquely by
// (UserId, Topic); updated additively, never deleted.
type UserProgress struct {
	Id                uuid.UUID
	UserId            uuid.UUID
	Topic             string
	QuestionsAnswered int
	CorrectAnswers    int
	StudyTimeMinutes  int
	LastStudied       time.Time
}

// ProgressDelta is an additive update applied to a UserProgress record.
type ProgressDelta struct {
	QuestionsAnswered int
	CorrectAnswers    int
	StudyTimeMinutes  int
}
