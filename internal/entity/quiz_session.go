package entity

import (
	"time"

	"github.com/google/uuid"
)

type QuizSession struct {
	Id             uuid.UUID
	UserId         uuid.UUID
	Topic          string
	TotalQuestions int
	CorrectAnswers int
	Completed      bool
	CreatedAt      time.Time
}
