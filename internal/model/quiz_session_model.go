package model

import (
	"time"

	"github.com/google/uuid"
)

type QuizSession struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId         uuid.UUID `gorm:"type:uuid;not null;index"`
	Topic          string    `gorm:"type:text;not null"`
	TotalQuestions int       `gorm:"not null"`
	CorrectAnswers int       `gorm:"not null;default:0"`
	Completed      bool      `gorm:"not null;default:false"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
}

func (QuizSession) TableName() string {
	return "quiz_sessions"
}
