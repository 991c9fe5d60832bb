package model

import (
	"time"

	"github.com/google/uuid"
)

type UserProgress struct {
	Id                uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId            uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_topic"`
	Topic             string    `gorm:"type:text;not null;uniqueIndex:idx_user_topic"`
	QuestionsAnswered int       `gorm:"not null;default:0"`
	CorrectAnswers    int       `gorm:"not null;default:0"`
	StudyTimeMinutes  int       `gorm:"not null;default:0"`
	LastStudied       time.Time `gorm:"autoUpdateTime"`
}

func (UserProgress) TableName() string {
	return "user_progress"
}
