package service

import (
	"context"
	"fmt"
	"math"

	"github.com/PriyadarshiniSathishKumar/Viyara-StudyBot/internal/dto"
	"github.com/PriyadarshiniSathishKumar/Viyara-StudyBot/internal/repository/contract"

	"github.com/google/uuid"
)

type IUserService interface {
	GetUserStats(ctx context.Context, userId uuid.UUID) (*dto.UserStatsResponse, error)
	GetUserProgress(ctx context.Context, userId uuid.UUID) ([]*dto.TopicProgressResponse, error)
}

type userService struct {
	progressRepo contract.ProgressRepository
}

func NewUserService(progressRepo contract.ProgressRepository) IUserService {
	return &userService{progressRepo: progressRepo}
}

func (s *userService) GetUserStats(ctx context.Context, userId uuid.UUID) (*dto.UserStatsResponse, error) {
	progress, err := s.progressRepo.FindByUser(ctx, userId)
	if err != nil {
		return nil, err
	}

	totalQuestions := 0
	totalCorrect := 0
	totalStudyTime := 0
	for _, p := range progress {
		totalQuestions += p.QuestionsAnswered
		totalCorrect += p.CorrectAnswers
		totalStudyTime += p.StudyTimeMinutes
	}

	accuracy := 0
	if totalQuestions > 0 {
		accuracy = int(math.Round(float64(totalCorrect) / float64(totalQuestions) * 100))
	}

	return &dto.UserStatsResponse{
		QuestionsAnswered: totalQuestions,
		CorrectAnswers:    totalCorrect,
		Accuracy:          accuracy,
		StudyTime:         fmt.Sprintf("%dm", totalStudyTime),
		TopicsLearned:     len(progress),
		// TODO: derive the streak from daily activity once login events
		// are recorded; until then every user sees the demo value.
		Streak: 7,
	}, nil
}

func (s *userService) GetUserProgress(ctx context.Context, userId uuid.UUID) ([]*dto.TopicProgressResponse, error) {
	progress, err := s.progressRepo.FindByUser(ctx, userId)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.TopicProgressResponse, 0, len(progress))
	for _, p := range progress {
		result = append(result, &dto.TopicProgressResponse{
			UserId:            p.UserId,
			Topic:             p.Topic,
			QuestionsAnswered: p.QuestionsAnswered,
			CorrectAnswers:    p.CorrectAnswers,
			StudyTimeMinutes:  p.StudyTimeMinutes,
			LastStudied:       p.LastStudied,
		})
	}
	return result, nil
}
