package service

import (
	"context"
	"testing"

	"github.com/PriyadarshiniSathishKumar/Viyara-StudyBot/internal/entity"
	"github.com/PriyadarshiniSathishKumar/Viyara-StudyBot/internal/repository/memory"

	"github.com/google/uuid"
)

func TestGetUserStats(t *testing.T) {
	ctx := context.Background()
	progressRepo := memory.NewProgressRepository()
	svc := NewUserService(progressRepo)
	userId := uuid.New()

	// No progress yet: zeroes, not division errors.
	stats, err := svc.GetUserStats(ctx, userId)
	if err != nil {
		t.Fatalf("GetUserStats: %v", err)
	}
	if stats.QuestionsAnswered != 0 || stats.Accuracy != 0 {
		t.Errorf("empty stats = %+v, want zeroes", stats)
	}
	if stats.StudyTime != "0m" {
		t.Errorf("study time = %q, want 0m", stats.StudyTime)
	}

	seed := []struct {
		topic string
		delta entity.ProgressDelta
	}{
		{"biology", entity.ProgressDelta{QuestionsAnswered: 1, CorrectAnswers: 1, StudyTimeMinutes: 1}},
		{"biology", entity.ProgressDelta{QuestionsAnswered: 1, CorrectAnswers: 1, StudyTimeMinutes: 1}},
		{"algebra", entity.ProgressDelta{QuestionsAnswered: 1, CorrectAnswers: 0, StudyTimeMinutes: 1}},
	}
	for _, s := range seed {
		if _, err := progressRepo.Upsert(ctx, userId, s.topic, s.delta); err != nil {
			t.Fatalf("Upsert: %v", err)
		}
	}

	stats, err = svc.GetUserStats(ctx, userId)
	if err != nil {
		t.Fatalf("GetUserStats: %v", err)
	}
	if stats.QuestionsAnswered != 3 {
		t.Errorf("questions = %d, want 3", stats.QuestionsAnswered)
	}
	if stats.CorrectAnswers != 2 {
		t.Errorf("correct = %d, want 2", stats.CorrectAnswers)
	}
	if stats.Accuracy != 67 {
		t.Errorf("accuracy = %d, want 67", stats.Accuracy)
	}
	if stats.StudyTime != "3m" {
		t.Errorf("study time = %q, want 3m", stats.StudyTime)
	}
	if stats.TopicsLearned != 2 {
		t.Errorf("topics learned = %d, want 2", stats.TopicsLearned)
	}
	if stats.Streak != 7 {
		t.Errorf("streak = %d, want 7", stats.Streak)
	}
}
