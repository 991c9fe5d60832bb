package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/PriyadarshiniSathishKumar/Viyara-StudyBot/internal/entity"
	"github.com/PriyadarshiniSathishKumar/Viyara-StudyBot/pkg/agent"

	"github.com/google/uuid"
)

func TestMessageRepositoryKeepsOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewMessageRepository()
	conversationId := uuid.New()

	contents := []string{"first", "second", "third"}
	for _, c := range contents {
		err := repo.Create(ctx, &entity.Message{ConversationId: conversationId, Role: "user", Content: c})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	messages, err := repo.FindByConversation(ctx, conversationId)
	if err != nil {
		t.Fatalf("FindByConversation: %v", err)
	}
	if len(messages) != len(contents) {
		t.Fatalf("len = %d, want %d", len(messages), len(contents))
	}
	for i, want := range contents {
		if messages[i].Content != want {
			t.Errorf("message %d = %q, want %q", i, messages[i].Content, want)
		}
		if messages[i].Id == uuid.Nil {
			t.Errorf("message %d has no id", i)
		}
	}

	count, err := repo.CountByConversation(ctx, conversationId)
	if err != nil {
		t.Fatalf("CountByConversation: %v", err)
	}
	if count != 3 {
		t.Errorf("count = %d, want 3", count)
	}
}

func TestMessageRepositoryReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewMessageRepository()
	conversationId := uuid.New()

	if err := repo.Create(ctx, &entity.Message{ConversationId: conversationId, Content: "original"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	first, _ := repo.FindByConversation(ctx, conversationId)
	first[0].Content = "mutated"

	second, _ := repo.FindByConversation(ctx, conversationId)
	if second[0].Content != "original" {
		t.Error("stored message was mutated through a returned pointer")
	}
}

func TestProgressRepositoryUpsertIsAdditive(t *testing.T) {
	ctx := context.Background()
	repo := NewProgressRepository()
	userId := uuid.New()

	for i := 0; i < 3; i++ {
		_, err := repo.Upsert(ctx, userId, "biology", entity.ProgressDelta{
			QuestionsAnswered: 1,
			CorrectAnswers:    1,
			StudyTimeMinutes:  1,
		})
		if err != nil {
			t.Fatalf("Upsert: %v", err)
		}
	}

	p, err := repo.FindByUserAndTopic(ctx, userId, "biology")
	if err != nil {
		t.Fatalf("FindByUserAndTopic: %v", err)
	}
	if p == nil {
		t.Fatal("progress not found")
	}
	if p.QuestionsAnswered != 3 || p.CorrectAnswers != 3 || p.StudyTimeMinutes != 3 {
		t.Errorf("counters = %d/%d/%d, want 3/3/3", p.QuestionsAnswered, p.CorrectAnswers, p.StudyTimeMinutes)
	}
	if p.LastStudied.IsZero() {
		t.Error("LastStudied not set")
	}

	// A different topic gets its own record.
	if _, err := repo.Upsert(ctx, userId, "algebra", entity.ProgressDelta{QuestionsAnswered: 1}); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	all, err := repo.FindByUser(ctx, userId)
	if err != nil {
		t.Fatalf("FindByUser: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("topic count = %d, want 2", len(all))
	}

	absent, err := repo.FindByUserAndTopic(ctx, userId, "chemistry")
	if err != nil {
		t.Fatalf("FindByUserAndTopic: %v", err)
	}
	if absent != nil {
		t.Error("expected nil for unknown topic")
	}
}

func TestProgressRepositoryConcurrentUpserts(t *testing.T) {
	ctx := context.Background()
	repo := NewProgressRepository()
	userId := uuid.New()

	var wg sync.WaitGroup
	const n = 50
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = repo.Upsert(ctx, userId, "biology", entity.ProgressDelta{QuestionsAnswered: 1})
		}()
	}
	wg.Wait()

	p, _ := repo.FindByUserAndTopic(ctx, userId, "biology")
	if p.QuestionsAnswered != n {
		t.Errorf("questions = %d, want %d", p.QuestionsAnswered, n)
	}
}

func TestQuizCache(t *testing.T) {
	cache := NewQuizCache()
	conversationId := uuid.New()

	if _, found := cache.Get(conversationId); found {
		t.Fatal("unexpected hit on empty cache")
	}

	quiz := agent.QuizMetadata{Topic: "biology", Questions: []agent.QuizQuestion{{
		Question: "q", Options: []string{"a", "b"}, CorrectAnswer: 1,
	}}}
	cache.Put(conversationId, quiz)

	got, found := cache.Get(conversationId)
	if !found {
		t.Fatal("expected cache hit")
	}
	if got.Topic != "biology" || len(got.Questions) != 1 {
		t.Errorf("cached quiz = %+v", got)
	}

	// A later quiz for the same conversation replaces the earlier one.
	cache.Put(conversationId, agent.QuizMetadata{Topic: "algebra"})
	got, _ = cache.Get(conversationId)
	if got.Topic != "algebra" {
		t.Errorf("topic = %q, want algebra", got.Topic)
	}
}
