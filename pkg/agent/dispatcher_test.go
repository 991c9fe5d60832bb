package agent

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/PriyadarshiniSathishKumar/Viyara-StudyBot/pkg/generator"

	"github.com/google/uuid"
)

type fakeQuizStore struct {
	quizzes map[uuid.UUID]QuizMetadata
}

func newFakeQuizStore() *fakeQuizStore {
	return &fakeQuizStore{quizzes: make(map[uuid.UUID]QuizMetadata)}
}

func (s *fakeQuizStore) Put(id uuid.UUID, quiz QuizMetadata) { s.quizzes[id] = quiz }

func (s *fakeQuizStore) Get(id uuid.UUID) (QuizMetadata, bool) {
	q, ok := s.quizzes[id]
	return q, ok
}

func mustJSON(t *testing.T, v interface{}) json.RawMessage {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return data
}

func TestDispatchQuiz(t *testing.T) {
	store := newFakeQuizStore()
	d := NewDispatcher(generator.NewFallback(), store)
	conversationId := uuid.New()

	resp, err := d.Dispatch(context.Background(), TypeQuiz, "photosynthesis", conversationId, nil)
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}

	if resp.AgentType != TypeQuiz {
		t.Errorf("agent type = %v, want quiz", resp.AgentType)
	}
	if resp.Content != "Here's a quiz on photosynthesis!" {
		t.Errorf("unexpected content: %q", resp.Content)
	}

	quiz, ok := resp.Metadata.(QuizMetadata)
	if !ok {
		t.Fatalf("metadata is %T, want QuizMetadata", resp.Metadata)
	}
	if quiz.Topic != "photosynthesis" {
		t.Errorf("topic = %q, want photosynthesis", quiz.Topic)
	}
	if len(quiz.Questions) != 3 {
		t.Errorf("question count = %d, want 3", len(quiz.Questions))
	}
	for i, q := range quiz.Questions {
		if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
			t.Errorf("question %d: correct answer %d out of range", i, q.CorrectAnswer)
		}
	}

	if _, cached := store.Get(conversationId); !cached {
		t.Error("generated quiz was not cached")
	}
}

func TestDispatchCheckerWithoutQuiz(t *testing.T) {
	d := NewDispatcher(generator.NewFallback(), newFakeQuizStore())

	resp, err := d.Dispatch(context.Background(), TypeChecker, "my answer is a", uuid.New(), []Turn{
		{Role: "user", Content: "hello"},
		{Role: "assistant", Content: "hi", AgentType: TypeExplainer},
	})
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}

	want := "I don't see a recent quiz question to check. Please take a quiz first!"
	if resp.Content != want {
		t.Errorf("content = %q, want %q", resp.Content, want)
	}
	if resp.Metadata != nil {
		t.Errorf("metadata = %v, want nil", resp.Metadata)
	}
}

func TestDispatchCheckerCorrectAnswer(t *testing.T) {
	d := NewDispatcher(generator.NewFallback(), newFakeQuizStore())
	conversationId := uuid.New()

	quiz := QuizMetadata{
		Topic: "biology",
		Questions: []QuizQuestion{{
			Question:      "Which organelle produces energy?",
			Options:       []string{"Nucleus", "Mitochondria", "Ribosome", "Vacuole"},
			CorrectAnswer: 1,
			Explanation:   "Mitochondria run cellular respiration.",
		}},
	}
	turns := []Turn{
		{Role: "assistant", AgentType: TypeQuiz, Metadata: mustJSON(t, quiz)},
		{Role: "user", Content: "mitochondria"},
	}

	resp, err := d.Dispatch(context.Background(), TypeChecker, "mitochondria", conversationId, turns)
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}

	feedback, ok := resp.Metadata.(FeedbackMetadata)
	if !ok {
		t.Fatalf("metadata is %T, want FeedbackMetadata", resp.Metadata)
	}
	if !feedback.IsCorrect {
		t.Error("expected answer to be judged correct")
	}
	if feedback.Score != 10 {
		t.Errorf("score = %d, want 10", feedback.Score)
	}
	if feedback.Topic != "biology" {
		t.Errorf("topic = %q, want biology", feedback.Topic)
	}
	if !strings.Contains(resp.Content, "Correct!") {
		t.Errorf("content missing success header: %q", resp.Content)
	}
}

func TestDispatchCheckerPrefersCachedQuiz(t *testing.T) {
	store := newFakeQuizStore()
	d := NewDispatcher(generator.NewFallback(), store)
	conversationId := uuid.New()

	store.Put(conversationId, QuizMetadata{
		Topic: "chemistry",
		Questions: []QuizQuestion{{
			Question:      "What is H2O?",
			Options:       []string{"Water", "Salt", "Gold", "Air"},
			CorrectAnswer: 0,
		}},
	})

	// Transcript has no quiz turn; only the cache can satisfy the lookup.
	resp, err := d.Dispatch(context.Background(), TypeChecker, "water", conversationId, nil)
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}

	feedback, ok := resp.Metadata.(FeedbackMetadata)
	if !ok {
		t.Fatalf("metadata is %T, want FeedbackMetadata", resp.Metadata)
	}
	if feedback.Topic != "chemistry" {
		t.Errorf("topic = %q, want chemistry", feedback.Topic)
	}
}

func TestDispatchCheckerUsesMostRecentQuiz(t *testing.T) {
	d := NewDispatcher(generator.NewFallback(), nil)

	older := QuizMetadata{Topic: "history", Questions: []QuizQuestion{{
		Question: "old", Options: []string{"a", "b"}, CorrectAnswer: 0,
	}}}
	newer := QuizMetadata{Topic: "geography", Questions: []QuizQuestion{{
		Question: "new", Options: []string{"Paris", "Rome"}, CorrectAnswer: 0,
	}}}
	turns := []Turn{
		{Role: "assistant", AgentType: TypeQuiz, Metadata: mustJSON(t, older)},
		{Role: "assistant", AgentType: TypeQuiz, Metadata: mustJSON(t, newer)},
		{Role: "user", Content: "paris"},
	}

	resp, err := d.Dispatch(context.Background(), TypeChecker, "paris", uuid.New(), turns)
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}

	feedback := resp.Metadata.(FeedbackMetadata)
	if feedback.Topic != "geography" {
		t.Errorf("topic = %q, want geography (most recent quiz)", feedback.Topic)
	}
}

func TestDispatchMemory(t *testing.T) {
	d := NewDispatcher(generator.NewFallback(), nil)

	turns := []Turn{
		{Role: "user", Content: "quiz me on biology"},
		{Role: "assistant", AgentType: TypeQuiz, Metadata: mustJSON(t, QuizMetadata{Topic: "biology"})},
		{Role: "user", Content: "quiz me on chemistry"},
		{Role: "assistant", AgentType: TypeQuiz, Metadata: mustJSON(t, QuizMetadata{Topic: "chemistry"})},
		{Role: "assistant", AgentType: TypeQuiz, Metadata: mustJSON(t, QuizMetadata{Topic: "biology"})},
		{Role: "user", Content: "what did we cover"},
	}

	resp, err := d.Dispatch(context.Background(), TypeMemory, "what did we cover", uuid.New(), turns)
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}

	memory, ok := resp.Metadata.(MemoryMetadata)
	if !ok {
		t.Fatalf("metadata is %T, want MemoryMetadata", resp.Metadata)
	}
	if memory.MessageCount != len(turns) {
		t.Errorf("message count = %d, want %d", memory.MessageCount, len(turns))
	}
	if len(memory.Topics) != 2 {
		t.Fatalf("topics = %v, want two distinct topics", memory.Topics)
	}
	if memory.Topics[0] != "biology" || memory.Topics[1] != "chemistry" {
		t.Errorf("topics = %v, want [biology chemistry] in first-seen order", memory.Topics)
	}
	if !strings.Contains(resp.Content, "2 topics") {
		t.Errorf("content should mention topic count: %q", resp.Content)
	}
}

func TestDispatchExplainer(t *testing.T) {
	d := NewDispatcher(generator.NewFallback(), nil)

	resp, err := d.Dispatch(context.Background(), TypeExplainer, "Explain the water cycle", uuid.New(), nil)
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}

	if resp.AgentType != TypeExplainer {
		t.Errorf("agent type = %v, want explainer", resp.AgentType)
	}
	if !strings.Contains(resp.Content, "water cycle") {
		t.Errorf("content should mention the topic: %q", resp.Content)
	}
	if _, ok := resp.Metadata.(ExplanationMetadata); !ok {
		t.Errorf("metadata is %T, want ExplanationMetadata", resp.Metadata)
	}
}

func TestDispatchUnknownAgent(t *testing.T) {
	d := NewDispatcher(generator.NewFallback(), nil)

	if _, err := d.Dispatch(context.Background(), Type("oracle"), "hi", uuid.New(), nil); err == nil {
		t.Fatal("expected error for unknown agent type")
	}
}
