package generator

import (
	"context"
	"strings"
	"testing"
)

func TestFallbackCheckAnswer(t *testing.T) {
	tests := []struct {
		name          string
		userAnswer    string
		correctAnswer string
		wantCorrect   bool
		wantScore     int
	}{
		{
			name:          "exact match",
			userAnswer:    "Mitochondria",
			correctAnswer: "Mitochondria",
			wantCorrect:   true,
			wantScore:     10,
		},
		{
			name:          "answer contained in correct",
			userAnswer:    "mito",
			correctAnswer: "Mitochondria",
			wantCorrect:   true,
			wantScore:     10,
		},
		{
			name:          "correct contained in answer",
			userAnswer:    "I think it is the mitochondria organelle",
			correctAnswer: "mitochondria",
			wantCorrect:   true,
			wantScore:     10,
		},
		{
			name:          "wrong answer",
			userAnswer:    "nucleus",
			correctAnswer: "mitochondria",
			wantCorrect:   false,
			wantScore:     3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := NewFallback().CheckAnswer(context.Background(), "q", tt.userAnswer, tt.correctAnswer, nil)
			if err != nil {
				t.Fatalf("CheckAnswer: %v", err)
			}
			if f.IsCorrect != tt.wantCorrect {
				t.Errorf("IsCorrect = %v, want %v", f.IsCorrect, tt.wantCorrect)
			}
			if f.Score != tt.wantScore {
				t.Errorf("Score = %d, want %d", f.Score, tt.wantScore)
			}
		})
	}
}

func TestFallbackDeterministic(t *testing.T) {
	ctx := context.Background()
	g := NewFallback()

	e1, _ := g.Explain(ctx, "gravity")
	e2, _ := g.Explain(ctx, "gravity")
	if e1.Explanation != e2.Explanation {
		t.Error("Explain is not deterministic")
	}

	m1, _ := g.Motivate(ctx, "feeling stuck")
	m2, _ := g.Motivate(ctx, "feeling stuck")
	if m1.Message != m2.Message {
		t.Error("Motivate is not deterministic for the same context")
	}
}

func TestFallbackQuizShape(t *testing.T) {
	quiz, err := NewFallback().GenerateQuiz(context.Background(), "algebra", 3)
	if err != nil {
		t.Fatalf("GenerateQuiz: %v", err)
	}
	if quiz.Topic != "algebra" {
		t.Errorf("topic = %q, want algebra", quiz.Topic)
	}
	if len(quiz.Questions) != 3 {
		t.Fatalf("question count = %d, want 3", len(quiz.Questions))
	}
	for i, q := range quiz.Questions {
		if len(q.Options) != 4 {
			t.Errorf("question %d: option count = %d, want 4", i, len(q.Options))
		}
		if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
			t.Errorf("question %d: correct answer %d out of range", i, q.CorrectAnswer)
		}
	}
}

func TestFallbackSummarize(t *testing.T) {
	ctx := context.Background()
	g := NewFallback()

	empty, _ := g.Summarize(ctx, nil)
	if !strings.Contains(empty, "Welcome to your learning journey") {
		t.Errorf("empty summary = %q", empty)
	}

	one, _ := g.Summarize(ctx, []string{"biology"})
	if !strings.Contains(one, "1 topic:") || strings.Contains(one, "1 topics") {
		t.Errorf("singular form wrong: %q", one)
	}

	two, _ := g.Summarize(ctx, []string{"biology", "algebra"})
	if !strings.Contains(two, "2 topics: biology, algebra") {
		t.Errorf("plural form wrong: %q", two)
	}
}
