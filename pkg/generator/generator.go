package generator

import "context"

// Explanation is the structured output of the explanation capability.
type Explanation struct {
	Explanation string   `json:"explanation"`
	KeyPoints   []string `json:"keyPoints"`
	Examples    []string `json:"examples,omitempty"`
}

// Question is a single generated multiple-choice question with exactly
// four options; CorrectAnswer indexes into Options.
type Question struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

// Quiz is a generated set of questions on a topic.
type Quiz struct {
	Topic     string     `json:"topic"`
	Questions []Question `json:"questions"`
}

// Feedback evaluates a student's answer. Score is in [0, 10].
type Feedback struct {
	IsCorrect   bool   `json:"isCorrect"`
	Feedback    string `json:"feedback"`
	Explanation string `json:"explanation"`
	Score       int    `json:"score"`
}

// Motivation is a three-part motivational message.
type Motivation struct {
	Message       string `json:"message"`
	Tip           string `json:"tip"`
	Encouragement string `json:"encouragement"`
}

// Generator produces study content. Implementations must always return
// structurally valid output: when the backing model is unavailable or
// returns garbage, a deterministic local fallback is substituted instead
// of surfacing an error to the caller.
type Generator interface {
	Explain(ctx context.Context, topic string) (*Explanation, error)
	GenerateQuiz(ctx context.Context, topic string, numQuestions int) (*Quiz, error)
	CheckAnswer(ctx context.Context, question, userAnswer, correctAnswer string, options []string) (*Feedback, error)
	Motivate(ctx context.Context, context string) (*Motivation, error)
	Summarize(ctx context.Context, topics []string) (string, error)
}
