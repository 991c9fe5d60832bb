package agent

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/PriyadarshiniSathishKumar/Viyara-StudyBot/pkg/generator"

	"github.com/google/uuid"
)

// Turn is the dispatcher's read-only view of one transcript entry.
type Turn struct {
	Role      string
	Content   string
	AgentType Type
	Metadata  json.RawMessage
}

// QuizStore caches the most recent quiz per conversation so the checker
// can skip the transcript scan. Optional; a nil store means scan-only.
type QuizStore interface {
	Put(conversationId uuid.UUID, quiz QuizMetadata)
	Get(conversationId uuid.UUID) (QuizMetadata, bool)
}

// Dispatcher invokes the handler matching a classified intent. It owns the
// per-agent state transitions: topic extraction, last-quiz lookup and
// answer-pattern extraction for the checker, and topic collection for the
// memory agent.
type Dispatcher struct {
	gen     generator.Generator
	quizzes QuizStore
}

// NewDispatcher creates a dispatcher backed by the given content
// generator. quizzes may be nil.
func NewDispatcher(gen generator.Generator, quizzes QuizStore) *Dispatcher {
	return &Dispatcher{
		gen:     gen,
		quizzes: quizzes,
	}
}

// Dispatch runs the handler for agentType. turns is the conversation
// transcript oldest first, including the user turn being answered.
func (d *Dispatcher) Dispatch(ctx context.Context, agentType Type, input string, conversationId uuid.UUID, turns []Turn) (*Response, error) {
	switch agentType {
	case TypeQuiz:
		return d.handleQuiz(ctx, input, conversationId)
	case TypeChecker:
		return d.handleChecker(ctx, input, conversationId, turns)
	case TypeMotivator:
		return d.handleMotivator(ctx, input)
	case TypeMemory:
		return d.handleMemory(ctx, conversationId, turns)
	case TypeExplainer:
		return d.handleExplainer(ctx, input)
	default:
		// Classification is total, so this is a programming error.
		return nil, fmt.Errorf("unknown agent type %q", agentType)
	}
}

func (d *Dispatcher) handleExplainer(ctx context.Context, input string) (*Response, error) {
	topic := ExtractTopic(input)

	explanation, err := d.gen.Explain(ctx, topic)
	if err != nil {
		return nil, fmt.Errorf("explain %q: %w", topic, err)
	}

	return &Response{
		Content:   FormatExplanation(explanation),
		AgentType: TypeExplainer,
		Metadata: ExplanationMetadata{
			Explanation: explanation.Explanation,
			KeyPoints:   explanation.KeyPoints,
			Examples:    explanation.Examples,
		},
	}, nil
}

const quizQuestionCount = 3

func (d *Dispatcher) handleQuiz(ctx context.Context, input string, conversationId uuid.UUID) (*Response, error) {
	topic := ExtractTopic(input)

	quiz, err := d.gen.GenerateQuiz(ctx, topic, quizQuestionCount)
	if err != nil {
		return nil, fmt.Errorf("generate quiz on %q: %w", topic, err)
	}

	questions := make([]QuizQuestion, len(quiz.Questions))
	for i, q := range quiz.Questions {
		questions[i] = QuizQuestion{
			Question:      q.Question,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
		}
	}
	metadata := QuizMetadata{Topic: quiz.Topic, Questions: questions}

	if d.quizzes != nil {
		d.quizzes.Put(conversationId, metadata)
	}

	return &Response{
		Content:   fmt.Sprintf("Here's a quiz on %s!", topic),
		AgentType: TypeQuiz,
		Metadata:  metadata,
	}, nil
}

func (d *Dispatcher) handleChecker(ctx context.Context, input string, conversationId uuid.UUID, turns []Turn) (*Response, error) {
	quiz, found := d.lastQuiz(conversationId, turns)
	if !found {
		return &Response{
			Content:   "I don't see a recent quiz question to check. Please take a quiz first!",
			AgentType: TypeChecker,
		}, nil
	}

	if len(quiz.Questions) == 0 {
		return &Response{
			Content:   "I couldn't find the quiz question to check your answer against.",
			AgentType: TypeChecker,
		}, nil
	}

	// Only the first question is ever checked; multi-question quizzes are
	// not advanced past question one.
	question := quiz.Questions[0]
	userAnswer := ExtractAnswer(input)

	feedback, err := d.gen.CheckAnswer(ctx, question.Question, userAnswer,
		question.Options[question.CorrectAnswer], question.Options)
	if err != nil {
		return nil, fmt.Errorf("check answer: %w", err)
	}

	return &Response{
		Content:   FormatFeedback(feedback),
		AgentType: TypeChecker,
		Metadata: FeedbackMetadata{
			IsCorrect:   feedback.IsCorrect,
			Feedback:    feedback.Feedback,
			Explanation: feedback.Explanation,
			Score:       feedback.Score,
			Topic:       quiz.Topic,
		},
	}, nil
}

// lastQuiz returns the most recent quiz for the conversation: cache first,
// then a most-recent-first transcript scan.
func (d *Dispatcher) lastQuiz(conversationId uuid.UUID, turns []Turn) (QuizMetadata, bool) {
	if d.quizzes != nil {
		if quiz, ok := d.quizzes.Get(conversationId); ok {
			return quiz, true
		}
	}

	for i := len(turns) - 1; i >= 0; i-- {
		t := turns[i]
		if t.AgentType != TypeQuiz || len(t.Metadata) == 0 {
			continue
		}
		meta, err := DecodeMetadata(TypeQuiz, t.Metadata)
		if err != nil {
			continue
		}
		if quiz, ok := meta.(QuizMetadata); ok {
			return quiz, true
		}
	}
	return QuizMetadata{}, false
}

func (d *Dispatcher) handleMotivator(ctx context.Context, input string) (*Response, error) {
	motivation, err := d.gen.Motivate(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("generate motivation: %w", err)
	}

	return &Response{
		Content:   FormatMotivation(motivation),
		AgentType: TypeMotivator,
		Metadata: MotivationMetadata{
			Message:       motivation.Message,
			Tip:           motivation.Tip,
			Encouragement: motivation.Encouragement,
		},
	}, nil
}

func (d *Dispatcher) handleMemory(ctx context.Context, _ uuid.UUID, turns []Turn) (*Response, error) {
	topics := collectTopics(turns)

	summary, err := d.gen.Summarize(ctx, topics)
	if err != nil {
		return nil, fmt.Errorf("summarize progress: %w", err)
	}

	return &Response{
		Content:   summary,
		AgentType: TypeMemory,
		Metadata: MemoryMetadata{
			Topics:       topics,
			MessageCount: len(turns),
		},
	}, nil
}

// collectTopics gathers the distinct topic labels seen in turn metadata,
// in first-seen order.
func collectTopics(turns []Turn) []string {
	seen := make(map[string]struct{})
	topics := []string{}

	for _, t := range turns {
		if len(t.Metadata) == 0 || !t.AgentType.Valid() {
			continue
		}
		meta, err := DecodeMetadata(t.AgentType, t.Metadata)
		if err != nil {
			continue
		}
		topic := MetadataTopic(meta)
		if topic == "" {
			continue
		}
		if _, dup := seen[topic]; dup {
			continue
		}
		seen[topic] = struct{}{}
		topics = append(topics, topic)
	}

	return topics
}
