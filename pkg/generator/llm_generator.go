package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/PriyadarshiniSathishKumar/Viyara-StudyBot/pkg/llm"
)

// LLMGenerator produces content through an LLM provider, prompting for JSON
// and parsing the result. Any transport or parse failure is swallowed and
// the deterministic fallback output is returned instead; the caller never
// sees a degraded call as an error.
type LLMGenerator struct {
	provider llm.LLMProvider
	fallback Fallback
	logger   *log.Logger
}

var _ Generator = &LLMGenerator{}

// NewLLMGenerator creates a generator backed by the given provider.
func NewLLMGenerator(provider llm.LLMProvider, logger *log.Logger) *LLMGenerator {
	if logger == nil {
		logger = log.Default()
	}
	return &LLMGenerator{
		provider: provider,
		fallback: NewFallback(),
		logger:   logger,
	}
}

const systemPersona = "You are Viyara, an expert educational AI assistant. Always respond with valid JSON."

// generateJSON runs a JSON-mode chat call and unmarshals the reply into out.
func (g *LLMGenerator) generateJSON(ctx context.Context, system, prompt string, temperature float64, out interface{}) error {
	history := []llm.Message{
		{Role: "system", Content: system},
		{Role: "user", Content: prompt},
	}

	raw, err := g.provider.Chat(ctx, history, llm.WithTemperature(temperature), llm.WithJSONMode())
	if err != nil {
		return fmt.Errorf("llm call: %w", err)
	}

	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), out); err != nil {
		return fmt.Errorf("parse llm output: %w", err)
	}
	return nil
}

func (g *LLMGenerator) Explain(ctx context.Context, topic string) (*Explanation, error) {
	prompt := fmt.Sprintf(`You are an expert educator. Explain %q to a beginner student.
Provide a clear explanation with key points and examples if helpful.

Respond with JSON in this format:
{
  "explanation": "detailed explanation here",
  "keyPoints": ["point 1", "point 2", "point 3"],
  "examples": ["example 1", "example 2"]
}`, topic)

	var e Explanation
	if err := g.generateJSON(ctx, systemPersona, prompt, 0.7, &e); err != nil || e.Explanation == "" {
		g.logger.Printf("[WARN] explanation generation unavailable, using fallback: %v", err)
		return g.fallback.Explain(ctx, topic)
	}
	return &e, nil
}

func (g *LLMGenerator) GenerateQuiz(ctx context.Context, topic string, numQuestions int) (*Quiz, error) {
	prompt := fmt.Sprintf(`Create %d medium level multiple choice questions about %q.
Each question should have 4 options with one correct answer.

Respond with JSON in this format:
{
  "topic": %q,
  "questions": [
    {
      "question": "Question text here?",
      "options": ["Option A", "Option B", "Option C", "Option D"],
      "correctAnswer": 0,
      "explanation": "Why this answer is correct"
    }
  ]
}`, numQuestions, topic, topic)

	system := "You are Viyara, an expert quiz generator. Create educational, accurate questions. Always respond with valid JSON."

	var q Quiz
	if err := g.generateJSON(ctx, system, prompt, 0.8, &q); err != nil || !validQuiz(&q, numQuestions) {
		g.logger.Printf("[WARN] quiz generation unavailable, using fallback: %v", err)
		return g.fallback.GenerateQuiz(ctx, topic, numQuestions)
	}
	return &q, nil
}

// validQuiz rejects structurally broken model output so the fallback can
// take over: every question needs 4 options and an in-range answer index.
func validQuiz(q *Quiz, numQuestions int) bool {
	if q.Topic == "" || len(q.Questions) != numQuestions {
		return false
	}
	for _, question := range q.Questions {
		if len(question.Options) != 4 {
			return false
		}
		if question.CorrectAnswer < 0 || question.CorrectAnswer >= len(question.Options) {
			return false
		}
	}
	return true
}

func (g *LLMGenerator) CheckAnswer(ctx context.Context, question, userAnswer, correctAnswer string, options []string) (*Feedback, error) {
	numbered := make([]string, len(options))
	for i, opt := range options {
		numbered[i] = fmt.Sprintf("%d. %s", i+1, opt)
	}

	prompt := fmt.Sprintf(`A student answered a quiz question. Evaluate their response and provide feedback.

Question: %q
Options: %s
Student's answer: %q
Correct answer: %q

Respond with JSON in this format:
{
  "isCorrect": true/false,
  "feedback": "Encouraging feedback message",
  "explanation": "Why this answer is correct/incorrect",
  "score": 10
}`, question, strings.Join(numbered, ", "), userAnswer, correctAnswer)

	system := "You are Viyara, an encouraging educational AI that provides constructive feedback. Always be positive and helpful. Always respond with valid JSON."

	var f Feedback
	if err := g.generateJSON(ctx, system, prompt, 0.6, &f); err != nil || f.Feedback == "" {
		g.logger.Printf("[WARN] answer checking unavailable, using fallback: %v", err)
		return g.fallback.CheckAnswer(ctx, question, userAnswer, correctAnswer, options)
	}
	if f.Score < 0 {
		f.Score = 0
	}
	if f.Score > 10 {
		f.Score = 10
	}
	return &f, nil
}

func (g *LLMGenerator) Motivate(ctx context.Context, studyContext string) (*Motivation, error) {
	prompt := "Generate an encouraging and motivational message for a student."
	if studyContext != "" {
		prompt += fmt.Sprintf(" Context: %s", studyContext)
	}
	prompt += `

Respond with JSON in this format:
{
  "message": "Main motivational message",
  "tip": "Study tip or advice",
  "encouragement": "Personal encouragement"
}`

	system := "You are Viyara, a motivational educational AI. Be inspiring, positive, and helpful. Always respond with valid JSON."

	var m Motivation
	if err := g.generateJSON(ctx, system, prompt, 0.9, &m); err != nil || m.Message == "" {
		g.logger.Printf("[WARN] motivation generation unavailable, using fallback: %v", err)
		return g.fallback.Motivate(ctx, studyContext)
	}
	return &m, nil
}

func (g *LLMGenerator) Summarize(ctx context.Context, topics []string) (string, error) {
	prompt := fmt.Sprintf(`Summarize a student's learning progress and provide insights.

Recent topics: %s

Provide a brief, encouraging summary of their learning journey and suggest next steps.`, strings.Join(topics, ", "))

	system := "You are Viyara, an educational AI that tracks student progress. Be encouraging and provide actionable insights."

	summary, err := g.provider.Chat(ctx, []llm.Message{
		{Role: "system", Content: system},
		{Role: "user", Content: prompt},
	}, llm.WithTemperature(0.7))
	if err != nil || strings.TrimSpace(summary) == "" {
		g.logger.Printf("[WARN] progress summary unavailable, using fallback: %v", err)
		return g.fallback.Summarize(ctx, topics)
	}
	return summary, nil
}
