package generator

import (
	"context"
	"fmt"
	"strings"
)

// Fallback is the deterministic local generator used whenever the LLM is
// unreachable or returns unparseable output. Same input, same output.
type Fallback struct{}

var _ Generator = Fallback{}

// NewFallback returns the deterministic generator.
func NewFallback() Fallback {
	return Fallback{}
}

func (Fallback) Explain(_ context.Context, topic string) (*Explanation, error) {
	return &Explanation{
		Explanation: fmt.Sprintf("%s is an important concept that involves several key components and principles. Understanding this topic requires breaking it down into manageable parts and exploring how they connect to real-world applications.", topic),
		KeyPoints: []string{
			fmt.Sprintf("Core definition and fundamental principles of %s", topic),
			"Key components and how they interact",
			"Real-world applications and examples",
			"Important relationships and connections",
		},
		Examples: []string{
			fmt.Sprintf("Consider how %s applies in everyday situations", topic),
			"Think about practical uses in various fields",
		},
	}, nil
}

func (Fallback) GenerateQuiz(_ context.Context, topic string, numQuestions int) (*Quiz, error) {
	questions := make([]Question, 0, numQuestions)
	for i := 0; i < numQuestions; i++ {
		questions = append(questions, Question{
			Question: fmt.Sprintf("What is an important aspect of %s that students should understand?", topic),
			Options: []string{
				fmt.Sprintf("%s has fundamental principles that govern its behavior", topic),
				fmt.Sprintf("%s is not related to other concepts in the field", topic),
				fmt.Sprintf("%s can only be understood through advanced mathematics", topic),
				fmt.Sprintf("%s has no practical applications", topic),
			},
			CorrectAnswer: 0,
			Explanation:   fmt.Sprintf("Understanding the fundamental principles of %s is crucial for grasping how it works and applies to real situations.", topic),
		})
	}

	return &Quiz{Topic: topic, Questions: questions}, nil
}

func (Fallback) CheckAnswer(_ context.Context, _, userAnswer, correctAnswer string, _ []string) (*Feedback, error) {
	user := strings.ToLower(userAnswer)
	correct := strings.ToLower(correctAnswer)
	isCorrect := strings.Contains(user, correct) || strings.Contains(correct, user)

	f := &Feedback{
		IsCorrect:   isCorrect,
		Feedback:    "Not quite right, but that's okay! Learning often involves making mistakes and growing from them.",
		Explanation: fmt.Sprintf("The correct approach involves understanding the fundamental concepts. The right answer is: %s", correctAnswer),
		Score:       3,
	}
	if isCorrect {
		f.Feedback = "Great job! You've demonstrated good understanding of the concept."
		f.Explanation = "Your answer shows you understand the key principles involved."
		f.Score = 10
	}
	return f, nil
}

var fallbackMotivations = []Motivation{
	{
		Message:       "Every expert was once a beginner. Your learning journey is unique and valuable!",
		Tip:           "Break complex topics into smaller, manageable chunks for better understanding.",
		Encouragement: "You're making progress with every question you explore. Keep up the great work!",
	},
	{
		Message:       "Learning is a journey, not a destination. Embrace the process!",
		Tip:           "Try explaining concepts to someone else - it's one of the best ways to learn.",
		Encouragement: "Your curiosity and effort are your greatest learning tools.",
	},
	{
		Message:       "Knowledge is power, and you're building yours one concept at a time!",
		Tip:           "Connect new information to what you already know to strengthen understanding.",
		Encouragement: "Every question you ask brings you closer to mastery.",
	},
}

func (Fallback) Motivate(_ context.Context, context string) (*Motivation, error) {
	// Variant keyed on the input so the choice is stable across calls.
	m := fallbackMotivations[len(context)%len(fallbackMotivations)]
	return &m, nil
}

func (Fallback) Summarize(_ context.Context, topics []string) (string, error) {
	if len(topics) == 0 {
		return "Welcome to your learning journey! I'm excited to help you explore new topics and build your knowledge.", nil
	}

	plural := "s"
	if len(topics) == 1 {
		plural = ""
	}
	return fmt.Sprintf("You've been exploring %d topic%s: %s. Your curiosity is driving great learning progress! Consider diving deeper into these areas or exploring related concepts.",
		len(topics), plural, strings.Join(topics, ", ")), nil
}
