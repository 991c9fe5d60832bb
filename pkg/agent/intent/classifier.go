package intent

import (
	"strings"

	"github.com/PriyadarshiniSathishKumar/Viyara-StudyBot/pkg/agent"
)

// rule maps a set of trigger keywords to an agent. Rules are evaluated in
// order and the first match wins; that ordering is part of the routing
// contract (e.g. "quiz me and check my answer" routes to the quiz agent).
type rule struct {
	keywords []string
	agent    agent.Type
}

var rules = []rule{
	{[]string{"quiz", "test", "question"}, agent.TypeQuiz},
	{[]string{"check", "answer", "my answer is"}, agent.TypeChecker},
	{[]string{"motivate", "encourage", "inspire"}, agent.TypeMotivator},
	{[]string{"progress", "history", "remember"}, agent.TypeMemory},
}

// Classify maps free-form user input to the agent that should handle it.
// Matching is case-insensitive substring membership; input that matches no
// rule falls through to the explainer.
func Classify(input string) agent.Type {
	lower := strings.ToLower(input)

	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				return r.agent
			}
		}
	}

	return agent.TypeExplainer
}
