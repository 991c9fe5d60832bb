package intent

import (
	"testing"

	"github.com/PriyadarshiniSathishKumar/Viyara-StudyBot/pkg/agent"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  agent.Type
	}{
		{
			name:  "quiz keyword",
			input: "Quiz me on photosynthesis",
			want:  agent.TypeQuiz,
		},
		{
			name:  "test keyword",
			input: "give me a test about rome",
			want:  agent.TypeQuiz,
		},
		{
			name:  "checker keyword",
			input: "check this for me",
			want:  agent.TypeChecker,
		},
		{
			name:  "answer phrase",
			input: "my answer is B",
			want:  agent.TypeChecker,
		},
		{
			name:  "motivator keyword",
			input: "please motivate me",
			want:  agent.TypeMotivator,
		},
		{
			name:  "memory keyword",
			input: "show my progress",
			want:  agent.TypeMemory,
		},
		{
			name:  "default explainer",
			input: "Explain Newton's Laws",
			want:  agent.TypeExplainer,
		},
		{
			name:  "quiz wins over checker",
			input: "quiz me and check my answer",
			want:  agent.TypeQuiz,
		},
		{
			name:  "checker wins over motivator",
			input: "check my answer and motivate me",
			want:  agent.TypeChecker,
		},
		{
			name:  "case insensitive",
			input: "QUIZ ME NOW",
			want:  agent.TypeQuiz,
		},
		{
			name:  "keyword inside word",
			input: "I have a questionnaire",
			want:  agent.TypeQuiz,
		},
		{
			name:  "empty input",
			input: "",
			want:  agent.TypeExplainer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.input); got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
