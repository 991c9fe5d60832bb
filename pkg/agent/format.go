package agent

import (
	"fmt"
	"strings"

	"github.com/PriyadarshiniSathishKumar/Viyara-StudyBot/pkg/generator"
)

// FormatExplanation renders an explanation as markdown: the explanation
// emphasized, then numbered key points, then bulleted examples if present.
func FormatExplanation(e *generator.Explanation) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**%s**\n\n", e.Explanation)

	if len(e.KeyPoints) > 0 {
		b.WriteString("**Key Points:**\n")
		for i, point := range e.KeyPoints {
			fmt.Fprintf(&b, "%d. %s\n", i+1, point)
		}
	}

	if len(e.Examples) > 0 {
		b.WriteString("\n**Examples:**\n")
		for _, example := range e.Examples {
			fmt.Fprintf(&b, "• %s\n", example)
		}
	}

	return b.String()
}

// FormatFeedback renders checker feedback with a status header, the
// feedback and explanation text, and the points earned.
func FormatFeedback(f *generator.Feedback) string {
	emoji := "🤔"
	status := "Not quite right."
	if f.IsCorrect {
		emoji = "🎉"
		status = "Correct!"
	}

	return fmt.Sprintf("%s **%s**\n\n%s\n\n**Explanation:** %s\n\n*Score: +%d points*",
		emoji, status, f.Feedback, f.Explanation, f.Score)
}

// FormatMotivation renders the motivator's three labeled lines.
func FormatMotivation(m *generator.Motivation) string {
	return fmt.Sprintf("✨ **%s**\n\n💡 **Study Tip:** %s\n\n🌟 **%s**",
		m.Message, m.Tip, m.Encouragement)
}
