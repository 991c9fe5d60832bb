package agent

import (
	"regexp"
	"strings"
)

var stopWords = map[string]struct{}{
	"explain": {}, "tell": {}, "me": {}, "about": {},
	"what": {}, "is": {}, "are": {}, "the": {}, "a": {}, "an": {},
}

// ExtractTopic pulls a study topic out of a user prompt by stripping
// instruction words. Very short tokens are dropped along with the stop
// words. Empty results collapse to "general topic".
func ExtractTopic(input string) string {
	words := strings.Split(strings.ToLower(input), " ")

	var meaningful []string
	for _, w := range words {
		if _, stop := stopWords[w]; stop {
			continue
		}
		if len(w) <= 2 {
			continue
		}
		meaningful = append(meaningful, w)
	}

	if len(meaningful) == 0 {
		return "general topic"
	}
	return strings.Join(meaningful, " ")
}

// Answer patterns, tried in order. The bare-letter form only matches when
// the whole input is a single letter.
var answerPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:my )?answer is ([a-d])`),
	regexp.MustCompile(`(?i)(?:i choose|i pick) ([a-d])`),
	regexp.MustCompile(`(?i)^([a-d])$`),
}

// ExtractAnswer pulls a letter answer (A-D) from phrasings like
// "my answer is C" or "I pick b". When nothing matches, the raw input is
// treated as the answer itself.
func ExtractAnswer(input string) string {
	for _, p := range answerPatterns {
		if m := p.FindStringSubmatch(input); m != nil {
			return strings.ToUpper(m[1])
		}
	}
	return input
}
