package conversation

import (
	"regexp"
	"strings"
)

// Response types attached to bot messages.
const (
	TypeRecommendation = "recommendation"
	TypeAnswer         = "answer"
	TypeShipping       = "shipping"
	TypeGeneral        = "general"
	TypeError          = "error"
)

// ConnectionErrorText is shown when a turn could not be answered.
const ConnectionErrorText = "Unable to connect. Please try again later."

type Classification struct {
	Type    string   `json:"type"`
	Content string   `json:"content"`
	Details []string `json:"details,omitempty"`
}

type replacement struct {
	pattern *regexp.Regexp
	with    string
}

var markdownRules = []replacement{
	{regexp.MustCompile(`\*\*\*(.*?)\*\*\*`), "${1}"},
	{regexp.MustCompile(`\*\*(.*?)\*\*`), "${1}"},
	{regexp.MustCompile(`\*(.*?)\*`), "${1}"},
	{regexp.MustCompile(`__(.*?)__`), "${1}"},
	{regexp.MustCompile(`~~(.*?)~~`), "${1}"},
	{regexp.MustCompile("```(.*?)```"), "${1}"},
	{regexp.MustCompile("`(.*?)`"), "${1}"},
	{regexp.MustCompile(`#{1,6} (.*?)(?:\n|$)`), "${1}"},
	// images before links, otherwise the link rule leaves a stray "!"
	{regexp.MustCompile(`!\[(.*?)\]\((.*?)\)`), ""},
	{regexp.MustCompile(`\[(.*?)\]\((.*?)\)`), "${1}"},
}

var answerRules = []replacement{
	{regexp.MustCompile(`\*\*\*(.*?)\*\*\*`), "${1}"},
	{regexp.MustCompile(`\*\*(.*?)\*\*`), "${1}"},
	{regexp.MustCompile(`\*(.*?)\*`), "${1}"},
	{regexp.MustCompile(`__(.*?)__`), "${1}"},
	{regexp.MustCompile(`~~(.*?)~~`), "${1}"},
	{regexp.MustCompile("```[\\s\\S]*?```"), ""},
	{regexp.MustCompile("`([^`]*?)`"), "${1}"},
	{regexp.MustCompile(`#{1,6}\s+(.*?)(?:\n|$)`), "${1}"},
	{regexp.MustCompile(`!\[(.*?)\]\((.*?)\)`), ""},
	{regexp.MustCompile(`\[(.*?)\]\((.*?)\)`), "${1}"},
	{regexp.MustCompile(`(?m)^\s*[-*+]\s+`), ""},
	{regexp.MustCompile(`(?m)^\s*\d+\.\s+`), ""},
	{regexp.MustCompile(`\n{3,}`), "\n\n"},
	{regexp.MustCompile(`> (.*?)(?:\n|$)`), "${1}"},
	{regexp.MustCompile(`\|.*?\|`), ""},
	{regexp.MustCompile(`\\\\`), `\`},
	{regexp.MustCompile(`\\([^\\])`), "${1}"},
}

var (
	whitespaceRun    = regexp.MustCompile(`\s{2,}`)
	sentenceBoundary = regexp.MustCompile(`[.!?]\s+`)
)

// CleanMarkdown strips the inline markdown a model tends to emit.
func CleanMarkdown(text string) string {
	return strings.TrimSpace(apply(markdownRules, text))
}

// CleanAnswer is the stricter cleanup applied to generated answers before they
// leave the backend. Code blocks, lists, quotes and tables are flattened and
// whitespace runs collapse to a single space.
func CleanAnswer(text string) string {
	cleaned := strings.TrimSpace(apply(answerRules, text))
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(cleaned, " "))
}

// Classify cleans a bot reply and tags it for display. The first matching rule wins.
func Classify(text string) Classification {
	cleaned := CleanMarkdown(text)
	lower := strings.ToLower(cleaned)

	var kind string
	limit := 150
	switch {
	case containsAny(lower, []string{"recommend", "suggest", "consider"}):
		kind, limit = TypeRecommendation, 120
	case containsAny(lower, []string{"yes", "no"}) || strings.Contains(cleaned, "?"):
		kind = TypeAnswer
	case containsAny(lower, []string{"ship", "deliver", "arrival", "time"}):
		kind, limit = TypeShipping, 120
	default:
		kind = TypeGeneral
	}

	return Classification{
		Type:    kind,
		Content: truncateRunes(cleaned, limit),
		Details: KeyPoints(cleaned),
	}
}

func ErrorClassification() Classification {
	return Classification{Type: TypeError, Content: ConnectionErrorText}
}

// KeyPoints picks at most three sentences: the first, any middle sentence with
// an importance marker, then the last. Text of two sentences or fewer is
// returned whole.
func KeyPoints(text string) []string {
	sentences := SplitSentences(text)
	if len(sentences) <= 2 {
		return []string{text}
	}

	points := []string{sentences[0]}
	for _, s := range sentences[1 : len(sentences)-1] {
		if len(points) < 3 && containsAny(strings.ToLower(s), importanceMarkers) {
			points = append(points, s)
		}
	}
	if len(points) < 3 {
		points = append(points, sentences[len(sentences)-1])
	}

	for i := range points {
		points[i] = strings.TrimSpace(points[i])
	}
	return points
}

// SplitSentences cuts after every '.', '!' or '?' that is followed by whitespace.
func SplitSentences(text string) []string {
	var sentences []string
	start := 0
	for _, loc := range sentenceBoundary.FindAllStringIndex(text, -1) {
		sentences = append(sentences, text[start:loc[0]+1])
		start = loc[1]
	}
	if rest := text[start:]; rest != "" || len(sentences) == 0 {
		sentences = append(sentences, rest)
	}
	return sentences
}

func apply(rules []replacement, text string) string {
	for _, r := range rules {
		text = r.pattern.ReplaceAllString(text, r.with)
	}
	return text
}
