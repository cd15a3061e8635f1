package conversation

import (
	"regexp"
	"strings"

	"support-widget/internal/domain/entities"
)

var (
	// Phrases match on word boundaries so "with" does not count as "it".
	referencePattern = regexp.MustCompile(`\b(?:` + quoteAll(referencePhrases) + `)\b`)

	productOnlyPattern = regexp.MustCompile(`(?i)^(sofa|chair|table|desk|bed|cabinet)s?\s*(for|with|and|that)?\s*$`)
)

// ReferencesPrevious reports whether current leans on an earlier message in previous.
func ReferencesPrevious(current string, previous []entities.Message) bool {
	if len(previous) == 0 {
		return false
	}

	lower := strings.ToLower(current)

	if referencePattern.MatchString(lower) {
		return true
	}
	if wordCount(lower) <= 3 {
		return true
	}
	if productOnlyPattern.MatchString(strings.TrimSpace(lower)) {
		return true
	}

	// A company named last turn and furniture asked for now usually means the same office.
	if i := lastUserIndex(previous); i >= 0 {
		last := strings.ToLower(previous[i].Text)
		if hasCompanyKeyword(last) && !hasCompanyKeyword(lower) &&
			(strings.Contains(lower, "furniture") || hasFurnitureKeyword(lower)) {
			return true
		}
	}
	return false
}

func wordCount(text string) int {
	return len(strings.Fields(text))
}

func quoteAll(phrases []string) string {
	quoted := make([]string, len(phrases))
	for i, p := range phrases {
		quoted[i] = regexp.QuoteMeta(p)
	}
	return strings.Join(quoted, "|")
}
