package conversation

import (
	"fmt"
	"slices"
	"sort"
	"strings"
	"unicode"

	"support-widget/internal/domain/entities"
)

const (
	transcriptSize    = 6
	transcriptMaxRune = 100
)

// knownPreferences are printed first, in this order, ahead of any other keys.
var knownPreferences = []string{PreferredColor, PreferredMaterial, PriceRange}

// BuildQuery enriches the user's text with back-references and the derived
// context before it is sent upstream. history holds the messages that precede
// text; ctx is the context derived from that history.
func BuildQuery(text string, ctx entities.ConversationContext, history []entities.Message) string {
	var sb strings.Builder
	sb.WriteString(text)

	if ReferencesPrevious(text, history) {
		writeBackReference(&sb, text, history)
	}

	if !ctx.HasHints() {
		return sb.String()
	}

	sb.WriteString("\n\nContext from our conversation:")

	if len(ctx.OfficeReferences) > 0 {
		sb.WriteString("\nOffice context (IMPORTANT): " + strings.Join(ctx.OfficeReferences, ", "))
	}
	if ctx.LocationContext != "" {
		sb.WriteString("\nLocation context: " + ctx.LocationContext)
	}
	if len(ctx.RecentTopics) > 0 {
		sb.WriteString("\nRecent topics we've discussed: " + strings.Join(ctx.RecentTopics, ", "))
	}
	if len(ctx.MentionedProducts) > 0 {
		sb.WriteString("\nProducts we've talked about: " + strings.Join(ctx.MentionedProducts, ", "))
	}
	if len(ctx.UserPreferences) > 0 {
		pairs := make([]string, 0, len(ctx.UserPreferences))
		for _, key := range preferenceOrder(ctx.UserPreferences) {
			pairs = append(pairs, fmt.Sprintf("%s: %v", humanizeKey(key), ctx.UserPreferences[key]))
		}
		sb.WriteString("\nYour preferences: " + strings.Join(pairs, ", "))
	}
	if ctx.LastQueryType != "" {
		sb.WriteString("\nYour last question was about " + ctx.LastQueryType + ".")
	}
	if ctx.ReferenceToLastMessage {
		sb.WriteString("\n\nIMPORTANT: The user is referring to previous messages. Consider their full context.")
	}

	recent := history[max(0, len(history)-transcriptSize):]
	if len(recent) > 0 {
		sb.WriteString("\n\nRecent messages (most important for context):")
		for _, m := range recent {
			role := "Assistant"
			if m.IsUser() {
				role = "You"
			}
			sb.WriteString("\n" + role + ": " + truncateRunes(m.Text, transcriptMaxRune))
		}
	}

	return sb.String()
}

func writeBackReference(sb *strings.Builder, text string, history []entities.Message) {
	var users []entities.Message
	for _, m := range history {
		if m.IsUser() {
			users = append(users, m)
		}
	}
	if len(users) == 0 {
		return
	}

	previous := users[len(users)-1]
	lower := strings.ToLower(text)
	if wordCount(lower) <= 3 || hasFurnitureKeyword(lower) {
		fmt.Fprintf(sb, " (Note: I'm referring to my previous message where I mentioned \"%s\")", previous.Text)
	} else {
		fmt.Fprintf(sb, " (Note: This is related to my previous message: \"%s\")", previous.Text)
	}

	if len(users) >= 2 {
		earlier := users[len(users)-2]
		if hasCompanyKeyword(strings.ToLower(earlier.Text)) {
			fmt.Fprintf(sb, " and also to when I mentioned \"%s\"", earlier.Text)
		}
	}
}

func preferenceOrder(prefs map[string]any) []string {
	keys := make([]string, 0, len(prefs))
	for _, k := range knownPreferences {
		if _, ok := prefs[k]; ok {
			keys = append(keys, k)
		}
	}

	var rest []string
	for k := range prefs {
		if !slices.Contains(knownPreferences, k) {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	return append(keys, rest...)
}

// humanizeKey turns "preferredColor" into "preferred color".
func humanizeKey(key string) string {
	var sb strings.Builder
	for _, r := range key {
		if unicode.IsUpper(r) {
			sb.WriteRune(' ')
		}
		sb.WriteRune(unicode.ToLower(r))
	}
	return sb.String()
}

func truncateRunes(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}
