package conversation

import (
	"regexp"
	"slices"
	"strings"

	"support-widget/internal/domain/entities"
)

// ContextWindow is how many trailing messages feed the derived context.
const ContextWindow = 5

// Preference keys written by ExtractPreferences.
const (
	PreferredColor    = "preferredColor"
	PreferredMaterial = "preferredMaterial"
	PriceRange        = "priceRange"
)

var comparisonPattern = regexp.MustCompile(`(?i)(?:like|similar to|same as|resembles) ([\w\s]+?)(?:'s)? office`)

// Update derives the conversation context from history. Everything except the
// user preferences is recomputed from the last ContextWindow messages;
// preferences accumulate onto previous. Update never mutates its inputs.
func Update(history []entities.Message, previous entities.ConversationContext) entities.ConversationContext {
	ctx := entities.NewConversationContext()
	ctx.UserPreferences = clonePreferences(previous.UserPreferences)
	if len(history) == 0 {
		return ctx
	}

	window := history[max(0, len(history)-ContextWindow):]

	ctx.RecentTopics = ExtractTopics(window)
	ctx.MentionedProducts = ExtractProductMentions(window)
	ctx.UserPreferences = ExtractPreferences(window, previous.UserPreferences)
	ctx.OfficeReferences = ExtractOfficeReferences(window)
	ctx.LocationContext = ExtractLocation(window)

	if i := lastUserIndex(history); i >= 0 {
		ctx.LastQueryType = QueryType(history[i].Text)
		ctx.ReferenceToLastMessage = ReferencesPrevious(history[i].Text, history[:i])
	}
	return ctx
}

// ExtractTopics returns at most three topics in first-found order.
func ExtractTopics(messages []entities.Message) []string {
	text := joinedLower(messages, false)
	topics := []string{}
	add := func(topic string) {
		if !slices.Contains(topics, topic) {
			topics = append(topics, topic)
		}
	}

	for _, keyword := range furnitureTopics {
		if strings.Contains(text, keyword) {
			add(keyword)
		}
	}
	for _, keyword := range officeTopics {
		if strings.Contains(text, keyword) {
			add(keyword)
		}
	}
	if strings.Contains(text, "ship") || strings.Contains(text, "deliver") {
		add("shipping")
	}
	if containsAny(text, []string{"price", "cost", "discount"}) {
		add("pricing")
	}

	if len(topics) > 3 {
		topics = topics[:3]
	}
	return topics
}

func ExtractProductMentions(messages []entities.Message) []string {
	text := joinedLower(messages, false)
	mentions := []string{}
	for _, product := range productTypes {
		if strings.Contains(text, product) && !slices.Contains(mentions, product) {
			mentions = append(mentions, product)
		}
	}
	return mentions
}

// ExtractPreferences scans user messages only and layers hits over previous.
// Within a vocabulary the last listed term that appears wins.
func ExtractPreferences(messages []entities.Message, previous map[string]any) map[string]any {
	prefs := clonePreferences(previous)
	text := joinedLower(messages, true)
	if text == "" {
		return prefs
	}

	for _, color := range colors {
		if strings.Contains(text, color) {
			prefs[PreferredColor] = color
		}
	}
	for _, material := range materials {
		if strings.Contains(text, material) {
			prefs[PreferredMaterial] = material
		}
	}

	if containsAny(text, lowPriceTerms) {
		prefs[PriceRange] = "low"
	} else if containsAny(text, highPriceTerms) {
		prefs[PriceRange] = "high"
	}
	return prefs
}

// ExtractOfficeReferences collects office style hints from user messages,
// deduplicated in first-seen order.
func ExtractOfficeReferences(messages []entities.Message) []string {
	refs := []string{}
	add := func(ref string) {
		if !slices.Contains(refs, ref) {
			refs = append(refs, ref)
		}
	}

	for _, message := range messages {
		if !message.IsUser() {
			continue
		}
		text := strings.ToLower(message.Text)

		for _, company := range companyKeywords {
			mentionsOffice := strings.Contains(text, "office") || strings.Contains(text, "like") || strings.Contains(text, "similar")
			if (strings.Contains(text, company) && mentionsOffice) || strings.Contains(text, company+" style") {
				add(company + " office style")
				break
			}
		}

		for _, officeType := range officeTypes {
			if strings.Contains(text, officeType) {
				add(officeType)
				break
			}
		}

		if strings.Contains(text, "my office") || strings.Contains(text, "our office") {
			add("personal office")
		}

		if m := comparisonPattern.FindStringSubmatch(text); m != nil && m[1] != "" {
			add(strings.ToLower(m[1]) + " office style")
		}
	}
	return refs
}

// ExtractLocation resolves one location label; later messages override earlier ones.
func ExtractLocation(messages []entities.Message) string {
	location := ""
	for _, message := range messages {
		if !message.IsUser() {
			continue
		}
		text := strings.ToLower(message.Text)

		if strings.Contains(text, "at home") || strings.Contains(text, "home office") {
			location = "home office"
		} else if containsAny(text, []string{"at work", "at my workplace", "at the office"}) {
			location = "workplace"
		}

		if strings.Contains(text, "reception") || strings.Contains(text, "lobby") {
			location = "reception/lobby area"
		} else if strings.Contains(text, "conference") || strings.Contains(text, "meeting room") {
			location = "conference/meeting room"
		} else if strings.Contains(text, "break room") || strings.Contains(text, "lounge") {
			location = "break room/lounge"
		}
	}
	return location
}

// QueryType classifies a user message; the first matching rule wins.
func QueryType(text string) string {
	text = strings.ToLower(text)

	switch {
	case containsAny(text, []string{"price", "cost", "how much"}):
		return "pricing"
	case containsAny(text, []string{"deliver", "shipping", "ship"}):
		return "shipping"
	case containsAny(text, []string{"available", "in stock"}):
		return "availability"
	case containsAny(text, []string{"recommend", "suggest", "best"}):
		return "recommendation"
	case strings.Contains(text, "?"):
		return "question"
	case containsAny(text, []string{"hello", "hi ", "hey"}):
		return "greeting"
	default:
		return "general"
	}
}

func joinedLower(messages []entities.Message, userOnly bool) string {
	parts := make([]string, 0, len(messages))
	for _, m := range messages {
		if userOnly && !m.IsUser() {
			continue
		}
		parts = append(parts, strings.ToLower(m.Text))
	}
	return strings.Join(parts, " ")
}

func lastUserIndex(history []entities.Message) int {
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].IsUser() {
			return i
		}
	}
	return -1
}

func clonePreferences(prefs map[string]any) map[string]any {
	out := make(map[string]any, len(prefs))
	for k, v := range prefs {
		out[k] = v
	}
	return out
}
