package entities

// ConversationContext is the rolling state derived from the visible message window.
// It is always rebuilt from history; only UserPreferences carries over between turns.
type ConversationContext struct {
	RecentTopics           []string       `json:"recentTopics"`
	MentionedProducts      []string       `json:"mentionedProducts"`
	UserPreferences        map[string]any `json:"userPreferences"`
	LastQueryType          string         `json:"lastQueryType,omitempty"`
	OfficeReferences       []string       `json:"officeReferences"`
	LocationContext        string         `json:"locationContext"`
	ReferenceToLastMessage bool           `json:"referenceToLastMessage"`
}

// NewConversationContext returns an empty context with non-nil collections.
func NewConversationContext() ConversationContext {
	return ConversationContext{
		RecentTopics:      []string{},
		MentionedProducts: []string{},
		UserPreferences:   map[string]any{},
		OfficeReferences:  []string{},
	}
}

// HasHints reports whether any field worth forwarding upstream is populated.
func (c ConversationContext) HasHints() bool {
	return len(c.RecentTopics) > 0 ||
		len(c.MentionedProducts) > 0 ||
		len(c.UserPreferences) > 0 ||
		len(c.OfficeReferences) > 0 ||
		c.LocationContext != ""
}
