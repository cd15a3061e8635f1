package entities

// ChatResponseEntry is a canned question/answer pair used by the offline chat fallback.
type ChatResponseEntry struct {
	ID       string `json:"id" bson:"_id"`
	Question string `json:"question" bson:"question"`
	Answer   string `json:"answer" bson:"answer"`
}

func (c ChatResponseEntry) GetID() string { return c.ID }

func (c ChatResponseEntry) WithID(id string) ChatResponseEntry {
	c.ID = id
	return c
}
