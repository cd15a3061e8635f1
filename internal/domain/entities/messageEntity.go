package entities

import "time"

type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// Message is a single chat bubble. Messages are never edited after creation.
type Message struct {
	ID           string    `json:"id" bson:"_id"`
	Text         string    `json:"text" bson:"text"`
	Sender       Sender    `json:"sender" bson:"sender"`
	Timestamp    time.Time `json:"timestamp" bson:"timestamp"`
	Details      []string  `json:"details,omitempty" bson:"details,omitempty"`
	ResponseType string    `json:"responseType,omitempty" bson:"responseType,omitempty"`
}

func (m Message) IsUser() bool {
	return m.Sender == SenderUser
}
