package entities

// Entity is a catalogue type with a single canonical identifier.
type Entity[T any] interface {
	GetID() string
	WithID(id string) T
}
