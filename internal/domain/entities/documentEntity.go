package entities

import (
	"encoding/json"
	"fmt"
)

const (
	IDKey      = "id"
	AliasIDKey = "_id"
)

// Document is the storage and wire shape of any catalogue entity: an untyped JSON object.
// The identity may arrive under "id", "_id" or both; Normalize reconciles them.
type Document map[string]any

// ID returns the canonical identifier, preferring "id" over "_id".
func (d Document) ID() string {
	if id := stringValue(d[IDKey]); id != "" {
		return id
	}
	return stringValue(d[AliasIDKey])
}

// HasID reports whether either identity key is populated.
func (d Document) HasID() bool {
	return d.ID() != ""
}

// SetID writes id under both identity keys.
func (d Document) SetID(id string) {
	d[IDKey] = id
	d[AliasIDKey] = id
}

// Normalize copies whichever identity key is present onto the other.
func (d Document) Normalize() Document {
	if id := d.ID(); id != "" {
		d.SetID(id)
	}
	return d
}

// Matches reports whether id equals either identity key.
func (d Document) Matches(id string) bool {
	if id == "" {
		return false
	}
	return stringValue(d[IDKey]) == id || stringValue(d[AliasIDKey]) == id
}

// Clone returns a shallow copy.
func (d Document) Clone() Document {
	out := make(Document, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

// Merge shallow-merges patch over a copy of d. The identity of d is kept
// even when patch carries a different one.
func (d Document) Merge(patch Document) Document {
	id := d.ID()
	out := d.Clone()
	for k, v := range patch {
		out[k] = v
	}
	if id != "" {
		out.SetID(id)
	}
	return out
}

// ToDocument converts any JSON-serialisable value into a Document.
func ToDocument(v any) (Document, error) {
	if v == nil {
		return Document{}, nil
	}
	if doc, ok := v.(Document); ok {
		return doc.Clone(), nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal document: %w", err)
	}
	doc := Document{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("document must be a JSON object: %w", err)
	}
	return doc, nil
}

func stringValue(v any) string {
	switch id := v.(type) {
	case string:
		return id
	case nil:
		return ""
	default:
		return fmt.Sprint(id)
	}
}
