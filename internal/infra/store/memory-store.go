package store

import (
	"encoding/json"
	"sync"

	"support-widget/internal/domain/entities"
)

// MemoryStore is a process-local CollectionStore. Values round-trip through
// JSON so callers observe the same shapes FileStore would return.
type MemoryStore struct {
	mu          sync.Mutex
	collections map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: map[string][]byte{}}
}

func (s *MemoryStore) Load(collection string) []entities.Document {
	s.mu.Lock()
	defer s.mu.Unlock()

	var docs []entities.Document
	if err := json.Unmarshal(s.collections[collection], &docs); err != nil || docs == nil {
		return []entities.Document{}
	}
	return docs
}

func (s *MemoryStore) Save(collection string, docs []entities.Document) error {
	data, err := json.Marshal(docs)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collections[collection] = data
	return nil
}
