package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"support-widget/internal/domain/entities"
	"support-widget/internal/infra/logger"
)

// FileStore keeps each collection as one JSON array file under dir.
type FileStore struct {
	dir    string
	logger *logger.Logger
	mu     sync.Mutex
}

func NewFileStore(dir string, logger *logger.Logger) *FileStore {
	return &FileStore{dir: dir, logger: logger}
}

// Load returns the stored collection. A missing or unreadable collection is empty.
func (s *FileStore) Load(collection string) []entities.Document {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path(collection))
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn(fmt.Sprintf("Failed to read collection %s, treating as empty: %v", collection, err))
		}
		return []entities.Document{}
	}

	var docs []entities.Document
	if err := json.Unmarshal(data, &docs); err != nil {
		s.logger.Warn(fmt.Sprintf("Corrupt collection %s, treating as empty: %v", collection, err))
		return []entities.Document{}
	}
	if docs == nil {
		return []entities.Document{}
	}
	return docs
}

// Save overwrites the whole collection. The file is replaced via rename so a
// crash mid-write leaves the previous version intact.
func (s *FileStore) Save(collection string, docs []entities.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if docs == nil {
		docs = []entities.Document{}
	}
	data, err := json.MarshalIndent(docs, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal collection %s: %w", collection, err)
	}
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("create store directory: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, collection+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file for %s: %w", collection, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write collection %s: %w", collection, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close collection %s: %w", collection, err)
	}
	if err := os.Rename(tmp.Name(), s.path(collection)); err != nil {
		return fmt.Errorf("replace collection %s: %w", collection, err)
	}
	return nil
}

func (s *FileStore) path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}
