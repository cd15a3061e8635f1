package store

import (
	"os"
	"path/filepath"
	"testing"

	"support-widget/internal/domain/entities"
	"support-widget/internal/infra/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreMissingCollectionIsEmpty(t *testing.T) {
	s := NewFileStore(t.TempDir(), logger.NewDiscardLogger())

	docs := s.Load("products")
	assert.NotNil(t, docs)
	assert.Empty(t, docs)
}

func TestFileStoreRoundTripAcrossInstances(t *testing.T) {
	dir := t.TempDir()
	first := NewFileStore(dir, logger.NewDiscardLogger())

	require.NoError(t, first.Save("products", []entities.Document{
		{"id": "local_1", "_id": "local_1", "name": "Sofa", "price": 1299.0},
	}))

	second := NewFileStore(dir, logger.NewDiscardLogger())
	docs := second.Load("products")
	require.Len(t, docs, 1)
	assert.Equal(t, "Sofa", docs[0]["name"])
	assert.Equal(t, 1299.0, docs[0]["price"])
}

func TestFileStoreSaveOverwritesWholeCollection(t *testing.T) {
	s := NewFileStore(t.TempDir(), logger.NewDiscardLogger())

	require.NoError(t, s.Save("chat_responses", []entities.Document{{"id": "a"}, {"id": "b"}}))
	require.NoError(t, s.Save("chat_responses", []entities.Document{{"id": "c"}}))

	docs := s.Load("chat_responses")
	require.Len(t, docs, 1)
	assert.Equal(t, "c", docs[0].ID())
}

func TestFileStoreCorruptCollectionIsEmpty(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "products.json"), []byte("{not json"), 0644))

	s := NewFileStore(dir, logger.NewDiscardLogger())
	assert.Empty(t, s.Load("products"))
}

func TestFileStoreCollectionsAreIsolated(t *testing.T) {
	s := NewFileStore(t.TempDir(), logger.NewDiscardLogger())

	require.NoError(t, s.Save("products", []entities.Document{{"id": "p"}}))
	require.NoError(t, s.Save("chat_responses", []entities.Document{{"id": "r"}}))

	assert.Equal(t, "p", s.Load("products")[0].ID())
	assert.Equal(t, "r", s.Load("chat_responses")[0].ID())
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := NewMemoryStore()
	assert.Empty(t, s.Load("messages"))

	require.NoError(t, s.Save("messages", []entities.Document{{"id": "m1", "text": "hi"}}))
	docs := s.Load("messages")
	require.Len(t, docs, 1)
	assert.Equal(t, "hi", docs[0]["text"])
}
