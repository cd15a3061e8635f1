package repository

import (
	"context"

	"support-widget/internal/domain/entities"
)

// Repository is the backend persistence contract for catalogue entities.
type Repository[T any] interface {
	Create(ctx context.Context, collectionName string, entity T) (T, error)
	Update(ctx context.Context, collectionName string, id string, patch entities.Document) (T, error)
	Delete(ctx context.Context, collectionName string, id string) error
	FindByID(ctx context.Context, collectionName string, id string) (T, error)
	FindAll(ctx context.Context, collectionName string) ([]T, error)
	Count(ctx context.Context, collectionName string) (int64, error)
}

// CollectionStore is the client-side durable key/value table. Collections are
// read and written whole; there are no partial writes.
type CollectionStore interface {
	Load(collection string) []entities.Document
	Save(collection string, docs []entities.Document) error
}
