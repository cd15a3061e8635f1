package Iservices

import (
	"context"

	"support-widget/internal/domain/entities"
)

// ICatalogService is the backend CRUD surface for one catalogue resource.
type ICatalogService[T any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id string) (T, error)
	Create(ctx context.Context, entity T) (T, error)
	Update(ctx context.Context, id string, patch entities.Document) (T, error)
	Delete(ctx context.Context, id string) error
}
