package services

import (
	"context"
	"fmt"

	"support-widget/internal/domain/entities"
	"support-widget/internal/domain/interfaces/repository"
	"support-widget/internal/infra/logger"

	"github.com/google/uuid"
)

// CatalogService is the service responsible for one catalogue collection.
type CatalogService[T entities.Entity[T]] struct {
	Repository repository.Repository[T]
	Collection string
	Logger     *logger.Logger
}

// NewCatalogService creates a new instance of the service.
func NewCatalogService[T entities.Entity[T]](repo repository.Repository[T], collection string, logger *logger.Logger) *CatalogService[T] {
	return &CatalogService[T]{Repository: repo, Collection: collection, Logger: logger}
}

func (cs *CatalogService[T]) List(ctx context.Context) ([]T, error) {
	result, err := cs.Repository.FindAll(ctx, cs.Collection)
	if err != nil {
		cs.Logger.Error(fmt.Sprintf("Failed to list %s: %v", cs.Collection, err))
		return nil, err
	}
	return result, nil
}

func (cs *CatalogService[T]) Get(ctx context.Context, id string) (T, error) {
	result, err := cs.Repository.FindByID(ctx, cs.Collection, id)
	if err != nil {
		cs.Logger.Warn(fmt.Sprintf("Failed to find %s with id '%s': %v", cs.Collection, id, err))
		return result, err
	}
	return result, nil
}

// Create inserts entity, assigning a fresh id when it carries none.
func (cs *CatalogService[T]) Create(ctx context.Context, entity T) (T, error) {
	if entity.GetID() == "" {
		entity = entity.WithID(uuid.NewString())
	}

	result, err := cs.Repository.Create(ctx, cs.Collection, entity)
	if err != nil {
		cs.Logger.Error(fmt.Sprintf("Failed to create %s: %v", cs.Collection, err))
		return result, err
	}
	return result, nil
}

// Update merges patch onto the entity stored under id. Identity keys in the
// patch are ignored so the id in the path always wins.
func (cs *CatalogService[T]) Update(ctx context.Context, id string, patch entities.Document) (T, error) {
	fields := patch.Clone()
	delete(fields, entities.IDKey)
	delete(fields, entities.AliasIDKey)

	result, err := cs.Repository.Update(ctx, cs.Collection, id, fields)
	if err != nil {
		cs.Logger.Error(fmt.Sprintf("Failed to update %s with id '%s': %v", cs.Collection, id, err))
		return result, err
	}
	return result, nil
}

func (cs *CatalogService[T]) Delete(ctx context.Context, id string) error {
	if err := cs.Repository.Delete(ctx, cs.Collection, id); err != nil {
		cs.Logger.Error(fmt.Sprintf("Failed to delete %s with id '%s': %v", cs.Collection, id, err))
		return err
	}
	return nil
}

// Seed inserts items when the collection is empty. It reports how many were written.
func (cs *CatalogService[T]) Seed(ctx context.Context, items []T) (int, error) {
	count, err := cs.Repository.Count(ctx, cs.Collection)
	if err != nil {
		return 0, fmt.Errorf("counting %s: %w", cs.Collection, err)
	}
	if count > 0 {
		return 0, nil
	}

	for i, item := range items {
		if _, err := cs.Create(ctx, item); err != nil {
			return i, err
		}
	}
	cs.Logger.Info(fmt.Sprintf("Seeded %d documents into %s", len(items), cs.Collection))
	return len(items), nil
}
