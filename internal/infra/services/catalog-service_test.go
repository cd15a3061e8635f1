package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"support-widget/internal/domain/entities"
	repocontants "support-widget/internal/domain/interfaces/repository/contants"
	"support-widget/internal/infra/logger"
	"support-widget/internal/infra/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryRepository keeps documents per collection in insertion order.
type memoryRepository[T entities.Entity[T]] struct {
	data map[string][]T
	err  error
}

func newMemoryRepository[T entities.Entity[T]]() *memoryRepository[T] {
	return &memoryRepository[T]{data: map[string][]T{}}
}

func (m *memoryRepository[T]) Create(_ context.Context, c string, e T) (T, error) {
	if m.err != nil {
		return e, m.err
	}
	m.data[c] = append(m.data[c], e)
	return e, nil
}

// Update applies patch through a JSON round trip, the way a $set touches only named fields.
func (m *memoryRepository[T]) Update(_ context.Context, c, id string, patch entities.Document) (T, error) {
	var zero T
	for i, item := range m.data[c] {
		if item.GetID() != id {
			continue
		}
		doc, err := entities.ToDocument(item)
		if err != nil {
			return zero, err
		}
		raw, err := json.Marshal(doc.Merge(patch))
		if err != nil {
			return zero, err
		}
		var merged T
		if err := json.Unmarshal(raw, &merged); err != nil {
			return zero, err
		}
		m.data[c][i] = merged
		return merged, nil
	}
	return zero, repository.ErrNotFound
}

func (m *memoryRepository[T]) Delete(_ context.Context, c, id string) error {
	for i, item := range m.data[c] {
		if item.GetID() == id {
			m.data[c] = append(m.data[c][:i], m.data[c][i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *memoryRepository[T]) FindByID(_ context.Context, c, id string) (T, error) {
	for _, item := range m.data[c] {
		if item.GetID() == id {
			return item, nil
		}
	}
	var zero T
	return zero, repository.ErrNotFound
}

func (m *memoryRepository[T]) FindAll(_ context.Context, c string) ([]T, error) {
	if m.err != nil {
		return nil, m.err
	}
	return append([]T{}, m.data[c]...), nil
}

func (m *memoryRepository[T]) Count(_ context.Context, c string) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	return int64(len(m.data[c])), nil
}

func newProductService() (*CatalogService[entities.Product], *memoryRepository[entities.Product]) {
	repo := newMemoryRepository[entities.Product]()
	return NewCatalogService[entities.Product](repo, repocontants.PRODUCTS_COLLECTION, logger.NewDiscardLogger()), repo
}

func TestCatalogCreateAssignsID(t *testing.T) {
	svc, _ := newProductService()
	ctx := context.Background()

	created, err := svc.Create(ctx, entities.Product{Name: "Oak Desk"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	kept, err := svc.Create(ctx, entities.Product{ID: "prod9", Name: "Pine Shelf"})
	require.NoError(t, err)
	assert.Equal(t, "prod9", kept.ID)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Oak Desk", got.Name)
}

func TestCatalogUpdateUsesPathID(t *testing.T) {
	svc, _ := newProductService()
	ctx := context.Background()
	_, err := svc.Create(ctx, entities.Product{ID: "prod1", Name: "Sofa", Price: 100})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, "prod1", entities.Document{"id": "ignored", "_id": "ignored", "price": 120.0})
	require.NoError(t, err)
	assert.Equal(t, "prod1", updated.ID)
	assert.Equal(t, 120.0, updated.Price)
	assert.Equal(t, "Sofa", updated.Name)

	_, err = svc.Get(ctx, "ignored")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = svc.Update(ctx, "missing", entities.Document{"name": "x"})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCatalogDelete(t *testing.T) {
	svc, _ := newProductService()
	ctx := context.Background()
	_, err := svc.Create(ctx, entities.Product{ID: "prod1"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "prod1"))
	assert.ErrorIs(t, svc.Delete(ctx, "prod1"), repository.ErrNotFound)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestCatalogSeedOnlyWhenEmpty(t *testing.T) {
	svc, _ := newProductService()
	ctx := context.Background()

	n, err := svc.Seed(ctx, SampleProducts())
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = svc.Seed(ctx, SampleProducts())
	require.NoError(t, err)
	assert.Zero(t, n)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "prod1", all[0].ID)
}

func TestCatalogSeedPropagatesRepositoryErrors(t *testing.T) {
	svc, repo := newProductService()
	repo.err = errors.New("connection refused")

	_, err := svc.Seed(context.Background(), SampleProducts())
	assert.ErrorContains(t, err, "connection refused")
}
