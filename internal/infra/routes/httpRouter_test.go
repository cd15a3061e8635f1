package routes

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"support-widget/internal/domain/dto"
	"support-widget/internal/domain/entities"
	repocontants "support-widget/internal/domain/interfaces/repository/contants"
	"support-widget/internal/infra/api"
	"support-widget/internal/infra/handlers"
	"support-widget/internal/infra/logger"
	"support-widget/internal/infra/probe"
	"support-widget/internal/infra/repository"
	"support-widget/internal/infra/services"
	"support-widget/internal/infra/store"
	"support-widget/internal/middleware"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepository keeps one collection in memory. Update merges the patch
// through JSON the way $set leaves unnamed fields alone.
type fakeRepository[T entities.Entity[T]] struct {
	items []T
}

func (f *fakeRepository[T]) Create(_ context.Context, _ string, e T) (T, error) {
	f.items = append(f.items, e)
	return e, nil
}

func (f *fakeRepository[T]) Update(_ context.Context, _ string, id string, patch entities.Document) (T, error) {
	var zero T
	for i, item := range f.items {
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
		f.items[i] = merged
		return merged, nil
	}
	return zero, repository.ErrNotFound
}

func (f *fakeRepository[T]) Delete(_ context.Context, _ string, id string) error {
	for i, item := range f.items {
		if item.GetID() == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeRepository[T]) FindByID(_ context.Context, _ string, id string) (T, error) {
	for _, item := range f.items {
		if item.GetID() == id {
			return item, nil
		}
	}
	var zero T
	return zero, repository.ErrNotFound
}

func (f *fakeRepository[T]) FindAll(context.Context, string) ([]T, error) {
	return append([]T{}, f.items...), nil
}

func (f *fakeRepository[T]) Count(context.Context, string) (int64, error) {
	return int64(len(f.items)), nil
}

var storedSofa = entities.Product{
	ID:          "prod1",
	Name:        "Modern Leather Sofa",
	Description: "Elegant modern sofa with genuine leather upholstery.",
	Price:       1299,
	Category:    "living",
	Image:       "/images/sofa1.jpg",
}

type fakeAnswers struct {
	answer string
	err    error
	prompt string
}

func (f *fakeAnswers) GenerateAnswer(_ context.Context, prompt string) (string, error) {
	f.prompt = prompt
	return f.answer, f.err
}

func newTestServer(t *testing.T, answers *fakeAnswers) (*httptest.Server, *fakeRepository[entities.Product]) {
	t.Helper()
	log := logger.NewDiscardLogger()
	productRepo := &fakeRepository[entities.Product]{items: []entities.Product{storedSofa}}
	products := services.NewCatalogService[entities.Product](productRepo, repocontants.PRODUCTS_COLLECTION, log)
	canned := services.NewCatalogService[entities.ChatResponseEntry](&fakeRepository[entities.ChatResponseEntry]{}, repocontants.CHAT_RESPONSES_COLLECTION, log)

	router := mux.NewRouter()
	router.Use(middleware.LoggingMiddleware(log))
	NewRoutes(
		router,
		handlers.NewCatalogHandlers[entities.Product](log, products, "product"),
		handlers.NewCatalogHandlers[entities.ChatResponseEntry](log, canned, "chat response"),
		handlers.NewChatHandlers(log, answers),
	).Init()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv, productRepo
}

func newLiveClient(t *testing.T, srv *httptest.Server) *api.Client {
	t.Helper()
	log := logger.NewDiscardLogger()
	p := probe.NewProbe(log, srv.Client(), srv.URL+"/api/health", time.Second)
	return api.NewClient(log, p, store.NewMemoryStore(), api.Options{BaseURL: srv.URL + "/api", HttpClient: srv.Client()})
}

func do(t *testing.T, method, url, body string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { res.Body.Close() })
	return res
}

func decode[T any](t *testing.T, res *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(res.Body).Decode(&out))
	return out
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(t, &fakeAnswers{})

	res := do(t, http.MethodGet, srv.URL+"/api/health", "")
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, map[string]string{"status": "ok"}, decode[map[string]string](t, res))

	head := do(t, http.MethodHead, srv.URL+"/api/health", "")
	assert.Equal(t, http.StatusOK, head.StatusCode)
}

func TestProductCRUD(t *testing.T) {
	srv, products := newTestServer(t, &fakeAnswers{})

	list := do(t, http.MethodGet, srv.URL+"/api/products", "")
	require.Equal(t, http.StatusOK, list.StatusCode)
	assert.Len(t, decode[[]entities.Product](t, list), 1)

	created := do(t, http.MethodPost, srv.URL+"/api/products", `{"name":"Oak Desk","price":450}`)
	require.Equal(t, http.StatusCreated, created.StatusCode)
	assert.NotEmpty(t, decode[entities.Product](t, created).ID)

	updated := do(t, http.MethodPut, srv.URL+"/api/products/prod1", `{"price":1199}`)
	require.Equal(t, http.StatusOK, updated.StatusCode)
	product := decode[entities.Product](t, updated)
	assert.Equal(t, 1199.0, product.Price)
	assert.Equal(t, "Modern Leather Sofa", product.Name)

	deleted := do(t, http.MethodDelete, srv.URL+"/api/products/prod1", "")
	require.Equal(t, http.StatusOK, deleted.StatusCode)
	assert.True(t, decode[dto.DeleteResult](t, deleted).Success)
	assert.Len(t, products.items, 1)
}

func TestMissingProductIs404(t *testing.T) {
	srv, _ := newTestServer(t, &fakeAnswers{})

	res := do(t, http.MethodGet, srv.URL+"/api/products/nope", "")

	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	body := decode[dto.ErrorResponse](t, res)
	assert.False(t, body.Success)
	assert.Equal(t, "Product not found", body.Message)
}

func TestUpdateMissingProductIs404(t *testing.T) {
	srv, _ := newTestServer(t, &fakeAnswers{})

	res := do(t, http.MethodPut, srv.URL+"/api/products/nope", `{"price":10}`)

	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestDeleteIsIdempotentThroughClient(t *testing.T) {
	srv, products := newTestServer(t, &fakeAnswers{})
	c := newLiveClient(t, srv)
	ctx := context.Background()

	for _, path := range []string{"products/prod1", "products/prod1", "products/never-existed"} {
		res, err := api.Delete[dto.DeleteResult](ctx, c, path)
		require.NoError(t, err, path)
		assert.True(t, res.Data.Success, path)
	}
	assert.Empty(t, products.items)
}

func TestPartialUpdateMatchesOfflineMerge(t *testing.T) {
	srv, _ := newTestServer(t, &fakeAnswers{})
	ctx := context.Background()
	patch := map[string]any{"price": 1199}

	live, err := api.Put[entities.Product](ctx, newLiveClient(t, srv), "products/prod1", patch)
	require.NoError(t, err)

	log := logger.NewDiscardLogger()
	local := store.NewMemoryStore()
	doc, err := entities.ToDocument(storedSofa)
	require.NoError(t, err)
	require.NoError(t, local.Save(repocontants.LOCAL_PRODUCTS_COLLECTION, []entities.Document{doc.Normalize()}))
	offline := api.NewClient(log, probe.NewProbeWithState(log, nil, "http://unused/health", time.Second, probe.Offline), local, api.Options{})

	simulated, err := api.Put[entities.Product](ctx, offline, "products/prod1", patch)
	require.NoError(t, err)

	assert.Equal(t, 1199.0, live.Data.Price)
	assert.Equal(t, storedSofa.Description, live.Data.Description)
	assert.Equal(t, storedSofa.Image, live.Data.Image)
	assert.Equal(t, simulated.Data, live.Data)
}

func TestInvalidProductBodyIs400(t *testing.T) {
	srv, _ := newTestServer(t, &fakeAnswers{})

	res := do(t, http.MethodPost, srv.URL+"/api/products", `{not json`)

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestChatAnswersQueryOrMessage(t *testing.T) {
	answers := &fakeAnswers{answer: "We sell sofas."}
	srv, _ := newTestServer(t, answers)

	res := do(t, http.MethodPost, srv.URL+"/api/chat", `{"message":"what do you sell?"}`)

	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, dto.ChatResult{Success: true, Data: "We sell sofas."}, decode[dto.ChatResult](t, res))
	assert.Equal(t, "what do you sell?", answers.prompt)
}

func TestChatRequiresQuery(t *testing.T) {
	srv, _ := newTestServer(t, &fakeAnswers{})

	res := do(t, http.MethodPost, srv.URL+"/api/chat", `{}`)

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Equal(t, "Query or message is required", decode[dto.ErrorResponse](t, res).Message)
}

func TestChatGenerationFailureIs500(t *testing.T) {
	srv, _ := newTestServer(t, &fakeAnswers{err: errors.New("quota exceeded")})

	res := do(t, http.MethodPost, srv.URL+"/api/gemini/generate", `{"prompt":"hi"}`)

	assert.Equal(t, http.StatusInternalServerError, res.StatusCode)
	body := decode[dto.ErrorResponse](t, res)
	assert.Equal(t, "Error generating response", body.Message)
	assert.Equal(t, "quota exceeded", body.Error)
}

func TestMetricsEndpoint(t *testing.T) {
	srv, _ := newTestServer(t, &fakeAnswers{})
	do(t, http.MethodGet, srv.URL+"/api/health", "")

	res := do(t, http.MethodGet, srv.URL+"/metrics", "")

	assert.Equal(t, http.StatusOK, res.StatusCode)
}
