package routes

import (
	"net/http"

	"support-widget/internal/domain/entities"
	"support-widget/internal/infra/handlers"
	"support-widget/internal/metrics"

	"github.com/gorilla/mux"
)

type Routes struct {
	Mux           *mux.Router
	Products      *handlers.CatalogHandlers[entities.Product]
	ChatResponses *handlers.CatalogHandlers[entities.ChatResponseEntry]
	Chat          *handlers.ChatHandlers
}

func NewRoutes(
	mux *mux.Router,
	products *handlers.CatalogHandlers[entities.Product],
	chatResponses *handlers.CatalogHandlers[entities.ChatResponseEntry],
	chat *handlers.ChatHandlers,
) *Routes {
	return &Routes{Mux: mux, Products: products, ChatResponses: chatResponses, Chat: chat}
}

func (r *Routes) Init() {
	r.Mux.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)

	api := r.Mux.PathPrefix("/api").Subrouter()

	api.HandleFunc("/health", handlers.Health).Methods(http.MethodGet, http.MethodHead)

	api.HandleFunc("/products", r.Products.List).Methods(http.MethodGet)
	api.HandleFunc("/products", r.Products.Create).Methods(http.MethodPost)
	api.HandleFunc("/products/{id}", r.Products.Get).Methods(http.MethodGet)
	api.HandleFunc("/products/{id}", r.Products.Update).Methods(http.MethodPut)
	api.HandleFunc("/products/{id}", r.Products.Delete).Methods(http.MethodDelete)

	api.HandleFunc("/chat-responses", r.ChatResponses.List).Methods(http.MethodGet)
	api.HandleFunc("/chat-responses", r.ChatResponses.Create).Methods(http.MethodPost)
	api.HandleFunc("/chat-responses/{id}", r.ChatResponses.Get).Methods(http.MethodGet)
	api.HandleFunc("/chat-responses/{id}", r.ChatResponses.Update).Methods(http.MethodPut)
	api.HandleFunc("/chat-responses/{id}", r.ChatResponses.Delete).Methods(http.MethodDelete)

	api.HandleFunc("/chat", r.Chat.Chat).Methods(http.MethodPost)
	api.HandleFunc("/gemini/generate", r.Chat.Generate).Methods(http.MethodPost)
}
