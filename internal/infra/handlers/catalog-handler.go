package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"support-widget/internal/domain/dto"
	"support-widget/internal/domain/entities"
	Iservices "support-widget/internal/domain/interfaces/services"
	"support-widget/internal/infra/logger"
	"support-widget/internal/infra/repository"

	"github.com/gorilla/mux"
)

// CatalogHandlers exposes CRUD over one catalogue resource.
type CatalogHandlers[T any] struct {
	Logger  *logger.Logger
	Service Iservices.ICatalogService[T]
	// Label names the resource in error messages, e.g. "product".
	Label string
}

func NewCatalogHandlers[T any](logger *logger.Logger, service Iservices.ICatalogService[T], label string) *CatalogHandlers[T] {
	return &CatalogHandlers[T]{Logger: logger, Service: service, Label: label}
}

func (h *CatalogHandlers[T]) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.Service.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("Error fetching %ss", h.Label), err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *CatalogHandlers[T]) Get(w http.ResponseWriter, r *http.Request) {
	item, err := h.Service.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.fail(w, "fetching", err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *CatalogHandlers[T]) Create(w http.ResponseWriter, r *http.Request) {
	var body T
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.Logger.Warn(fmt.Sprintf("Invalid %s payload: %v", h.Label, err))
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	created, err := h.Service.Create(r.Context(), body)
	if err != nil {
		h.fail(w, "creating", err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// Update shallow-merges the body onto the stored document. Fields the body
// omits keep their stored values.
func (h *CatalogHandlers[T]) Update(w http.ResponseWriter, r *http.Request) {
	var body entities.Document
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.Logger.Warn(fmt.Sprintf("Invalid %s payload: %v", h.Label, err))
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	updated, err := h.Service.Update(r.Context(), mux.Vars(r)["id"], body)
	if err != nil {
		h.fail(w, "updating", err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// Delete succeeds whether or not the id exists.
func (h *CatalogHandlers[T]) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.Service.Delete(r.Context(), mux.Vars(r)["id"])
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		h.fail(w, "deleting", err)
		return
	}
	writeJSON(w, http.StatusOK, dto.DeleteResult{Success: true})
}

func (h *CatalogHandlers[T]) fail(w http.ResponseWriter, action string, err error) {
	if errors.Is(err, repository.ErrNotFound) {
		writeError(w, http.StatusNotFound, fmt.Sprintf("%s not found", capitalize(h.Label)), nil)
		return
	}
	writeError(w, http.StatusInternalServerError, fmt.Sprintf("Error %s %s", action, h.Label), err)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
