package api

import (
	"context"
	"fmt"
	"net/http"

	"support-widget/internal/domain/dto"
	"support-widget/internal/domain/entities"
	repocontants "support-widget/internal/domain/interfaces/repository/contants"
)

func (c *Client) simulate(ctx context.Context, method, resource, id string, body any) (result any) {
	defer func() {
		if r := recover(); r != nil {
			c.Logger.Error(fmt.Sprintf("Error in offline mode for %s %s: %v", method, resource, r))
			result = nil
		}
	}()

	switch resource {
	case ResourceProducts:
		return c.catalog(repocontants.LOCAL_PRODUCTS_COLLECTION).handle(method, id, body)
	case ResourceChatResponses:
		return c.catalog(repocontants.LOCAL_CHAT_RESPONSES_COLLECTION).handle(method, id, body)
	case ResourceUsers:
		return c.catalog(repocontants.LOCAL_USERS_COLLECTION).handle(method, id, body)
	case ResourceChat:
		return c.simulateChat(ctx, method, body)
	default:
		return nil
	}
}

func (c *Client) catalog(collection string) catalogSimulator {
	return catalogSimulator{client: c, collection: collection}
}

// catalogSimulator implements CRUD over one local collection with the same
// result shapes the backend returns.
type catalogSimulator struct {
	client     *Client
	collection string
}

func (s catalogSimulator) handle(method, id string, body any) any {
	switch method {
	case http.MethodGet:
		docs := s.load()
		if id == "" {
			return docs
		}
		return findDocument(docs, id)
	case http.MethodPost:
		return s.create(body)
	case http.MethodPut:
		return s.update(id, body)
	case http.MethodDelete:
		return s.remove(id)
	default:
		return nil
	}
}

func (s catalogSimulator) create(body any) any {
	doc, err := entities.ToDocument(body)
	if err != nil {
		s.client.Logger.Warn(fmt.Sprintf("Rejected offline create on %s: %v", s.collection, err))
		return nil
	}
	if doc.HasID() {
		doc.Normalize()
	} else {
		doc.SetID(s.client.ids.Next())
	}

	docs := append(s.load(), doc)
	s.save(docs)
	return doc
}

func (s catalogSimulator) update(id string, body any) any {
	if id == "" {
		return nil
	}
	patch, err := entities.ToDocument(body)
	if err != nil {
		s.client.Logger.Warn(fmt.Sprintf("Rejected offline update on %s: %v", s.collection, err))
		return nil
	}

	docs := s.load()
	var updated entities.Document
	for i, doc := range docs {
		if doc.Matches(id) {
			docs[i] = doc.Merge(patch).Normalize()
			if updated == nil {
				updated = docs[i]
			}
		}
	}
	if updated == nil {
		return nil
	}
	s.save(docs)
	return updated
}

func (s catalogSimulator) remove(id string) any {
	docs := s.load()
	kept := make([]entities.Document, 0, len(docs))
	for _, doc := range docs {
		if !doc.Matches(id) {
			kept = append(kept, doc)
		}
	}
	if len(kept) != len(docs) {
		s.save(kept)
	}
	return dto.DeleteResult{Success: true}
}

func (s catalogSimulator) load() []entities.Document {
	return s.client.Store.Load(s.collection)
}

func (s catalogSimulator) save(docs []entities.Document) {
	if err := s.client.Store.Save(s.collection, docs); err != nil {
		s.client.Logger.Error(fmt.Sprintf("Failed to persist %s: %v", s.collection, err))
	}
}

func findDocument(docs []entities.Document, id string) entities.Document {
	for _, doc := range docs {
		if doc.Matches(id) {
			return doc.Normalize()
		}
	}
	return nil
}
