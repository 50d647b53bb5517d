package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/custodia-labs/contractai-cli/internal/core/domain"
	"github.com/custodia-labs/contractai-cli/internal/core/ports/driven"
)

// Ensure DocumentStore implements the interface.
var _ driven.DocumentStore = (*DocumentStore)(nil)

// DocumentStore is an in-memory implementation of driven.DocumentStore.
// Documents are kept in insertion order and handed out as copies.
type DocumentStore struct {
	mu        sync.RWMutex
	documents map[string]*domain.Document
	order     []string
}

// NewDocumentStore creates a new in-memory document store.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{
		documents: make(map[string]*domain.Document),
	}
}

// Add stores a new document.
func (s *DocumentStore) Add(_ context.Context, doc *domain.Document) error {
	if doc == nil || doc.ID == "" {
		return fmt.Errorf("%w: document without id", domain.ErrInvalidInput)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.documents[doc.ID]; exists {
		return fmt.Errorf("document %q: %w", doc.ID, domain.ErrAlreadyExists)
	}
	s.documents[doc.ID] = doc.Clone()
	s.order = append(s.order, doc.ID)
	return nil
}

// Get retrieves a document by ID.
func (s *DocumentStore) Get(_ context.Context, id string) (*domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.documents[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return doc.Clone(), nil
}

// List returns all documents in insertion order.
func (s *DocumentStore) List(_ context.Context) ([]domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	docs := make([]domain.Document, 0, len(s.order))
	for _, id := range s.order {
		docs = append(docs, *s.documents[id].Clone())
	}
	return docs, nil
}

// Count returns the number of stored documents.
func (s *DocumentStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}
