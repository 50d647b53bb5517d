package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/custodia-labs/contractai-cli/internal/core/domain"
	"github.com/custodia-labs/contractai-cli/internal/core/ports/driven"
)

// Ensure ConversationStore implements the interface.
var _ driven.ConversationStore = (*ConversationStore)(nil)

// ConversationStore is an in-memory implementation of driven.ConversationStore.
type ConversationStore struct {
	mu   sync.RWMutex
	logs map[string][]domain.Exchange
}

// NewConversationStore creates a new in-memory conversation store.
func NewConversationStore() *ConversationStore {
	return &ConversationStore{
		logs: make(map[string][]domain.Exchange),
	}
}

// Append adds an exchange to the end of a document's log.
func (s *ConversationStore) Append(_ context.Context, documentID string, exchange domain.Exchange) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logs[documentID] = append(s.logs[documentID], exchange)
	return nil
}

// Log returns a copy of a document's log.
func (s *ConversationStore) Log(_ context.Context, documentID string) ([]domain.Exchange, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	log := s.logs[documentID]
	if log == nil {
		return []domain.Exchange{}, nil
	}
	return slices.Clone(log), nil
}
