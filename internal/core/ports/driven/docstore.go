package driven

import (
	"context"

	"github.com/custodia-labs/contractai-cli/internal/core/domain"
)

// DocumentStore holds the documents loaded into a session.
// Documents are kept in load order and never removed.
type DocumentStore interface {
	// Add stores a new document. Returns domain.ErrAlreadyExists if the ID is taken.
	Add(ctx context.Context, doc *domain.Document) error

	// Get retrieves a document by ID. Returns domain.ErrNotFound if absent.
	Get(ctx context.Context, id string) (*domain.Document, error)

	// List returns all documents in load order.
	List(ctx context.Context) ([]domain.Document, error)
}

// ConversationStore holds per-document exchange logs.
type ConversationStore interface {
	// Append adds an exchange to the end of a document's log.
	// The append is atomic with respect to concurrent appends and reads.
	Append(ctx context.Context, documentID string, exchange domain.Exchange) error

	// Log returns a copy of a document's log.
	// An unknown document yields an empty log, not an error.
	Log(ctx context.Context, documentID string) ([]domain.Exchange, error)
}
