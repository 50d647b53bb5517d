package driven

import (
	"context"

	"github.com/custodia-labs/contractai-cli/internal/core/domain"
)

// ReplyGenerator produces the counterpart's answer in a document conversation.
//
// Implementations may include:
//   - A deterministic template (the built-in default)
//   - A language model given the document and history
type ReplyGenerator interface {
	// Reply returns the counterpart reply to the latest user message in history.
	Reply(ctx context.Context, doc *domain.Document, history []domain.Exchange) (string, error)
}
