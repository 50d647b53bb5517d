package driven

import (
	"context"

	"github.com/custodia-labs/contractai-cli/internal/core/domain"
)

// EventPublisher receives the session event feed.
// Publishing failures never fail the operation that produced the event.
type EventPublisher interface {
	Publish(ctx context.Context, event domain.Event) error
}
