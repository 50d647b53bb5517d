package services

import (
	"context"
	"time"

	"github.com/custodia-labs/contractai-cli/internal/core/domain"
	"github.com/custodia-labs/contractai-cli/internal/core/ports/driven"
	"github.com/custodia-labs/contractai-cli/internal/logger"
)

// emitter publishes session events to an optional publisher.
// A nil publisher drops events; publish failures are logged, never returned.
type emitter struct {
	publisher driven.EventPublisher
}

func (e emitter) emit(ctx context.Context, event domain.Event) {
	if e.publisher == nil {
		return
	}
	if event.At.IsZero() {
		event.At = time.Now()
	}
	if err := e.publisher.Publish(ctx, event); err != nil {
		logger.Warn("publishing %s event: %v", event.Type, err)
	}
}
