package events

import (
	"context"
	"slices"
	"sync"

	"github.com/custodia-labs/contractai-cli/internal/core/domain"
)

// History records the session event feed for the audit trail.
type History struct {
	mu     sync.RWMutex
	events []domain.Event
	done   chan struct{}
}

// NewHistory subscribes a recorder to bus.
// An event is recorded before the Publish that sent it returns.
// Recording stops when ctx is cancelled or the bus is closed.
func NewHistory(ctx context.Context, bus *Bus) (*History, error) {
	h := &History{done: make(chan struct{})}
	if err := bus.handle(ctx, h.record, func() { close(h.done) }); err != nil {
		return nil, err
	}
	return h, nil
}

func (h *History) record(event domain.Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, event)
}

// Events returns recorded events in publish order. Timestamps are not
// compared: services may stamp events from different clocks.
func (h *History) Events() []domain.Event {
	h.mu.RLock()
	events := slices.Clone(h.events)
	h.mu.RUnlock()

	if events == nil {
		return []domain.Event{}
	}
	return events
}

// ForDocument returns the recorded events of one document in publish order.
func (h *History) ForDocument(documentID string) []domain.Event {
	all := h.Events()
	result := make([]domain.Event, 0, len(all))
	for _, e := range all {
		if e.DocumentID == documentID {
			result = append(result, e)
		}
	}
	return result
}

// Len returns the number of recorded events.
func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.events)
}

// Done is closed once recording has stopped.
func (h *History) Done() <-chan struct{} {
	return h.done
}
