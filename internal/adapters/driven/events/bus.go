// Package events carries the session event feed over a watermill
// in-process pub/sub and records it for the history view.
package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"github.com/custodia-labs/contractai-cli/internal/core/domain"
	"github.com/custodia-labs/contractai-cli/internal/core/ports/driven"
	"github.com/custodia-labs/contractai-cli/internal/logger"
)

// Topic is the watermill topic session events are published on.
const Topic = "contractai.session"

// Ensure Bus implements the interface.
var _ driven.EventPublisher = (*Bus)(nil)

// Bus publishes session events as JSON messages.
// Publish returns once every subscriber has acknowledged the event,
// so subscribers observe events in publish order.
type Bus struct {
	pubSub *gochannel.GoChannel
}

// NewBus creates an in-process event bus.
func NewBus() *Bus {
	return &Bus{
		pubSub: gochannel.NewGoChannel(
			gochannel.Config{
				OutputChannelBuffer:            64,
				BlockPublishUntilSubscriberAck: true,
			},
			watermill.NopLogger{},
		),
	}
}

// Publish sends event to every subscriber.
func (b *Bus) Publish(_ context.Context, event domain.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encoding %s event: %w", event.Type, err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("type", string(event.Type))
	return b.pubSub.Publish(Topic, msg)
}

// Subscribe returns decoded events until ctx is cancelled or the bus is closed.
// The caller must keep draining the channel.
func (b *Bus) Subscribe(ctx context.Context) (<-chan domain.Event, error) {
	out := make(chan domain.Event, 64)
	err := b.handle(ctx, func(event domain.Event) {
		select {
		case out <- event:
		case <-ctx.Done():
		}
	}, func() { close(out) })
	if err != nil {
		return nil, err
	}
	return out, nil
}

// handle runs fn for each event and acknowledges it once fn returns.
// done runs when the subscription ends.
func (b *Bus) handle(ctx context.Context, fn func(domain.Event), done func()) error {
	messages, err := b.pubSub.Subscribe(ctx, Topic)
	if err != nil {
		return err
	}

	go func() {
		defer done()
		for msg := range messages {
			var event domain.Event
			if err := json.Unmarshal(msg.Payload, &event); err != nil {
				logger.Warn("dropping undecodable event %s: %v", msg.UUID, err)
			} else {
				fn(event)
			}
			msg.Ack()
		}
	}()
	return nil
}

// Close shuts the bus down and ends every subscription.
func (b *Bus) Close() error {
	return b.pubSub.Close()
}
