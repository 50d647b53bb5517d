package events

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/contractai-cli/internal/core/domain"
)

func TestBus_PublishSubscribe(t *testing.T) {
	bus := NewBus()
	defer bus.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	feed, err := bus.Subscribe(ctx)
	require.NoError(t, err)

	at := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	require.NoError(t, bus.Publish(ctx, domain.Event{
		Type:         domain.EventDocumentLoaded,
		DocumentID:   "doc-1",
		DocumentName: "lease.txt",
		At:           at,
	}))

	select {
	case event := <-feed:
		assert.Equal(t, domain.EventDocumentLoaded, event.Type)
		assert.Equal(t, "doc-1", event.DocumentID)
		assert.Equal(t, "lease.txt", event.DocumentName)
		assert.True(t, at.Equal(event.At))
	case <-time.After(time.Second):
		t.Fatal("event not delivered")
	}
}

func TestBus_PublishWithoutSubscribers(t *testing.T) {
	bus := NewBus()
	defer bus.Close()

	assert.NoError(t, bus.Publish(context.Background(), domain.Event{Type: domain.EventIssueCleared}))
}

func TestBus_CloseEndsSubscriptions(t *testing.T) {
	bus := NewBus()

	feed, err := bus.Subscribe(context.Background())
	require.NoError(t, err)
	require.NoError(t, bus.Close())

	select {
	case _, open := <-feed:
		assert.False(t, open)
	case <-time.After(time.Second):
		t.Fatal("subscription not closed")
	}

	assert.Error(t, bus.Publish(context.Background(), domain.Event{Type: domain.EventMessageSent}))
}

func TestHistory_RecordsBeforePublishReturns(t *testing.T) {
	bus := NewBus()
	defer bus.Close()

	history, err := NewHistory(context.Background(), bus)
	require.NoError(t, err)
	assert.Empty(t, history.Events())

	base := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	events := []domain.Event{
		{Type: domain.EventDocumentLoaded, DocumentID: "a", At: base},
		{Type: domain.EventMessageSent, DocumentID: "a", Detail: "hi", At: base.Add(time.Second)},
		{Type: domain.EventDocumentLoaded, DocumentID: "b", At: base.Add(2 * time.Second)},
	}
	for _, e := range events {
		require.NoError(t, bus.Publish(context.Background(), e))
	}

	require.Equal(t, 3, history.Len())
	got := history.Events()
	assert.Equal(t, domain.EventDocumentLoaded, got[0].Type)
	assert.Equal(t, "hi", got[1].Detail)
	assert.Equal(t, "b", got[2].DocumentID)

	forA := history.ForDocument("a")
	assert.Len(t, forA, 2)
	assert.Empty(t, history.ForDocument("missing"))
}

func TestHistory_KeepsPublishOrder(t *testing.T) {
	bus := NewBus()
	defer bus.Close()

	history, err := NewHistory(context.Background(), bus)
	require.NoError(t, err)

	// A manual clock can stamp later events with earlier times.
	wall := time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)
	manual := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	require.NoError(t, bus.Publish(context.Background(), domain.Event{Type: domain.EventDocumentLoaded, DocumentID: "a", At: wall}))
	require.NoError(t, bus.Publish(context.Background(), domain.Event{Type: domain.EventMessageSent, DocumentID: "a", At: manual}))
	require.NoError(t, bus.Publish(context.Background(), domain.Event{Type: domain.EventReplyReceived, DocumentID: "a", At: manual.Add(time.Second)}))

	want := []domain.EventType{domain.EventDocumentLoaded, domain.EventMessageSent, domain.EventReplyReceived}
	for _, events := range [][]domain.Event{history.Events(), history.ForDocument("a")} {
		require.Len(t, events, 3)
		for i, e := range events {
			assert.Equal(t, want[i], e.Type)
		}
	}
}

func TestHistory_StopsOnCancel(t *testing.T) {
	bus := NewBus()
	defer bus.Close()

	ctx, cancel := context.WithCancel(context.Background())
	history, err := NewHistory(ctx, bus)
	require.NoError(t, err)
	cancel()

	select {
	case <-history.Done():
	case <-time.After(time.Second):
		t.Fatal("history did not stop")
	}
}
