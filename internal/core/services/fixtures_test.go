package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/custodia-labs/contractai-cli/internal/adapters/driven/clock/manual"
	"github.com/custodia-labs/contractai-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/contractai-cli/internal/core/domain"
)

var testEpoch = time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

// fixture wires the services of one session over memory stores and a manual clock.
type fixture struct {
	session   *Session
	docs      *memory.DocumentStore
	logs      *memory.ConversationStore
	clock     *manual.Clock
	events    *recordingPublisher
	documents *DocumentService
	clauses   *ClauseReviewService
	convo     *ConversationService
	nav       *Navigator
	workspace *Workspace
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		session: NewSession(),
		docs:    memory.NewDocumentStore(),
		logs:    memory.NewConversationStore(),
		clock:   manual.New(testEpoch),
		events:  &recordingPublisher{},
	}
	f.documents = NewDocumentService(f.docs, f.session).WithEvents(f.events)
	f.clauses = NewClauseReviewService(f.docs, f.session).WithEvents(f.events)
	f.convo = NewConversationService(f.docs, f.logs, f.session, nil, NewScheduler(f.clock), time.Second).
		WithEvents(f.events)
	f.nav = NewNavigator(f.session).WithEvents(f.events)
	f.workspace = NewWorkspace(f.session, f.documents, f.clauses, f.convo, f.nav, true)
	t.Cleanup(f.convo.Close)
	return f
}

func (f *fixture) load(t *testing.T, in domain.Ingested) string {
	t.Helper()
	id, err := f.documents.Load(context.Background(), in)
	if err != nil {
		t.Fatalf("load %q: %v", in.Name, err)
	}
	return id
}

func contract(name string) domain.Ingested {
	return domain.Ingested{
		Name: name,
		Text: "This contract may be terminated by either party. Payment due in 30 days.",
		KeyDates: []domain.KeyDate{
			{Date: "2024-12-31", Description: "Expiration of " + name},
		},
		ClauseIssues: []domain.ClauseIssue{
			{Clause: "Termination", Issue: "No notice period", Severity: domain.SeverityHigh,
				TextSnippet: "terminated by either party"},
			{Clause: "Payment", Issue: "Vague schedule", Severity: domain.SeverityLow,
				TextSnippet: "30 days"},
			{Clause: "Liability", Issue: "Unlimited", Severity: domain.SeverityMedium,
				TextSnippet: "not in the text"},
		},
	}
}

// recordingPublisher keeps published events in memory.
type recordingPublisher struct {
	mu     sync.Mutex
	events []domain.Event
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, event domain.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return p.err
}

func (p *recordingPublisher) types() []domain.EventType {
	p.mu.Lock()
	defer p.mu.Unlock()
	types := make([]domain.EventType, len(p.events))
	for i, e := range p.events {
		types[i] = e.Type
	}
	return types
}

func (p *recordingPublisher) last() domain.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.events[len(p.events)-1]
}

// stubReplies is a ReplyGenerator returning a fixed answer or error.
type stubReplies struct {
	reply string
	err   error
	seen  [][]domain.Exchange
}

func (s *stubReplies) Reply(_ context.Context, _ *domain.Document, history []domain.Exchange) (string, error) {
	s.seen = append(s.seen, history)
	return s.reply, s.err
}

var errGenerator = errors.New("generator offline")
