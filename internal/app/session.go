// Package app assembles a workspace session from its adapters.
// The CLI, TUI and MCP surfaces each run against one Session.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/custodia-labs/contractai-cli/internal/adapters/driven/clock/manual"
	"github.com/custodia-labs/contractai-cli/internal/adapters/driven/clock/system"
	"github.com/custodia-labs/contractai-cli/internal/adapters/driven/events"
	"github.com/custodia-labs/contractai-cli/internal/adapters/driven/reply/template"
	"github.com/custodia-labs/contractai-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/contractai-cli/internal/core/domain"
	"github.com/custodia-labs/contractai-cli/internal/core/ports/driven"
	"github.com/custodia-labs/contractai-cli/internal/core/ports/driving"
	"github.com/custodia-labs/contractai-cli/internal/core/services"
	"github.com/custodia-labs/contractai-cli/internal/logger"
	"github.com/custodia-labs/contractai-cli/internal/normalisers/html"
	"github.com/custodia-labs/contractai-cli/internal/normalisers/markdown"
	"github.com/custodia-labs/contractai-cli/internal/normalisers/plaintext"
)

// Options configures a session.
type Options struct {
	// Settings are the workspace policies. Zero value means defaults.
	Settings *domain.WorkspaceSettings

	// Instant runs replies on a manual clock that Flush releases,
	// instead of waiting out the reply delay.
	Instant bool

	// Ingest reads contract files. Defaults to NewIngestService.
	Ingest driving.IngestService
}

// Session is one in-memory workspace with its event feed.
type Session struct {
	*services.Workspace

	// Ingest reads contract files into the workspace.
	Ingest driving.IngestService

	// Bus carries the session event feed.
	Bus *events.Bus

	// History records the event feed for the audit trail.
	History *events.History

	settings domain.WorkspaceSettings
	clock    *manual.Clock
	cancel   context.CancelFunc
}

// NewIngestService returns an ingest service with every built-in normaliser.
func NewIngestService() *services.IngestService {
	return services.NewIngestService(plaintext.New(), markdown.New(), html.New())
}

// NewSession wires memory stores, a clock, the reply generator and the event bus.
func NewSession(opts Options) (*Session, error) {
	settings := domain.DefaultWorkspaceSettings()
	if opts.Settings != nil {
		settings = *opts.Settings
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	ingest := opts.Ingest
	if ingest == nil {
		ingest = NewIngestService()
	}

	var clock driven.Clock = system.New()
	var manualClock *manual.Clock
	if opts.Instant {
		manualClock = manual.New(time.Now())
		clock = manualClock
	}

	bus := events.NewBus()
	ctx, cancel := context.WithCancel(context.Background())
	history, err := events.NewHistory(ctx, bus)
	if err != nil {
		cancel()
		_ = bus.Close()
		return nil, fmt.Errorf("failed to start event history: %w", err)
	}

	session := services.NewSession()
	docs := memory.NewDocumentStore()
	logs := memory.NewConversationStore()

	documents := services.NewDocumentService(docs, session).WithEvents(bus)
	clauses := services.NewClauseReviewService(docs, session).WithEvents(bus)
	conversation := services.NewConversationService(
		docs, logs, session,
		template.New(settings.ReplyTemplate),
		services.NewScheduler(clock),
		settings.ReplyDelay,
	).WithEvents(bus).WithFallbackTemplate(settings.ReplyTemplate)
	navigator := services.NewNavigator(session).WithEvents(bus)

	logger.Debug("session started (delay=%s, instant=%t)", settings.ReplyDelay, opts.Instant)

	return &Session{
		Workspace: services.NewWorkspace(
			session, documents, clauses, conversation, navigator, settings.OpenChatOnLoad,
		),
		Ingest:   ingest,
		Bus:      bus,
		History:  history,
		settings: settings,
		clock:    manualClock,
		cancel:   cancel,
	}, nil
}

// Settings returns the policies the session was built with.
func (s *Session) Settings() domain.WorkspaceSettings {
	return s.settings
}

// LoadFile ingests the file at path and loads it into the workspace.
func (s *Session) LoadFile(ctx context.Context, path string) (string, error) {
	in, err := s.Ingest.FromFile(ctx, path)
	if err != nil {
		return "", err
	}
	return s.Workspace.Load(ctx, *in)
}

// LoadFiles loads every path in order. The last one ends up active.
func (s *Session) LoadFiles(ctx context.Context, paths []string) ([]string, error) {
	ids := make([]string, 0, len(paths))
	for _, path := range paths {
		id, err := s.LoadFile(ctx, path)
		if err != nil {
			return ids, fmt.Errorf("failed to load %s: %w", path, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// Flush blocks until every scheduled reply has been delivered.
// An instant session releases them immediately.
func (s *Session) Flush() {
	if s.clock != nil {
		s.clock.Advance(s.settings.ReplyDelay)
	}
	s.Conversation.Wait()
}

// Close cancels undelivered replies and shuts the event feed down.
func (s *Session) Close() error {
	s.Conversation.Close()
	s.cancel()
	return s.Bus.Close()
}
