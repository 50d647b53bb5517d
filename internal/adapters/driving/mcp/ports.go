package mcp

import (
	"github.com/custodia-labs/contractai-cli/internal/core/domain"
	"github.com/custodia-labs/contractai-cli/internal/core/ports/driving"
)

// EventSource supplies the recorded session events in publish order.
type EventSource interface {
	Events() []domain.Event
}

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Workspace loads documents and takes snapshots.
	Workspace driving.WorkspaceService

	// Documents lists documents and switches the active one.
	Documents driving.DocumentService

	// Clauses selects clause issues and partitions the text.
	Clauses driving.ClauseReviewService

	// Conversation posts messages and reads logs.
	Conversation driving.ConversationService

	// Ingest reads contract files.
	Ingest driving.IngestService

	// History backs the history resource. Optional.
	History EventSource
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	switch {
	case p.Workspace == nil:
		return ErrMissingWorkspace
	case p.Documents == nil:
		return ErrMissingDocuments
	case p.Clauses == nil:
		return ErrMissingClauses
	case p.Conversation == nil:
		return ErrMissingConversation
	case p.Ingest == nil:
		return ErrMissingIngest
	}
	return nil
}
