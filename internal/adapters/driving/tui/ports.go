// Package tui provides the interactive contract workspace.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/contractai-cli/internal/adapters/driving/tui/views/history"
	"github.com/custodia-labs/contractai-cli/internal/core/ports/driven"
	"github.com/custodia-labs/contractai-cli/internal/core/ports/driving"
)

// Ports aggregates the services the TUI drives.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Workspace loads documents and applies the open-chat-on-load policy.
	Workspace driving.WorkspaceService

	// Documents lists documents and switches the active one.
	Documents driving.DocumentService

	// Clauses selects clause issues and partitions the text.
	Clauses driving.ClauseReviewService

	// Conversation posts messages and reads logs.
	Conversation driving.ConversationService

	// Navigator gates which views are reachable.
	Navigator driving.Navigator

	// Ingest reads contract files.
	Ingest driving.IngestService

	// History supplies the audit trail. Optional.
	History history.Source

	// Calendar exports key dates. Optional; nil disables export.
	Calendar driven.CalendarExporter
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
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
	case p.Navigator == nil:
		return ErrMissingNavigator
	case p.Ingest == nil:
		return ErrMissingIngest
	}
	return nil
}
