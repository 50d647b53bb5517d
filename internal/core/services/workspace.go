package services

import (
	"context"

	"github.com/custodia-labs/contractai-cli/internal/core/domain"
	"github.com/custodia-labs/contractai-cli/internal/core/ports/driving"
)

// Ensure Workspace implements the interface.
var _ driving.WorkspaceService = (*Workspace)(nil)

// Workspace is the session facade used by the CLI, TUI and MCP surfaces.
// It applies the open-chat-on-load policy on top of the document service.
type Workspace struct {
	Session      *Session
	Documents    *DocumentService
	Clauses      *ClauseReviewService
	Conversation *ConversationService
	Navigator    *Navigator

	openChatOnLoad bool
}

// NewWorkspace assembles a workspace from its services.
func NewWorkspace(
	session *Session,
	documents *DocumentService,
	clauses *ClauseReviewService,
	conversation *ConversationService,
	navigator *Navigator,
	openChatOnLoad bool,
) *Workspace {
	return &Workspace{
		Session:        session,
		Documents:      documents,
		Clauses:        clauses,
		Conversation:   conversation,
		Navigator:      navigator,
		openChatOnLoad: openChatOnLoad,
	}
}

// Load loads a document and, when the policy is on, switches to the chat view.
func (w *Workspace) Load(ctx context.Context, in domain.Ingested) (string, error) {
	id, err := w.Documents.Load(ctx, in)
	if err != nil {
		return "", err
	}
	if w.openChatOnLoad {
		w.Navigator.Navigate(domain.ViewChat)
	}
	return id, nil
}

// OpenChatOnLoad reports whether loading switches to the chat view.
func (w *Workspace) OpenChatOnLoad() bool {
	return w.openChatOnLoad
}

// Snapshot returns a read-only picture of the session.
func (w *Workspace) Snapshot(ctx context.Context) (*domain.Snapshot, error) {
	docs, err := w.Documents.List(ctx)
	if err != nil {
		return nil, err
	}
	active, index, selected, err := w.Clauses.review(ctx)
	if err != nil {
		return nil, err
	}

	snap := &domain.Snapshot{
		View:      w.Navigator.Current().String(),
		Reachable: []string{},
		Documents: docs,
		Active:    active,
		Log:       []domain.Exchange{},
	}
	for _, v := range domain.AllViews() {
		if w.Navigator.Reachable(v) {
			snap.Reachable = append(snap.Reachable, v.String())
		}
	}
	if active == nil {
		return snap, nil
	}

	if selected {
		snap.SelectedIssue = &index
	}
	snap.Segments = segmentsFor(active, index, selected)
	snap.Log = w.Conversation.Log(ctx, active.ID)
	return snap, nil
}
