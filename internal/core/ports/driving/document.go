package driving

import (
	"context"

	"github.com/custodia-labs/contractai-cli/internal/core/domain"
)

// DocumentService owns the documents of a session and which one is active.
type DocumentService interface {
	// Load adds a document, makes it active and clears any issue selection.
	// Returns the new document ID.
	Load(ctx context.Context, in domain.Ingested) (string, error)

	// SetActive makes an existing document active and clears any issue selection.
	// Returns domain.ErrNotFound for an unknown ID.
	SetActive(ctx context.Context, documentID string) error

	// Active returns the active document, or nil when none is loaded.
	Active(ctx context.Context) (*domain.Document, error)

	// Get retrieves any loaded document by ID.
	Get(ctx context.Context, documentID string) (*domain.Document, error)

	// List returns document summaries in load order.
	List(ctx context.Context) ([]domain.DocumentSummary, error)
}

// ClauseReviewService selects clause issues of the active document
// and renders the document text with the selected fragment highlighted.
type ClauseReviewService interface {
	// Select marks the issue at index as selected.
	// Returns domain.ErrOutOfRange if index is outside the active document's issues.
	Select(ctx context.Context, index int) error

	// Clear removes any selection.
	Clear(ctx context.Context)

	// Current returns the selected issue, or nil when none is selected.
	Current(ctx context.Context) (*domain.ClauseIssue, error)

	// Selected returns the selected index and whether one is set.
	Selected(ctx context.Context) (int, bool)

	// Segments returns the active document's text partitioned for the selected issue.
	// With no selection the whole text is a single plain segment.
	Segments(ctx context.Context) ([]domain.Segment, error)
}

// ConversationService runs the per-document conversations.
type ConversationService interface {
	// PostUserMessage appends a user turn and schedules one counterpart reply.
	PostUserMessage(ctx context.Context, documentID, content string) error

	// Log returns a document's exchanges. Unknown documents yield an empty log.
	Log(ctx context.Context, documentID string) []domain.Exchange

	// Pending returns the number of replies not yet delivered.
	Pending() int
}

// Navigator gates which workspace views are reachable.
type Navigator interface {
	// Current returns the current view.
	Current() domain.View

	// Navigate moves to v if it is reachable. Unreachable views are a silent no-op.
	// Returns whether the move happened.
	Navigate(v domain.View) bool

	// Reachable reports whether v can be navigated to now.
	Reachable(v domain.View) bool
}

// WorkspaceService is the session facade used by presentation surfaces.
type WorkspaceService interface {
	// Load loads a document and applies the open-chat-on-load policy.
	Load(ctx context.Context, in domain.Ingested) (string, error)

	// Snapshot returns a read-only picture of the session.
	Snapshot(ctx context.Context) (*domain.Snapshot, error)
}

// IngestService turns files into ingestion results.
type IngestService interface {
	// FromFile reads and normalises the file at path.
	FromFile(ctx context.Context, path string) (*domain.Ingested, error)

	// Supports reports whether a normaliser accepts the file's extension.
	Supports(path string) bool

	// Extensions lists the accepted extensions, sorted.
	Extensions() []string
}
