package driven

import (
	"context"
	"io"

	"github.com/custodia-labs/contractai-cli/internal/core/domain"
)

// CalendarExporter writes a single key date in a calendar interchange format.
type CalendarExporter interface {
	// Export writes the key date of the named document to w.
	Export(ctx context.Context, documentName string, date domain.KeyDate, w io.Writer) error

	// Extension returns the file extension for this format.
	Extension() string
}

// SnapshotExporter serialises a session snapshot.
type SnapshotExporter interface {
	Export(snapshot *domain.Snapshot, w io.Writer) error

	// Extension returns the file extension for this format.
	Extension() string
}
