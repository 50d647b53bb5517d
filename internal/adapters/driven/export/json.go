package export

import (
	"encoding/json"
	"io"

	"github.com/custodia-labs/contractai-cli/internal/core/domain"
)

// JSONExporter exports snapshots as indented JSON.
type JSONExporter struct{}

// Export writes the snapshot as JSON.
func (e *JSONExporter) Export(snapshot *domain.Snapshot, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(snapshot)
}

// Extension returns the file extension for this format.
func (e *JSONExporter) Extension() string {
	return "json"
}
