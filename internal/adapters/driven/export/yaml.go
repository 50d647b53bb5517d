package export

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/contractai-cli/internal/core/domain"
)

// YAMLExporter exports snapshots as YAML.
type YAMLExporter struct{}

// Export writes the snapshot as YAML.
func (e *YAMLExporter) Export(snapshot *domain.Snapshot, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	defer func() { _ = enc.Close() }()

	return enc.Encode(snapshot)
}

// Extension returns the file extension for this format.
func (e *YAMLExporter) Extension() string {
	return "yaml"
}
