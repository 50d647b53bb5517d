// Package export serialises session snapshots for sharing and scripting.
package export

import (
	"fmt"

	"github.com/custodia-labs/contractai-cli/internal/core/ports/driven"
)

// Formats lists the supported export formats.
func Formats() []string {
	return []string{"json", "yaml", "markdown"}
}

// NewExporter creates a snapshot exporter for format.
func NewExporter(format string) (driven.SnapshotExporter, error) {
	switch format {
	case "json":
		return &JSONExporter{}, nil
	case "yaml", "yml":
		return &YAMLExporter{}, nil
	case "md", "markdown":
		return &MarkdownExporter{}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (supported: json, yaml, markdown)", format)
	}
}
