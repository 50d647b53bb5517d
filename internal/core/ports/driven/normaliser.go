package driven

import (
	"context"

	"github.com/custodia-labs/contractai-cli/internal/core/domain"
)

// Normaliser transforms raw file content into an ingestion result.
// Each normaliser handles specific file extensions.
type Normaliser interface {
	// SupportedExtensions returns the lower-case extensions handled, with the dot.
	SupportedExtensions() []string

	// Normalise decodes the content and derives key dates and clause issues.
	Normalise(ctx context.Context, raw *domain.RawDocument) (*domain.Ingested, error)
}
