package plaintext

import (
	"context"
	"strings"

	"github.com/custodia-labs/contractai-cli/internal/core/domain"
	"github.com/custodia-labs/contractai-cli/internal/core/ports/driven"
	"github.com/custodia-labs/contractai-cli/internal/normalisers"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// Normaliser handles plain text contracts.
type Normaliser struct{}

// New creates a new plain text normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// SupportedExtensions returns the file extensions this normaliser handles.
func (n *Normaliser) SupportedExtensions() []string {
	return []string{".txt", ".text"}
}

// Normalise uses the file content verbatim as the contract text.
// A byte order mark is dropped; everything else is kept so snippets match literally.
func (n *Normaliser) Normalise(_ context.Context, raw *domain.RawDocument) (*domain.Ingested, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	content := strings.TrimPrefix(string(raw.Content), "\ufeff")
	if strings.TrimSpace(content) == "" {
		content = ""
	}
	return normalisers.Analyse(normalisers.DisplayName(raw), content), nil
}
