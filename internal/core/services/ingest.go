package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/custodia-labs/contractai-cli/internal/core/domain"
	"github.com/custodia-labs/contractai-cli/internal/core/ports/driven"
	"github.com/custodia-labs/contractai-cli/internal/core/ports/driving"
	"github.com/custodia-labs/contractai-cli/internal/logger"
)

// Ensure IngestService implements the interface.
var _ driving.IngestService = (*IngestService)(nil)

// IngestService reads files and dispatches them to a normaliser by extension.
type IngestService struct {
	byExt map[string]driven.Normaliser
}

// NewIngestService registers normalisers by their extensions.
// Later normalisers win when two claim the same extension.
func NewIngestService(normalisers ...driven.Normaliser) *IngestService {
	s := &IngestService{byExt: make(map[string]driven.Normaliser)}
	for _, n := range normalisers {
		for _, ext := range n.SupportedExtensions() {
			s.byExt[strings.ToLower(ext)] = n
		}
	}
	return s
}

// Supports reports whether a normaliser accepts the file's extension.
func (s *IngestService) Supports(path string) bool {
	_, ok := s.byExt[strings.ToLower(filepath.Ext(path))]
	return ok
}

// Extensions lists the accepted extensions, sorted.
func (s *IngestService) Extensions() []string {
	exts := make([]string, 0, len(s.byExt))
	for ext := range s.byExt {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// FromFile reads and normalises the file at path.
func (s *IngestService) FromFile(ctx context.Context, path string) (*domain.Ingested, error) {
	ext := strings.ToLower(filepath.Ext(path))
	normaliser, ok := s.byExt[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedType, filepath.Base(path))
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	in, err := normaliser.Normalise(ctx, &domain.RawDocument{URI: path, Content: content})
	if err != nil {
		return nil, fmt.Errorf("normalising %s: %w", path, err)
	}
	logger.Debug("ingested %s as %q (%d bytes)", path, in.Name, len(content))
	return in, nil
}
