package markdown

import (
	"context"
	"regexp"
	"strings"

	"github.com/custodia-labs/contractai-cli/internal/core/domain"
	"github.com/custodia-labs/contractai-cli/internal/core/ports/driven"
	"github.com/custodia-labs/contractai-cli/internal/normalisers"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// Normaliser handles Markdown contracts.
type Normaliser struct{}

// New creates a new Markdown normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// SupportedExtensions returns the file extensions this normaliser handles.
func (n *Normaliser) SupportedExtensions() []string {
	return []string{".md", ".markdown"}
}

// Normalise converts Markdown to plain contract text.
// The first H1 heading names the contract when present.
func (n *Normaliser) Normalise(_ context.Context, raw *domain.RawDocument) (*domain.Ingested, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	rawContent := string(raw.Content)
	name := raw.Name
	if name == "" {
		name = extractMarkdownTitle(rawContent)
	}
	if name == "" {
		name = normalisers.DisplayName(raw)
	}

	return normalisers.Analyse(name, stripMarkdown(rawContent)), nil
}

// extractMarkdownTitle returns the text of the first H1 heading.
func extractMarkdownTitle(content string) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(strings.TrimPrefix(line, "#"))
		}
	}
	return ""
}

var (
	codeBlock     = regexp.MustCompile("(?s)```[^`]*```")
	inlineCode    = regexp.MustCompile("`([^`]+)`")
	images        = regexp.MustCompile(`!\[[^\]]*\]\([^)]+\)`)
	links         = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)
	headings      = regexp.MustCompile(`(?m)^#{1,6}\s+`)
	emphasis      = regexp.MustCompile(`(\*\*|__)(.+?)(\*\*|__)`)
	blockquote    = regexp.MustCompile(`(?m)^>\s*`)
	hr            = regexp.MustCompile(`(?m)^[-*_]{3,}\s*$`)
	listMarkers   = regexp.MustCompile(`(?m)^\s*[-*+]\s+`)
	multiNewlines = regexp.MustCompile(`\n{3,}`)
)

// stripMarkdown removes Markdown formatting.
// Numbered clause markers and single underscores are kept, since contracts
// reference clauses by number and snippets must still match the text.
func stripMarkdown(content string) string {
	content = codeBlock.ReplaceAllString(content, "")
	content = inlineCode.ReplaceAllString(content, "$1")
	content = images.ReplaceAllString(content, "")
	content = links.ReplaceAllString(content, "$1")
	content = headings.ReplaceAllString(content, "")
	content = emphasis.ReplaceAllString(content, "$2")
	content = blockquote.ReplaceAllString(content, "")
	content = hr.ReplaceAllString(content, "")
	content = listMarkers.ReplaceAllString(content, "")
	content = multiNewlines.ReplaceAllString(content, "\n\n")
	return strings.TrimSpace(content)
}
