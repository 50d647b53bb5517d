package markdown

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/contractai-cli/internal/core/domain"
	"github.com/custodia-labs/contractai-cli/internal/core/ports/driven"
)

func TestSupportedExtensions(t *testing.T) {
	assert.ElementsMatch(t, []string{".md", ".markdown"}, New().SupportedExtensions())
}

func TestNormalise_TitleFromHeading(t *testing.T) {
	raw := &domain.RawDocument{
		URI:     "/contracts/msa.md",
		Content: []byte("# Master Services Agreement\n\nPayment due in **30 days**."),
	}

	in, err := New().Normalise(context.Background(), raw)
	require.NoError(t, err)
	assert.Equal(t, "Master Services Agreement", in.Name)
	assert.Equal(t, "Master Services Agreement\n\nPayment due in 30 days.", in.Text)
}

func TestNormalise_TitleFallsBackToFileName(t *testing.T) {
	raw := &domain.RawDocument{
		URI:     "/contracts/lease.md",
		Content: []byte("## Section 1\nRent is due monthly."),
	}

	in, err := New().Normalise(context.Background(), raw)
	require.NoError(t, err)
	assert.Equal(t, "lease.md", in.Name)
}

func TestNormalise_NilDocument(t *testing.T) {
	_, err := New().Normalise(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestStripMarkdown(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"headings", "## Term\nOne year.", "Term\nOne year."},
		{"bold", "**Liability** is capped.", "Liability is capped."},
		{"links", "See [schedule A](http://x/a).", "See schedule A."},
		{"inline code kept as text", "Use `NET30` terms.", "Use NET30 terms."},
		{"list markers", "- first\n* second", "first\nsecond"},
		{"numbered clauses kept", "1. Definitions\n2. Term", "1. Definitions\n2. Term"},
		{"underscores kept", "the_party", "the_party"},
		{"blockquote", "> quoted", "quoted"},
		{"collapse blank lines", "a\n\n\n\nb", "a\n\nb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, stripMarkdown(tt.input))
		})
	}
}

func TestInterfaceCompliance(t *testing.T) {
	var _ driven.Normaliser = (*Normaliser)(nil)
}
