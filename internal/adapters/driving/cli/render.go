package cli

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/contractai-cli/internal/core/domain"
)

// Plain-text markers around highlighted text when colour is unavailable.
const (
	highlightOpen  = "[["
	highlightClose = "]]"
)

// highlighter returns the function that marks highlighted text for w.
// Terminals get a coloured background, anything else gets bracket markers.
func highlighter(w io.Writer, plain bool, color string) func(string) string {
	if !plain && isTerminal(w) {
		style := lipgloss.NewStyle().
			Background(lipgloss.Color(color)).
			Foreground(lipgloss.Color("#000000"))
		return func(s string) string { return style.Render(s) }
	}
	return func(s string) string { return highlightOpen + s + highlightClose }
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// renderSegments joins segments, passing highlighted ones through mark.
func renderSegments(segments []domain.Segment, mark func(string) string) string {
	var b strings.Builder
	for _, seg := range segments {
		if seg.Highlighted() {
			b.WriteString(mark(seg.Text))
			continue
		}
		b.WriteString(seg.Text)
	}
	return b.String()
}

// printDocuments lists loaded documents with the active one marked.
func printDocuments(cmd *cobra.Command, docs []domain.DocumentSummary, activeID string) {
	for i, d := range docs {
		marker := " "
		if d.ID == activeID {
			marker = "*"
		}
		cmd.Printf("%s %d. %s\n", marker, i+1, d.Name)
	}
}
