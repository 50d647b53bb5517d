package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/custodia-labs/contractai-cli/internal/core/domain"
)

// MarkdownExporter exports snapshots as a readable review report.
type MarkdownExporter struct{}

// Export writes the snapshot as Markdown.
// The highlighted span of the document text is rendered in bold.
func (e *MarkdownExporter) Export(snapshot *domain.Snapshot, w io.Writer) error {
	var b strings.Builder

	b.WriteString("# Contract review\n\n")
	if len(snapshot.Documents) > 0 {
		b.WriteString("## Documents\n\n")
		for _, d := range snapshot.Documents {
			marker := ""
			if snapshot.Active != nil && d.ID == snapshot.Active.ID {
				marker = " (active)"
			}
			fmt.Fprintf(&b, "- %s%s\n", d.Name, marker)
		}
		b.WriteString("\n")
	}

	doc := snapshot.Active
	if doc == nil {
		b.WriteString("_No document loaded._\n")
		_, err := io.WriteString(w, b.String())
		return err
	}

	fmt.Fprintf(&b, "## %s\n\n", doc.Name)

	b.WriteString("### Key dates\n\n")
	if len(doc.KeyDates) == 0 {
		b.WriteString("No key dates found for this contract.\n\n")
	} else {
		b.WriteString("| Date | Description |\n|---|---|\n")
		for _, kd := range doc.KeyDates {
			fmt.Fprintf(&b, "| %s | %s |\n", kd.Date, escapeCell(kd.Description))
		}
		b.WriteString("\n")
	}

	b.WriteString("### Clause issues\n\n")
	if len(doc.ClauseIssues) == 0 {
		b.WriteString("No clause issues found for this contract.\n\n")
	} else {
		for i, issue := range doc.ClauseIssues {
			selected := ""
			if snapshot.SelectedIssue != nil && *snapshot.SelectedIssue == i {
				selected = " (selected)"
			}
			fmt.Fprintf(&b, "%d. **%s** [%s]%s: %s\n", i+1, issue.Clause, issue.Severity, selected, issue.Issue)
		}
		b.WriteString("\n")
	}

	b.WriteString("### Text\n\n")
	for _, seg := range snapshot.Segments {
		if seg.Highlighted() {
			fmt.Fprintf(&b, "**%s**", seg.Text)
		} else {
			b.WriteString(seg.Text)
		}
	}
	b.WriteString("\n\n")

	if len(snapshot.Log) > 0 {
		b.WriteString("### Conversation\n\n")
		for _, ex := range snapshot.Log {
			fmt.Fprintf(&b, "**%s:** %s\n\n", ex.Role, ex.Content)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// Extension returns the file extension for this format.
func (e *MarkdownExporter) Extension() string {
	return "md"
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
