// Package clausereview provides the view pairing clause issues with the
// document text, the selected issue's snippet highlighted.
package clausereview

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/contractai-cli/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/contractai-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/contractai-cli/internal/core/domain"
	"github.com/custodia-labs/contractai-cli/internal/core/ports/driving"
)

// View is the clause review view.
type View struct {
	styles    *styles.Styles
	documents driving.DocumentService
	clauses   driving.ClauseReviewService
	issues    *list.IssueList
	ctx       context.Context

	err    error
	width  int
	height int
}

// NewView creates a new clause review view.
func NewView(s *styles.Styles, documents driving.DocumentService, clauses driving.ClauseReviewService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:    s,
		documents: documents,
		clauses:   clauses,
		issues:    list.NewIssueList(s),
		ctx:       context.Background(),
		width:     80,
		height:    24,
	}
}

// SetContext sets the context used for service calls.
func (v *View) SetContext(ctx context.Context) {
	v.ctx = ctx
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the clause review view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}
	v.sync()

	switch keyMsg.String() {
	case "enter":
		if v.issues.IsEmpty() {
			return v, nil
		}
		if err := v.clauses.Select(v.ctx, v.issues.Cursor()); err != nil {
			v.err = err
			return v, nil
		}
		v.err = nil
	case "esc", "c":
		v.clauses.Clear(v.ctx)
		v.err = nil
	default:
		v.issues, _ = v.issues.Update(msg)
	}
	v.sync()
	return v, nil
}

// sync copies the active document's issues and the core selection into the list.
func (v *View) sync() *domain.Document {
	doc, err := v.documents.Active(v.ctx)
	if err != nil || doc == nil {
		v.issues.SetIssues(nil)
		return nil
	}
	v.issues.SetIssues(doc.ClauseIssues)
	if index, ok := v.clauses.Selected(v.ctx); ok {
		v.issues.SetSelected(index)
	} else {
		v.issues.SetSelected(-1)
	}
	return doc
}

// View renders the clause review view.
func (v *View) View() string {
	doc := v.sync()
	if doc == nil {
		return v.styles.Muted.Render("Load a contract to review its clauses.")
	}

	var b strings.Builder
	b.WriteString(v.styles.Title.Render("Clause Review: " + doc.Name))
	b.WriteString("\n\n")
	b.WriteString(v.issues.View())
	b.WriteString("\n\n")

	segments, err := v.clauses.Segments(v.ctx)
	if err != nil {
		b.WriteString(v.styles.Error.Render("Error: " + err.Error()))
		return b.String()
	}
	b.WriteString(v.renderText(segments))

	current, err := v.clauses.Current(v.ctx)
	if err != nil {
		b.WriteString("\n\n" + v.styles.Error.Render("Error: "+err.Error()))
		return b.String()
	}
	if current != nil {
		b.WriteString("\n\n")
		b.WriteString(v.renderDetails(current, hasHighlight(segments)))
	}
	if v.err != nil {
		b.WriteString("\n\n" + v.styles.Error.Render("Error: "+v.err.Error()))
	}
	return b.String()
}

// renderText renders the segments inside a bordered box, highlighting the match.
func (v *View) renderText(segments []domain.Segment) string {
	var text strings.Builder
	for _, seg := range segments {
		if seg.Highlighted() {
			text.WriteString(v.styles.Highlight.Render(seg.Text))
			continue
		}
		text.WriteString(seg.Text)
	}
	return v.styles.Border.
		Width(max(v.width-4, 20)).
		Padding(0, 1).
		Render(text.String())
}

func (v *View) renderDetails(issue *domain.ClauseIssue, found bool) string {
	lines := []string{
		v.styles.Subtitle.Render("Selected issue"),
		fmt.Sprintf("Clause:   %s", issue.Clause),
		fmt.Sprintf("Issue:    %s", issue.Issue),
		"Severity: " + v.styles.Severity(issue.Severity).Render(issue.Severity.String()),
	}
	if !found {
		lines = append(lines, v.styles.Muted.Render("The snippet does not appear in the text."))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func hasHighlight(segments []domain.Segment) bool {
	for _, s := range segments {
		if s.Highlighted() {
			return true
		}
	}
	return false
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.issues.SetDimensions(width, max(height/3, 4))
}

// Cursor returns the index under the issue cursor.
func (v *View) Cursor() int {
	return v.issues.Cursor()
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
