// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/contractai-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/contractai-cli/internal/core/domain"
)

// IssueList displays clause issues with a cursor and the selected issue marked.
// The cursor is where the user is; the selection is what the core has highlighted.
type IssueList struct {
	issues   []domain.ClauseIssue
	cursor   int
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewIssueList creates a new issue list component.
func NewIssueList(s *styles.Styles) *IssueList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &IssueList{
		selected: -1,
		styles:   s,
		width:    80,
		height:   10,
	}
}

// Init initialises the issue list.
func (l *IssueList) Init() tea.Cmd {
	return nil
}

// Update handles cursor movement.
func (l *IssueList) Update(msg tea.Msg) (*IssueList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			l.MoveUp()
		case "down", "j":
			l.MoveDown()
		}
	}
	return l, nil
}

// View renders the issue list.
func (l *IssueList) View() string {
	if len(l.issues) == 0 {
		return l.styles.Muted.Render("No clause issues found for this contract.")
	}

	lines := make([]string, 0, len(l.issues)+2)
	lines = append(lines, l.styles.Subtitle.Render(fmt.Sprintf("Issues (%d)", len(l.issues))), "")

	visible := l.height - 2
	if visible < 1 {
		visible = 1
	}
	start := 0
	if l.cursor >= visible {
		start = l.cursor - visible + 1
	}
	end := start + visible
	if end > len(l.issues) {
		end = len(l.issues)
	}

	for i := start; i < end; i++ {
		lines = append(lines, l.renderIssue(i, &l.issues[i]))
	}
	return strings.Join(lines, "\n")
}

func (l *IssueList) renderIssue(index int, issue *domain.ClauseIssue) string {
	indicator := "  "
	if index == l.cursor {
		indicator = "> "
	}
	mark := " "
	if index == l.selected {
		mark = "*"
	}

	severity := l.styles.Severity(issue.Severity).Render(fmt.Sprintf("%-6s", issue.Severity))
	label := fmt.Sprintf("%s: %s", issue.Clause, issue.Issue)

	maxLen := l.width - 14
	if maxLen < 10 {
		maxLen = 10
	}
	if len(label) > maxLen {
		label = label[:maxLen-3] + "..."
	}

	if index == l.cursor {
		label = l.styles.Selected.Render(label)
	} else {
		label = l.styles.Normal.Render(label)
	}
	return indicator + mark + " " + severity + " " + label
}

// SetIssues replaces the issues. The cursor resets when the issues change.
func (l *IssueList) SetIssues(issues []domain.ClauseIssue) {
	if !sameIssues(l.issues, issues) {
		l.cursor = 0
	}
	l.issues = issues
	if l.selected >= len(issues) {
		l.selected = -1
	}
}

// Issues returns the current issues.
func (l *IssueList) Issues() []domain.ClauseIssue {
	return l.issues
}

// Cursor returns the index under the cursor.
func (l *IssueList) Cursor() int {
	return l.cursor
}

// SetSelected marks the selected issue; -1 marks none.
func (l *IssueList) SetSelected(index int) {
	if index < -1 || index >= len(l.issues) {
		index = -1
	}
	l.selected = index
}

// Selected returns the marked issue index, or -1.
func (l *IssueList) Selected() int {
	return l.selected
}

// MoveUp moves the cursor up.
func (l *IssueList) MoveUp() {
	if l.cursor > 0 {
		l.cursor--
	}
}

// MoveDown moves the cursor down.
func (l *IssueList) MoveDown() {
	if l.cursor < len(l.issues)-1 {
		l.cursor++
	}
}

// SetDimensions sets the component dimensions.
func (l *IssueList) SetDimensions(width, height int) {
	l.width = width
	l.height = height
}

// Count returns the number of issues.
func (l *IssueList) Count() int {
	return len(l.issues)
}

// IsEmpty returns whether the list is empty.
func (l *IssueList) IsEmpty() bool {
	return len(l.issues) == 0
}

func sameIssues(a, b []domain.ClauseIssue) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
