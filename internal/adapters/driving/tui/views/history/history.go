// Package history provides the session audit trail view.
package history

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/contractai-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/contractai-cli/internal/core/domain"
)

// Source supplies the recorded session events in publish order.
type Source interface {
	Events() []domain.Event
}

// View renders the session event feed, newest at the bottom.
type View struct {
	styles *styles.Styles
	source Source
	offset int
	width  int
	height int
}

// NewView creates a new history view. A nil source renders an empty feed.
func NewView(s *styles.Styles, source Source) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles: s,
		source: source,
		width:  80,
		height: 24,
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update scrolls back through older events.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k", "pgup":
			if v.offset < len(v.events())-1 {
				v.offset++
			}
		case "down", "j", "pgdown":
			if v.offset > 0 {
				v.offset--
			}
		}
	}
	return v, nil
}

// View renders the history view.
func (v *View) View() string {
	var b strings.Builder
	b.WriteString(v.styles.Title.Render("History"))
	b.WriteString("\n\n")

	events := v.events()
	if len(events) == 0 {
		b.WriteString(v.styles.Muted.Render("Nothing has happened yet. Loaded documents, questions and reviews appear here."))
		return b.String()
	}

	visible := max(v.height-8, 1)
	end := len(events) - min(v.offset, max(len(events)-visible, 0))
	start := max(end-visible, 0)

	for _, e := range events[start:end] {
		b.WriteString(v.renderEvent(e))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render(fmt.Sprintf("%d events", len(events))))
	return b.String()
}

func (v *View) renderEvent(e domain.Event) string {
	stamp := v.styles.Muted.Render(e.At.Format("15:04:05"))
	line := fmt.Sprintf("%s  %-18s", stamp, Label(e.Type))
	if e.DocumentName != "" {
		line += "  " + v.styles.Subtitle.Render(e.DocumentName)
	}
	if e.Detail != "" {
		line += "  " + v.styles.Normal.Render(e.Detail)
	}
	return line
}

func (v *View) events() []domain.Event {
	if v.source == nil {
		return nil
	}
	return v.source.Events()
}

// Label returns the human-readable name of an event type.
func Label(t domain.EventType) string {
	switch t {
	case domain.EventDocumentLoaded:
		return "Document loaded"
	case domain.EventDocumentActivated:
		return "Document activated"
	case domain.EventIssueSelected:
		return "Issue selected"
	case domain.EventIssueCleared:
		return "Selection cleared"
	case domain.EventMessageSent:
		return "Question asked"
	case domain.EventReplyReceived:
		return "Reply received"
	case domain.EventViewChanged:
		return "View changed"
	default:
		return string(t)
	}
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}

// Offset returns how many events are scrolled past.
func (v *View) Offset() int {
	return v.offset
}
