// Package chat provides the per-document conversation view.
package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/contractai-cli/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/contractai-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/contractai-cli/internal/core/domain"
	"github.com/custodia-labs/contractai-cli/internal/core/ports/driving"
)

// reservedLines is the chrome around the log: header, input, hints.
const reservedLines = 10

// View is the chat view: the active document's log above a message input.
type View struct {
	styles       *styles.Styles
	input        *input.PromptInput
	viewport     viewport.Model
	documents    driving.DocumentService
	conversation driving.ConversationService
	ctx          context.Context

	documentID string
	entries    int
	err        error
	width      int
	height     int
}

// NewView creates a new chat view.
func NewView(
	s *styles.Styles,
	documents driving.DocumentService,
	conversation driving.ConversationService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:       s,
		input:        input.NewPromptInput(s, "Ask", "Type a question and press enter"),
		viewport:     viewport.New(80, 24-reservedLines),
		documents:    documents,
		conversation: conversation,
		ctx:          context.Background(),
		width:        80,
		height:       24,
	}
}

// SetContext sets the context used for service calls.
func (v *View) SetContext(ctx context.Context) {
	v.ctx = ctx
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Update handles messages for the chat view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "enter":
			v.send()
			return v, nil
		case "pgup", "pgdown":
			var cmd tea.Cmd
			v.viewport, cmd = v.viewport.Update(msg)
			return v, cmd
		}
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// send posts the typed message to the active document.
// Blank input is ignored and left in place.
func (v *View) send() {
	doc, err := v.documents.Active(v.ctx)
	if err != nil {
		v.err = err
		return
	}
	if doc == nil {
		v.err = domain.ErrNoActiveDocument
		return
	}

	err = v.conversation.PostUserMessage(v.ctx, doc.ID, v.input.Value())
	switch {
	case errors.Is(err, domain.ErrEmptyMessage):
		return
	case err != nil:
		v.err = err
		return
	}
	v.err = nil
	v.input.Reset()
	v.Refresh()
}

// Refresh reloads the log of the active document.
// The log scrolls to the bottom when entries were added or the document changed.
func (v *View) Refresh() {
	doc, err := v.documents.Active(v.ctx)
	if err != nil || doc == nil {
		v.documentID = ""
		v.entries = 0
		v.viewport.SetContent("")
		return
	}

	log := v.conversation.Log(v.ctx, doc.ID)
	v.viewport.SetContent(v.renderLog(log))
	if doc.ID != v.documentID || len(log) != v.entries {
		v.viewport.GotoBottom()
	}
	v.documentID = doc.ID
	v.entries = len(log)
}

func (v *View) renderLog(log []domain.Exchange) string {
	wrap := lipgloss.NewStyle().Width(v.width - 4)
	blocks := make([]string, 0, len(log))
	for _, ex := range log {
		var speaker string
		if ex.Role == domain.RoleUser {
			speaker = v.styles.Subtitle.Render("You")
		} else {
			speaker = v.styles.Title.Render("Assistant")
		}
		stamp := v.styles.Muted.Render(ex.At.Format("15:04:05"))
		blocks = append(blocks, fmt.Sprintf("%s %s\n%s", speaker, stamp, wrap.Render(ex.Content)))
	}
	return strings.Join(blocks, "\n\n")
}

// View renders the chat view.
func (v *View) View() string {
	doc, err := v.documents.Active(v.ctx)
	if err != nil {
		return v.styles.Error.Render("Error: " + err.Error())
	}
	if doc == nil {
		return v.styles.Muted.Render("Load a contract to start a conversation.")
	}
	if doc.ID != v.documentID {
		v.Refresh()
	}

	var b strings.Builder
	b.WriteString(v.styles.Title.Render("Chat: " + doc.Name))
	b.WriteString("\n\n")

	if v.entries == 0 {
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf("Ask questions about %q...", doc.Name)))
	} else {
		b.WriteString(v.viewport.View())
	}
	b.WriteString("\n\n")

	if v.conversation.Pending() > 0 {
		b.WriteString(v.styles.Muted.Render("Waiting for reply..."))
		b.WriteString("\n")
	}
	if v.err != nil {
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
		b.WriteString("\n")
	}
	b.WriteString(v.input.View())
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.input.SetWidth(width)
	v.viewport.Width = width
	v.viewport.Height = max(height-reservedLines, 3)
	v.Refresh()
}

// Focus focuses the message input.
func (v *View) Focus() tea.Cmd {
	return v.input.Focus()
}

// Input returns the current draft.
func (v *View) Input() string {
	return v.input.Value()
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
