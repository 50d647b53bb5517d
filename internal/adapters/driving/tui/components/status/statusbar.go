// Package status provides status bar components for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/contractai-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/contractai-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/contractai-cli/internal/core/domain"
)

// State represents the current application state for display.
type State string

const (
	StateReady   State = "ready"
	StateLoading State = "loading"
	StateWaiting State = "waiting"
	StateError   State = "error"
)

// Bar displays the active document, transient messages and keybinding hints.
type Bar struct {
	styles   *styles.Styles
	keymap   *keymap.KeyMap
	state    State
	message  string
	document string
	view     domain.View
	width    int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		state:  StateReady,
		view:   domain.ViewUpload,
		width:  80,
	}
}

// Init initialises the status bar.
func (s *Bar) Init() tea.Cmd {
	return nil
}

// Update handles status bar messages.
func (s *Bar) Update(_ tea.Msg) (*Bar, tea.Cmd) {
	// Bar is passive, updated via Set methods
	return s, nil
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	padding := s.width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

func (s *Bar) renderLeft() string {
	switch s.state {
	case StateLoading:
		return s.styles.Muted.Render("Loading...")
	case StateWaiting:
		return s.styles.Muted.Render("Waiting for reply...")
	case StateError:
		if s.message != "" {
			return s.styles.Error.Render(fmt.Sprintf("Error: %s", s.message))
		}
		return s.styles.Error.Render("Error")
	case StateReady:
	}
	if s.message != "" {
		return s.styles.Normal.Render(s.message)
	}
	if s.document != "" {
		return s.styles.Normal.Render("Active: " + s.document)
	}
	return s.styles.Muted.Render("No document loaded")
}

func (s *Bar) renderRight() string {
	bindings := append(s.keymap.ViewHelp(s.view), s.keymap.ShortHelp()...)

	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		hints = append(hints, hint(b))
	}
	return s.styles.Muted.Render(strings.Join(hints, " | "))
}

func hint(b key.Binding) string {
	h := b.Help()
	return fmt.Sprintf("%s: %s", h.Key, h.Desc)
}

// SetState sets the current state.
func (s *Bar) SetState(state State) {
	s.state = state
}

// State returns the current state.
func (s *Bar) State() State {
	return s.state
}

// SetMessage sets a transient message.
func (s *Bar) SetMessage(message string) {
	s.message = message
}

// Message returns the current message.
func (s *Bar) Message() string {
	return s.message
}

// SetError shows err until the next message.
func (s *Bar) SetError(err error) {
	s.state = StateError
	s.message = err.Error()
}

// SetDocument sets the active document name.
func (s *Bar) SetDocument(name string) {
	s.document = name
}

// SetView selects which view's hints are shown.
func (s *Bar) SetView(v domain.View) {
	s.view = v
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}

// Clear resets state and message. The active document is kept.
func (s *Bar) Clear() {
	s.state = StateReady
	s.message = ""
}
