// Package input provides text input components for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/contractai-cli/internal/adapters/driving/tui/styles"
)

// PromptInput wraps a bubbles textinput with a label.
type PromptInput struct {
	textinput textinput.Model
	styles    *styles.Styles
	label     string
	width     int
}

// NewPromptInput creates a focused input labelled label.
func NewPromptInput(s *styles.Styles, label, placeholder string) *PromptInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()
	ti.CharLimit = 1024
	ti.Width = 50

	return &PromptInput{
		textinput: ti,
		styles:    s,
		label:     label,
		width:     50,
	}
}

// Init initialises the input.
func (p *PromptInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages.
func (p *PromptInput) Update(msg tea.Msg) (*PromptInput, tea.Cmd) {
	var cmd tea.Cmd
	p.textinput, cmd = p.textinput.Update(msg)
	return p, cmd
}

// View renders the label beside the input.
func (p *PromptInput) View() string {
	label := p.styles.Title.Render(p.label + ": ")
	field := p.styles.InputField.Render(p.textinput.View())
	//nolint:misspell // lipgloss.Center is the correct constant from the library
	return lipgloss.JoinHorizontal(lipgloss.Center, label, field)
}

// Value returns the current input value.
func (p *PromptInput) Value() string {
	return p.textinput.Value()
}

// SetValue sets the input value.
func (p *PromptInput) SetValue(value string) {
	p.textinput.SetValue(value)
}

// Focus sets focus on the input.
func (p *PromptInput) Focus() tea.Cmd {
	return p.textinput.Focus()
}

// Blur removes focus from the input.
func (p *PromptInput) Blur() {
	p.textinput.Blur()
}

// Focused returns whether the input is focused.
func (p *PromptInput) Focused() bool {
	return p.textinput.Focused()
}

// SetWidth sets the width available to label and field.
func (p *PromptInput) SetWidth(width int) {
	p.width = width
	inputWidth := width - lipgloss.Width(p.label) - 8
	if inputWidth < 20 {
		inputWidth = 20
	}
	p.textinput.Width = inputWidth
}

// Width returns the current width.
func (p *PromptInput) Width() int {
	return p.width
}

// Reset clears the input.
func (p *PromptInput) Reset() {
	p.textinput.Reset()
}
