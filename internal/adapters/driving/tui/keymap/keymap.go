// Package keymap defines keybindings for the TUI.
package keymap

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"

	"github.com/custodia-labs/contractai-cli/internal/core/domain"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// NextView moves to the next reachable view.
	NextView key.Binding

	// PrevView moves to the previous reachable view.
	PrevView key.Binding

	// Jump holds one binding per view, in tab order.
	// Plain digits only apply in views without a text input.
	Jump []key.Binding

	// Up navigates up in a list.
	Up key.Binding

	// Down navigates down in a list.
	Down key.Binding

	// Select confirms a selection.
	Select key.Binding

	// Clear removes the clause issue selection.
	Clear key.Binding

	// Export writes the selected key date to a calendar file.
	Export key.Binding

	// ScrollUp and ScrollDown page through long content.
	ScrollUp   key.Binding
	ScrollDown key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	km := &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		NextView: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next view"),
		),
		PrevView: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev view"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc", "c"),
			key.WithHelp("esc/c", "clear"),
		),
		Export: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "export .ics"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "scroll up"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdown", "scroll down"),
		),
	}
	for i, v := range domain.AllViews() {
		n := fmt.Sprint(i + 1)
		km.Jump = append(km.Jump, key.NewBinding(
			key.WithKeys("alt+"+n, n),
			key.WithHelp(n, v.Title()),
		))
	}
	return km
}

// ShortHelp returns the bindings shown in the status bar.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextView, k.PrevView, k.Quit}
}

// ViewHelp returns the bindings specific to a view.
func (k *KeyMap) ViewHelp(v domain.View) []key.Binding {
	switch v {
	case domain.ViewUpload:
		return []key.Binding{k.Up, k.Down, k.Select}
	case domain.ViewChat:
		return []key.Binding{k.Select, k.ScrollUp, k.ScrollDown}
	case domain.ViewKeyDates:
		return []key.Binding{k.Up, k.Down, k.Export}
	case domain.ViewClauseReview:
		return []key.Binding{k.Up, k.Down, k.Select, k.Clear}
	default:
		return []key.Binding{k.ScrollUp, k.ScrollDown}
	}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
