// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/contractai-cli/internal/core/domain"
)

// NavigateTo asks the app to move to a view through the navigator.
type NavigateTo struct {
	View domain.View
}

// DocumentLoaded carries the outcome of loading a contract file.
type DocumentLoaded struct {
	// Path is the file that was loaded.
	Path string
	// ID is the new document ID, empty on failure.
	ID string
	// Name is the document's display name.
	Name string
	Err  error
}

// InboxFile signals that a watched directory has a file ready to load.
type InboxFile struct {
	Path string
}

// InboxClosed signals the inbox watcher stopped.
type InboxClosed struct{}

// SessionEvent carries one entry of the session event feed.
type SessionEvent struct {
	Event domain.Event
}

// EventsClosed signals the event feed ended.
type EventsClosed struct{}

// KeyDateExported carries the outcome of writing a key date calendar file.
type KeyDateExported struct {
	Path string
	Err  error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
