package domain

import "time"

// EventType identifies a session event.
type EventType string

// Session events emitted for the audit trail.
const (
	EventDocumentLoaded    EventType = "document_loaded"
	EventDocumentActivated EventType = "document_activated"
	EventIssueSelected     EventType = "issue_selected"
	EventIssueCleared      EventType = "issue_cleared"
	EventMessageSent       EventType = "message_sent"
	EventReplyReceived     EventType = "reply_received"
	EventViewChanged       EventType = "view_changed"
)

// Event is a single entry in the session event feed.
type Event struct {
	Type         EventType `json:"type" yaml:"type"`
	DocumentID   string    `json:"document_id,omitempty" yaml:"document_id,omitempty"`
	DocumentName string    `json:"document_name,omitempty" yaml:"document_name,omitempty"`
	Detail       string    `json:"detail,omitempty" yaml:"detail,omitempty"`
	At           time.Time `json:"at" yaml:"at"`
}
