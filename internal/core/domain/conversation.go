package domain

import (
	"strings"
	"time"
)

// Role identifies who produced an exchange.
type Role string

const (
	// RoleUser is a message typed by the reviewer.
	RoleUser Role = "user"

	// RoleAssistant is the counterpart reply.
	RoleAssistant Role = "assistant"
)

// Exchange is a single turn in a document's conversation log.
type Exchange struct {
	Role    Role      `json:"role" yaml:"role"`
	Content string    `json:"content" yaml:"content"`
	At      time.Time `json:"at" yaml:"at"`
}

// DefaultReplyTemplate is the built-in counterpart reply.
// {{name}} is replaced with the document name.
const DefaultReplyTemplate = `AI response about "{{name}}": Based on the contract, ` +
	`the termination notice period is 30 days. ` +
	`The auto-renewal clause requires written notice 60 days before expiration.`

// RenderReply fills a reply template for the named document.
func RenderReply(template, name string) string {
	if template == "" {
		template = DefaultReplyTemplate
	}
	return strings.ReplaceAll(template, "{{name}}", name)
}
