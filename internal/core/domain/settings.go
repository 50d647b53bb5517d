package domain

import (
	"fmt"
	"strings"
	"time"
)

// WorkspaceSettings holds the configurable workspace policies.
type WorkspaceSettings struct {
	// ReplyDelay is how long the counterpart takes to answer.
	ReplyDelay time.Duration

	// ReplyTemplate is the counterpart reply; {{name}} becomes the document name.
	ReplyTemplate string

	// OpenChatOnLoad switches the workspace to the chat view after every load.
	OpenChatOnLoad bool

	// HighlightColor is the background used for highlighted segments.
	HighlightColor string
}

// DefaultWorkspaceSettings returns settings with sensible defaults.
func DefaultWorkspaceSettings() WorkspaceSettings {
	return WorkspaceSettings{
		ReplyDelay:     1000 * time.Millisecond,
		ReplyTemplate:  DefaultReplyTemplate,
		OpenChatOnLoad: true,
		HighlightColor: "#FDE047",
	}
}

// Validate checks the settings are usable.
func (s *WorkspaceSettings) Validate() error {
	if s.ReplyDelay < 0 {
		return fmt.Errorf("%w: reply delay must not be negative", ErrInvalidInput)
	}
	if strings.TrimSpace(s.ReplyTemplate) == "" {
		return fmt.Errorf("%w: reply template must not be blank", ErrInvalidInput)
	}
	return nil
}
