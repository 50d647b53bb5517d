package messages

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/contractai-cli/internal/core/domain"
)

func TestMessages_AreTeaMessages(t *testing.T) {
	msgs := []tea.Msg{
		NavigateTo{View: domain.ViewChat},
		DocumentLoaded{Path: "lease.txt", ID: "doc-1", Name: "lease.txt"},
		InboxFile{Path: "/inbox/msa.txt"},
		InboxClosed{},
		SessionEvent{Event: domain.Event{Type: domain.EventDocumentLoaded}},
		EventsClosed{},
		KeyDateExported{Path: "lease-2024-12-31.ics"},
		ErrorOccurred{Err: errors.New("boom")},
		Quit{},
	}

	for _, msg := range msgs {
		assert.NotNil(t, msg)
	}
}

func TestDocumentLoaded_Failure(t *testing.T) {
	msg := DocumentLoaded{Path: "scan.pdf", Err: domain.ErrUnsupportedType}

	assert.Empty(t, msg.ID)
	assert.ErrorIs(t, msg.Err, domain.ErrUnsupportedType)
}
