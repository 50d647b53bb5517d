package chat

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/contractai-cli/internal/app"
	"github.com/custodia-labs/contractai-cli/internal/core/domain"
)

func newTestView(t *testing.T) (*View, *app.Session) {
	t.Helper()
	s, err := app.NewSession(app.Options{Instant: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	v := NewView(nil, s.Documents, s.Conversation)
	v.SetDimensions(200, 40)
	return v, s
}

func loadContract(t *testing.T, s *app.Session, name string) string {
	t.Helper()
	id, err := s.Workspace.Load(context.Background(), domain.Ingested{Name: name, Text: "Payment due in 30 days."})
	require.NoError(t, err)
	return id
}

func typeText(v *View, text string) *View {
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return v
}

func TestView_NoDocument(t *testing.T) {
	v, _ := newTestView(t)

	assert.Contains(t, v.View(), "Load a contract to start a conversation.")
}

func TestView_EmptyLogPrompt(t *testing.T) {
	v, s := newTestView(t)
	loadContract(t, s, "lease.txt")

	out := v.View()
	assert.Contains(t, out, "Chat: lease.txt")
	assert.Contains(t, out, `Ask questions about "lease.txt"...`)
}

func TestUpdate_SendPostsMessage(t *testing.T) {
	v, s := newTestView(t)
	id := loadContract(t, s, "lease.txt")

	v = typeText(v, "When is payment due?")
	assert.Equal(t, "When is payment due?", v.Input())
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NoError(t, v.Err())
	assert.Empty(t, v.Input())
	assert.Equal(t, 1, s.Conversation.Pending())
	assert.Contains(t, v.View(), "Waiting for reply...")

	s.Flush()
	v.Refresh()

	log := s.Conversation.Log(context.Background(), id)
	require.Len(t, log, 2)
	out := v.View()
	assert.Contains(t, out, "When is payment due?")
	assert.Contains(t, out, "Assistant")
	assert.NotContains(t, out, "Waiting for reply...")
}

func TestUpdate_BlankMessageIgnored(t *testing.T) {
	v, s := newTestView(t)
	id := loadContract(t, s, "lease.txt")

	v = typeText(v, "   ")
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.NoError(t, v.Err())
	assert.Equal(t, "   ", v.Input())
	assert.Empty(t, s.Conversation.Log(context.Background(), id))
}

func TestUpdate_SendWithoutDocument(t *testing.T) {
	v, _ := newTestView(t)

	v = typeText(v, "hello")
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.ErrorIs(t, v.Err(), domain.ErrNoActiveDocument)
	assert.Equal(t, "hello", v.Input())
}

func TestRefresh_FollowsActiveDocument(t *testing.T) {
	v, s := newTestView(t)
	ctx := context.Background()
	first := loadContract(t, s, "lease.txt")

	require.NoError(t, s.Conversation.PostUserMessage(ctx, first, "About the lease?"))
	s.Flush()
	v.Refresh()
	assert.Contains(t, v.View(), "About the lease?")

	loadContract(t, s, "nda.txt")
	out := v.View()
	assert.Contains(t, out, "Chat: nda.txt")
	assert.NotContains(t, out, "About the lease?")
}

func TestUpdate_PageKeysScroll(t *testing.T) {
	v, s := newTestView(t)
	loadContract(t, s, "lease.txt")

	v = typeText(v, "q")
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyPgUp})
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	assert.Equal(t, "q", v.Input())
}
