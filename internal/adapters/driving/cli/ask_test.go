package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/contractai-cli/internal/core/domain"
)

func TestAsk_PrintsExchange(t *testing.T) {
	setupTestServices(t)
	path := writeContract(t, "", "lease.txt", leaseText)

	out, err := execute(t, "ask", path, "What is the notice period?")
	require.NoError(t, err)

	assert.Contains(t, out, "You: What is the notice period?")
	assert.Contains(t, out, `Assistant: AI response about "lease.txt": Based on the contract`)
}

func TestAsk_CustomTemplate(t *testing.T) {
	settings := setupTestServices(t)
	require.NoError(t, settings.Set("conversation.reply_template", "Reviewed {{name}}."))
	path := writeContract(t, "", "lease.txt", leaseText)

	out, err := execute(t, "ask", path, "Anything?")
	require.NoError(t, err)
	assert.Contains(t, out, "Assistant: Reviewed lease.txt.")
}

func TestAsk_Wait(t *testing.T) {
	settings := setupTestServices(t)
	require.NoError(t, settings.Set("conversation.reply_delay_ms", "10"))
	path := writeContract(t, "", "lease.txt", leaseText)

	out, err := execute(t, "ask", path, "Renewal?", "--wait")
	require.NoError(t, err)
	assert.Contains(t, out, "You: Renewal?")
	assert.Contains(t, out, "Assistant: AI response about")
}

func TestAsk_Errors(t *testing.T) {
	setupTestServices(t)
	path := writeContract(t, "", "lease.txt", leaseText)

	_, err := execute(t, "ask", path, "   ")
	assert.ErrorIs(t, err, domain.ErrEmptyMessage)

	_, err = execute(t, "ask", writeContract(t, "", "scan.pdf", "%PDF"), "hi")
	assert.ErrorIs(t, err, domain.ErrUnsupportedType)

	_, err = execute(t, "ask", path)
	assert.Error(t, err)
}

func TestSpeaker(t *testing.T) {
	assert.Equal(t, "You", speaker(domain.RoleUser))
	assert.Equal(t, "Assistant", speaker(domain.RoleAssistant))
}
