package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/contractai-cli/internal/core/domain"
	"github.com/custodia-labs/contractai-cli/internal/normalisers/markdown"
	"github.com/custodia-labs/contractai-cli/internal/normalisers/plaintext"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestIngestService_Supports(t *testing.T) {
	svc := NewIngestService(plaintext.New(), markdown.New())

	assert.True(t, svc.Supports("/x/lease.txt"))
	assert.True(t, svc.Supports("/x/LEASE.TXT"))
	assert.True(t, svc.Supports("msa.md"))
	assert.False(t, svc.Supports("scan.pdf"))
	assert.False(t, svc.Supports("noext"))
}

func TestIngestService_Extensions(t *testing.T) {
	svc := NewIngestService(plaintext.New(), markdown.New())

	assert.Equal(t, []string{".markdown", ".md", ".text", ".txt"}, svc.Extensions())
	assert.Empty(t, NewIngestService().Extensions())
}

func TestIngestService_FromFile(t *testing.T) {
	svc := NewIngestService(plaintext.New())
	path := writeFile(t, "lease.txt", "Payment due in 30 days.")

	in, err := svc.FromFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "lease.txt", in.Name)
	assert.Equal(t, "Payment due in 30 days.", in.Text)
	assert.Len(t, in.KeyDates, 2)
	assert.Len(t, in.ClauseIssues, 3)
}

func TestIngestService_FromFile_Unsupported(t *testing.T) {
	svc := NewIngestService(plaintext.New())
	path := writeFile(t, "scan.pdf", "%PDF")

	_, err := svc.FromFile(context.Background(), path)
	require.ErrorIs(t, err, domain.ErrUnsupportedType)
}

func TestIngestService_FromFile_Missing(t *testing.T) {
	svc := NewIngestService(plaintext.New())

	_, err := svc.FromFile(context.Background(), filepath.Join(t.TempDir(), "gone.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestIngestService_LoadsIntoWorkspace(t *testing.T) {
	f := newFixture(t)
	svc := NewIngestService(plaintext.New())
	path := writeFile(t, "nda.txt", "")

	in, err := svc.FromFile(context.Background(), path)
	require.NoError(t, err)
	id, err := f.workspace.Load(context.Background(), *in)
	require.NoError(t, err)

	doc, err := f.documents.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Sample contract text loaded from file...", doc.Text)
}
