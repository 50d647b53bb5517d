package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/contractai-cli/internal/core/domain"
)

func TestDocumentService_Load(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	id, err := f.documents.Load(ctx, contract("lease.txt"))
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	active, err := f.documents.Active(ctx)
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, id, active.ID)
	assert.Equal(t, "lease.txt", active.Name)
	assert.Len(t, active.ClauseIssues, 3)

	_, selected := f.session.Selection()
	assert.False(t, selected)
	assert.Equal(t, []domain.EventType{domain.EventDocumentLoaded}, f.events.types())
	assert.Equal(t, id, f.events.last().DocumentID)
}

func TestDocumentService_Load_EmptyMetadata(t *testing.T) {
	f := newFixture(t)

	id, err := f.documents.Load(context.Background(), domain.Ingested{Name: "bare.txt", Text: "text"})
	require.NoError(t, err)

	doc, err := f.documents.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Empty(t, doc.KeyDates)
	assert.Empty(t, doc.ClauseIssues)
}

func TestDocumentService_Load_InvalidSeverity(t *testing.T) {
	f := newFixture(t)
	in := contract("bad.txt")
	in.ClauseIssues[1].Severity = "critical"

	id, err := f.documents.Load(context.Background(), in)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	require.ErrorIs(t, err, domain.ErrUnknownSeverity)
	assert.Empty(t, id)

	assert.Zero(t, f.docs.Count())
	assert.False(t, f.session.HasActive())
	assert.Empty(t, f.events.types())
}

func TestDocumentService_IDsAreDistinct(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		id := f.load(t, contract("same-name.txt"))
		assert.False(t, seen[id], "id %s reused", id)
		seen[id] = true

		doc, err := f.documents.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, id, doc.ID)
	}
}

func TestDocumentService_LoadClearsSelection(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.load(t, contract("a.txt"))
	require.NoError(t, f.clauses.Select(ctx, 1))

	b := f.load(t, contract("b.txt"))
	activeID, _ := f.session.ActiveID()
	assert.Equal(t, b, activeID)
	_, selected := f.session.Selection()
	assert.False(t, selected)
}

func TestDocumentService_SetActive(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a := f.load(t, contract("a.txt"))
	f.load(t, contract("b.txt"))

	require.NoError(t, f.documents.SetActive(ctx, a))
	active, err := f.documents.Active(ctx)
	require.NoError(t, err)
	assert.Equal(t, a, active.ID)
	assert.Equal(t, domain.EventDocumentActivated, f.events.last().Type)
}

func TestDocumentService_SetActive_Unknown(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a := f.load(t, contract("a.txt"))
	require.NoError(t, f.clauses.Select(ctx, 0))
	before := len(f.events.types())

	err := f.documents.SetActive(ctx, "no-such-id")
	require.ErrorIs(t, err, domain.ErrNotFound)

	activeID, _ := f.session.ActiveID()
	assert.Equal(t, a, activeID)
	index, selected := f.session.Selection()
	assert.True(t, selected)
	assert.Equal(t, 0, index)
	assert.Len(t, f.events.types(), before)
}

func TestDocumentService_SetActive_SameDocumentClearsSelection(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a := f.load(t, contract("a.txt"))
	require.NoError(t, f.clauses.Select(ctx, 1))
	require.NoError(t, f.documents.SetActive(ctx, a))

	_, selected := f.session.Selection()
	assert.False(t, selected)
}

func TestDocumentService_Active_Empty(t *testing.T) {
	f := newFixture(t)

	active, err := f.documents.Active(context.Background())
	require.NoError(t, err)
	assert.Nil(t, active)
}

func TestDocumentService_List(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	empty, err := f.documents.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	a := f.load(t, contract("a.txt"))
	b := f.load(t, contract("b.txt"))
	c := f.load(t, contract("c.txt"))

	list, err := f.documents.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.DocumentSummary{
		{ID: a, Name: "a.txt"},
		{ID: b, Name: "b.txt"},
		{ID: c, Name: "c.txt"},
	}, list)
}

func TestDocumentService_Load_StampsTime(t *testing.T) {
	f := newFixture(t)
	f.documents.now = func() time.Time { return testEpoch }

	id := f.load(t, contract("a.txt"))
	doc, err := f.documents.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, testEpoch, doc.LoadedAt)
}

func TestDocumentService_PublishFailureIsNotAnError(t *testing.T) {
	f := newFixture(t)
	f.events.err = assert.AnError

	_, err := f.documents.Load(context.Background(), contract("a.txt"))
	assert.NoError(t, err)
}
