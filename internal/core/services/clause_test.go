package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/contractai-cli/internal/core/domain"
)

func TestClauseReviewService_Select(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.load(t, contract("a.txt"))

	require.NoError(t, f.clauses.Select(ctx, 1))

	index, ok := f.clauses.Selected(ctx)
	assert.True(t, ok)
	assert.Equal(t, 1, index)

	issue, err := f.clauses.Current(ctx)
	require.NoError(t, err)
	require.NotNil(t, issue)
	assert.Equal(t, "Payment", issue.Clause)

	assert.Equal(t, domain.EventIssueSelected, f.events.last().Type)
	assert.Equal(t, "1: Payment", f.events.last().Detail)
}

func TestClauseReviewService_Select_OutOfRange(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.load(t, contract("a.txt"))
	require.NoError(t, f.clauses.Select(ctx, 0))

	for _, index := range []int{-1, 3, 100} {
		err := f.clauses.Select(ctx, index)
		require.ErrorIs(t, err, domain.ErrOutOfRange, "index %d", index)

		selected, ok := f.clauses.Selected(ctx)
		assert.True(t, ok)
		assert.Equal(t, 0, selected, "selection unchanged after index %d", index)
	}
}

func TestClauseReviewService_Select_NoActiveDocument(t *testing.T) {
	f := newFixture(t)

	err := f.clauses.Select(context.Background(), 0)
	require.ErrorIs(t, err, domain.ErrOutOfRange)
}

func TestClauseReviewService_Select_NoIssues(t *testing.T) {
	f := newFixture(t)
	f.load(t, domain.Ingested{Name: "clean.txt", Text: "Nothing to flag."})

	err := f.clauses.Select(context.Background(), 0)
	require.ErrorIs(t, err, domain.ErrOutOfRange)
}

func TestClauseReviewService_Clear(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.load(t, contract("a.txt"))

	f.clauses.Clear(ctx)
	assert.NotContains(t, f.events.types(), domain.EventIssueCleared)

	require.NoError(t, f.clauses.Select(ctx, 2))
	f.clauses.Clear(ctx)

	_, ok := f.clauses.Selected(ctx)
	assert.False(t, ok)
	issue, err := f.clauses.Current(ctx)
	require.NoError(t, err)
	assert.Nil(t, issue)
	assert.Equal(t, domain.EventIssueCleared, f.events.last().Type)
}

func TestClauseReviewService_Segments(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	none, err := f.clauses.Segments(ctx)
	require.NoError(t, err)
	assert.Empty(t, none)

	f.load(t, contract("a.txt"))
	text := contract("a.txt").Text

	segments, err := f.clauses.Segments(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Segment{plain(text)}, segments)

	require.NoError(t, f.clauses.Select(ctx, 1))
	segments, err = f.clauses.Segments(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Segment{
		plain("This contract may be terminated by either party. Payment due in "),
		hl("30 days"),
		plain("."),
	}, segments)

	require.NoError(t, f.clauses.Select(ctx, 2))
	segments, err = f.clauses.Segments(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Segment{plain(text)}, segments, "absent snippet is not an error")
}

func TestClauseReviewService_SelectionDoesNotCarryOver(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a := f.load(t, contract("a.txt"))
	f.load(t, contract("b.txt"))
	require.NoError(t, f.clauses.Select(ctx, 0))

	require.NoError(t, f.documents.SetActive(ctx, a))

	_, ok := f.clauses.Selected(ctx)
	assert.False(t, ok)
	segments, err := f.clauses.Segments(ctx)
	require.NoError(t, err)
	for _, s := range segments {
		assert.False(t, s.Highlighted(), "no carried highlight")
	}
}

func TestClauseReviewService_ReadsDoNotMixDocuments(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a := f.load(t, contract("a.txt"))
	b := f.load(t, domain.Ingested{Name: "b.txt", Text: "Rent is due monthly."})
	require.NoError(t, f.documents.SetActive(ctx, a))
	require.NoError(t, f.clauses.Select(ctx, 1))

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 200; i++ {
			_ = f.documents.SetActive(ctx, b)
			_ = f.documents.SetActive(ctx, a)
			_ = f.clauses.Select(ctx, 1)
		}
	}()

	for i := 0; i < 200; i++ {
		if issue, err := f.clauses.Current(ctx); assert.NoError(t, err) && issue != nil {
			assert.Equal(t, "Payment", issue.Clause)
		}

		snap, err := f.workspace.Snapshot(ctx)
		if !assert.NoError(t, err) || snap.Active == nil {
			continue
		}
		if snap.SelectedIssue != nil {
			assert.Equal(t, a, snap.Active.ID, "selection paired with its own document")
		}
		if snap.Active.ID == b {
			assert.Nil(t, snap.SelectedIssue)
			assert.Equal(t, []domain.Segment{plain("Rent is due monthly.")}, snap.Segments)
		}
	}
	<-done
}
