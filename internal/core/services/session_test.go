package services

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSession_Initial(t *testing.T) {
	s := NewSession()

	id, ok := s.ActiveID()
	assert.False(t, ok)
	assert.Empty(t, id)
	assert.False(t, s.HasActive())

	_, selected := s.Selection()
	assert.False(t, selected)
}

func TestSession_SelectRequiresActiveDocument(t *testing.T) {
	s := NewSession()
	assert.False(t, s.selectIssue("", 0))
	assert.False(t, s.selectIssue("doc-1", 0))

	s.activate("doc-1")
	assert.False(t, s.selectIssue("doc-2", 0), "stale document")
	assert.True(t, s.selectIssue("doc-1", 2))

	index, ok := s.Selection()
	assert.True(t, ok)
	assert.Equal(t, 2, index)
}

func TestSession_ActivateClearsSelection(t *testing.T) {
	s := NewSession()
	s.activate("doc-1")
	s.selectIssue("doc-1", 0)

	s.activate("doc-2")
	_, ok := s.Selection()
	assert.False(t, ok)
}

func TestSession_ClearSelection(t *testing.T) {
	s := NewSession()
	assert.False(t, s.clearSelection())

	s.activate("doc-1")
	s.selectIssue("doc-1", 0)
	assert.True(t, s.clearSelection())
	assert.False(t, s.clearSelection())
}

func TestSession_ConcurrentAccess(t *testing.T) {
	s := NewSession()
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(3)
		go func() { defer wg.Done(); s.activate("doc") }()
		go func(n int) { defer wg.Done(); s.selectIssue("doc", n) }(i)
		go func() { defer wg.Done(); _, _ = s.Selection() }()
	}
	wg.Wait()

	assert.True(t, s.HasActive())
}

func TestSession_StateIsConsistent(t *testing.T) {
	s := NewSession()
	s.activate("doc-a")
	s.selectIssue("doc-a", 1)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			s.activate("doc-b")
			s.activate("doc-a")
			s.selectIssue("doc-a", 1)
		}
	}()

	for i := 0; i < 500; i++ {
		id, index, selected := s.state()
		if selected {
			assert.Equal(t, "doc-a", id, "selection belongs to doc-a only")
			assert.Equal(t, 1, index)
		}
	}
	wg.Wait()
}
