package services

import "sync"

// noSelection marks that no clause issue is selected.
const noSelection = -1

// Session holds the mutable state of one workspace instance:
// which document is active and which of its clause issues is selected.
// Documents themselves live in the document store.
type Session struct {
	mu       sync.RWMutex
	activeID string
	selected int
}

// NewSession creates an empty session with nothing active.
func NewSession() *Session {
	return &Session{selected: noSelection}
}

// ActiveID returns the active document ID and whether one is set.
func (s *Session) ActiveID() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeID, s.activeID != ""
}

// HasActive reports whether a document is active.
func (s *Session) HasActive() bool {
	_, ok := s.ActiveID()
	return ok
}

// Selection returns the selected clause issue index and whether one is set.
func (s *Session) Selection() (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selected, s.selected != noSelection
}

// state returns the active ID and the selection as one consistent pair.
func (s *Session) state() (activeID string, selected int, hasSelection bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeID, s.selected, s.selected != noSelection
}

// activate makes id the active document. Selection never carries over,
// even when id is already active.
func (s *Session) activate(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeID = id
	s.selected = noSelection
}

// selectIssue sets the selection if documentID is still the active document.
func (s *Session) selectIssue(documentID string, index int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.activeID == "" || s.activeID != documentID {
		return false
	}
	s.selected = index
	return true
}

// clearSelection removes the selection. Returns whether one was set.
func (s *Session) clearSelection() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	had := s.selected != noSelection
	s.selected = noSelection
	return had
}
