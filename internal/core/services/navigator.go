package services

import (
	"context"
	"sync"

	"github.com/custodia-labs/contractai-cli/internal/core/domain"
	"github.com/custodia-labs/contractai-cli/internal/core/ports/driven"
	"github.com/custodia-labs/contractai-cli/internal/core/ports/driving"
)

// Ensure Navigator implements the interface.
var _ driving.Navigator = (*Navigator)(nil)

// Navigator tracks the current workspace view.
// Upload is always reachable; every other view needs an active document.
type Navigator struct {
	session *Session
	events  emitter

	mu      sync.Mutex
	current domain.View
}

// NewNavigator creates a navigator starting on the upload view.
func NewNavigator(session *Session) *Navigator {
	return &Navigator{
		session: session,
		current: domain.ViewUpload,
	}
}

// WithEvents sets the publisher that receives view changes.
func (n *Navigator) WithEvents(publisher driven.EventPublisher) *Navigator {
	n.events = emitter{publisher: publisher}
	return n
}

// Current returns the current view.
func (n *Navigator) Current() domain.View {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

// Reachable reports whether v can be navigated to now.
func (n *Navigator) Reachable(v domain.View) bool {
	if !v.IsValid() {
		return false
	}
	return !v.RequiresDocument() || n.session.HasActive()
}

// Navigate moves to v if reachable. Unreachable views leave the current view unchanged.
func (n *Navigator) Navigate(v domain.View) bool {
	if !n.Reachable(v) {
		return false
	}
	n.mu.Lock()
	changed := n.current != v
	n.current = v
	n.mu.Unlock()

	if changed {
		id, _ := n.session.ActiveID()
		n.events.emit(context.Background(), domain.Event{
			Type:       domain.EventViewChanged,
			DocumentID: id,
			Detail:     v.String(),
		})
	}
	return true
}

// Views returns every view with its reachability, in tab order.
func (n *Navigator) Views() []ViewState {
	views := domain.AllViews()
	states := make([]ViewState, len(views))
	for i, v := range views {
		states[i] = ViewState{View: v, Reachable: n.Reachable(v), Current: v == n.Current()}
	}
	return states
}

// ViewState describes one tab of the workspace.
type ViewState struct {
	View      domain.View
	Reachable bool
	Current   bool
}
