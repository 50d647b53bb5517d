package domain

// Snapshot is a read-only picture of the session for presentation surfaces.
type Snapshot struct {
	// View is the current workspace view.
	View string `json:"view" yaml:"view"`

	// Reachable lists the views that can currently be navigated to.
	Reachable []string `json:"reachable" yaml:"reachable"`

	// Documents lists loaded documents in load order.
	Documents []DocumentSummary `json:"documents" yaml:"documents"`

	// Active is the active document, nil when nothing is loaded.
	Active *Document `json:"active,omitempty" yaml:"active,omitempty"`

	// SelectedIssue is the selected clause issue index, nil when none.
	SelectedIssue *int `json:"selected_issue,omitempty" yaml:"selected_issue,omitempty"`

	// Segments is the active document text partitioned for the selected issue.
	Segments []Segment `json:"segments,omitempty" yaml:"segments,omitempty"`

	// Log is the active document's conversation.
	Log []Exchange `json:"log" yaml:"log"`
}
