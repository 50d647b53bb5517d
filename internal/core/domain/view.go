package domain

import "fmt"

// View identifies one of the workspace views.
type View int

const (
	// ViewUpload loads documents. It is always reachable.
	ViewUpload View = iota
	// ViewChat is the per-document conversation.
	ViewChat
	// ViewKeyDates lists the active document's key dates.
	ViewKeyDates
	// ViewClauseReview lists clause issues beside the highlighted text.
	ViewClauseReview
	// ViewHistory is the session audit trail.
	ViewHistory
)

// AllViews returns the workspace views in tab order.
func AllViews() []View {
	return []View{ViewUpload, ViewChat, ViewKeyDates, ViewClauseReview, ViewHistory}
}

// String returns the string representation of the view.
func (v View) String() string {
	switch v {
	case ViewUpload:
		return "upload"
	case ViewChat:
		return "chat"
	case ViewKeyDates:
		return "key_dates"
	case ViewClauseReview:
		return "clause_review"
	case ViewHistory:
		return "history"
	default:
		return "unknown"
	}
}

// Title returns the label shown on the view's tab.
func (v View) Title() string {
	switch v {
	case ViewUpload:
		return "Upload"
	case ViewChat:
		return "Chat"
	case ViewKeyDates:
		return "Key Dates"
	case ViewClauseReview:
		return "Clause Review"
	case ViewHistory:
		return "History"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the view is one of the workspace views.
func (v View) IsValid() bool {
	return v >= ViewUpload && v <= ViewHistory
}

// RequiresDocument reports whether the view is only reachable with an active document.
func (v View) RequiresDocument() bool {
	return v != ViewUpload
}

// ParseView converts a view name to a View.
func ParseView(s string) (View, error) {
	for _, v := range AllViews() {
		if v.String() == s {
			return v, nil
		}
	}
	return ViewUpload, fmt.Errorf("%w %q", ErrUnknownView, s)
}
