package domain

import "strings"

// SegmentKind tags a span of document text.
type SegmentKind string

const (
	// SegmentPlain is unhighlighted text.
	SegmentPlain SegmentKind = "plain"

	// SegmentHighlighted is the text matched by the selected clause issue.
	SegmentHighlighted SegmentKind = "highlighted"
)

// Segment is a contiguous span of a document's text.
type Segment struct {
	Kind SegmentKind `json:"kind" yaml:"kind"`
	Text string      `json:"text" yaml:"text"`
}

// Highlighted reports whether the segment is the matched fragment.
func (s Segment) Highlighted() bool {
	return s.Kind == SegmentHighlighted
}

// JoinSegments concatenates segment text back into the document text.
func JoinSegments(segments []Segment) string {
	var b strings.Builder
	for _, s := range segments {
		b.WriteString(s.Text)
	}
	return b.String()
}
