package services

import (
	"strings"

	"github.com/custodia-labs/contractai-cli/internal/core/domain"
)

// MatchSpan partitions text around the first occurrence of fragment.
//
// Matching is literal and case-sensitive. Only the first occurrence is
// highlighted; later occurrences stay plain. An empty or absent fragment
// yields the whole text as one plain segment. Empty leading or trailing
// plain segments are omitted, and empty text yields no segments.
// Concatenating the segments always reproduces text.
func MatchSpan(text, fragment string) []domain.Segment {
	if text == "" {
		return []domain.Segment{}
	}

	idx := -1
	if fragment != "" {
		idx = strings.Index(text, fragment)
	}
	if idx < 0 {
		return []domain.Segment{{Kind: domain.SegmentPlain, Text: text}}
	}

	segments := make([]domain.Segment, 0, 3)
	if idx > 0 {
		segments = append(segments, domain.Segment{Kind: domain.SegmentPlain, Text: text[:idx]})
	}
	end := idx + len(fragment)
	segments = append(segments, domain.Segment{Kind: domain.SegmentHighlighted, Text: text[idx:end]})
	if end < len(text) {
		segments = append(segments, domain.Segment{Kind: domain.SegmentPlain, Text: text[end:]})
	}
	return segments
}
