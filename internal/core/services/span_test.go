package services

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/contractai-cli/internal/core/domain"
)

func plain(s string) domain.Segment {
	return domain.Segment{Kind: domain.SegmentPlain, Text: s}
}

func hl(s string) domain.Segment {
	return domain.Segment{Kind: domain.SegmentHighlighted, Text: s}
}

func TestMatchSpan(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		fragment string
		want     []domain.Segment
	}{
		{
			name:     "middle of text",
			text:     "Payment due in 30 days.",
			fragment: "30 days",
			want:     []domain.Segment{plain("Payment due in "), hl("30 days"), plain(".")},
		},
		{
			name:     "first occurrence only",
			text:     "ab ab ab",
			fragment: "ab",
			want:     []domain.Segment{hl("ab"), plain(" ab ab")},
		},
		{
			name:     "empty fragment",
			text:     "whole text",
			fragment: "",
			want:     []domain.Segment{plain("whole text")},
		},
		{
			name:     "fragment absent",
			text:     "whole text",
			fragment: "missing",
			want:     []domain.Segment{plain("whole text")},
		},
		{
			name:     "case sensitive",
			text:     "Termination clause",
			fragment: "termination",
			want:     []domain.Segment{plain("Termination clause")},
		},
		{
			name:     "fragment is the whole text",
			text:     "exact",
			fragment: "exact",
			want:     []domain.Segment{hl("exact")},
		},
		{
			name:     "at the end",
			text:     "ends with 30 days",
			fragment: "30 days",
			want:     []domain.Segment{plain("ends with "), hl("30 days")},
		},
		{
			name:     "regex metacharacters are literal",
			text:     "fee (a.k.a. charge) applies",
			fragment: "(a.k.a. charge)",
			want:     []domain.Segment{plain("fee "), hl("(a.k.a. charge)"), plain(" applies")},
		},
		{
			name:     "empty text",
			text:     "",
			fragment: "x",
			want:     []domain.Segment{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchSpan(tt.text, tt.fragment)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.text, domain.JoinSegments(got))
		})
	}
}

func TestMatchSpan_Properties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)

	properties.Property("segments concatenate to the text", prop.ForAll(
		func(text, fragment string) bool {
			return domain.JoinSegments(MatchSpan(text, fragment)) == text
		},
		gen.AnyString(), gen.AnyString(),
	))

	properties.Property("fragment drawn from the text is highlighted at its first index", prop.ForAll(
		func(prefix, fragment, suffix string) bool {
			text := prefix + fragment + suffix
			segments := MatchSpan(text, fragment)

			offset := 0
			highlighted := 0
			for _, s := range segments {
				if s.Highlighted() {
					highlighted++
					if offset != strings.Index(text, fragment) || s.Text != fragment {
						return false
					}
				}
				offset += len(s.Text)
			}
			return highlighted == 1
		},
		gen.AlphaString(), gen.AlphaString().SuchThat(func(s string) bool { return s != "" }), gen.AlphaString(),
	))

	properties.Property("no empty segments and kinds alternate", prop.ForAll(
		func(text, fragment string) bool {
			segments := MatchSpan(text, fragment)
			for i, s := range segments {
				if s.Text == "" {
					return false
				}
				if i > 0 && segments[i-1].Kind == s.Kind {
					return false
				}
			}
			return len(segments) <= 3
		},
		gen.AlphaString(), gen.AlphaString(),
	))

	properties.Property("empty fragment is one plain segment", prop.ForAll(
		func(text string) bool {
			segments := MatchSpan(text, "")
			if text == "" {
				return len(segments) == 0
			}
			return len(segments) == 1 && !segments[0].Highlighted()
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}
