package normalisers

import (
	"path/filepath"

	"github.com/custodia-labs/contractai-cli/internal/core/domain"
)

// EmptyContractText replaces the text of a file with no readable content.
const EmptyContractText = "Sample contract text loaded from file..."

// DisplayName returns the name a raw document is shown under.
// An explicit Name wins over the file name of the URI.
func DisplayName(raw *domain.RawDocument) string {
	if raw.Name != "" {
		return raw.Name
	}
	return filepath.Base(raw.URI)
}

// Analyse builds the ingestion result for a contract's text.
// Key dates and clause issues are the fixed analysis the workspace ships with.
func Analyse(name, text string) *domain.Ingested {
	if text == "" {
		text = EmptyContractText
	}
	return &domain.Ingested{
		Name: name,
		Text: text,
		KeyDates: []domain.KeyDate{
			{Date: "2024-12-31", Description: "Expiration of " + name},
			{Date: "2024-06-30", Description: "Renewal notice deadline for " + name},
		},
		ClauseIssues: []domain.ClauseIssue{
			{
				Clause:      "Termination",
				Issue:       "No notice period specified",
				Severity:    domain.SeverityHigh,
				TextSnippet: "...This contract may be terminated by either party...",
			},
			{
				Clause:      "Liability",
				Issue:       "Unlimited liability",
				Severity:    domain.SeverityMedium,
				TextSnippet: "...The company shall not be liable for any indirect damages...",
			},
			{
				Clause:      "Payment Terms",
				Issue:       "Vague payment schedule",
				Severity:    domain.SeverityLow,
				TextSnippet: "...Payment shall be made in a timely manner...",
			},
		},
	}
}
