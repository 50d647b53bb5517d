package domain

import (
	"fmt"
	"slices"
	"time"
)

// Document is one loaded contract: its text plus the metadata derived at ingestion.
// A Document is never mutated once it has been loaded.
type Document struct {
	// ID is the unique identifier assigned at load time. It is never reused.
	ID string `json:"id" yaml:"id"`

	// Name is the display label, usually the source filename.
	Name string `json:"name" yaml:"name"`

	// Text is the full textual content.
	// It is the single source of truth for rendering and span matching.
	Text string `json:"text" yaml:"text"`

	// KeyDates are the extracted dates in display order.
	KeyDates []KeyDate `json:"key_dates" yaml:"key_dates"`

	// ClauseIssues are the flagged clause problems in display order.
	ClauseIssues []ClauseIssue `json:"clause_issues" yaml:"clause_issues"`

	// LoadedAt is when the document entered the session.
	LoadedAt time.Time `json:"loaded_at" yaml:"loaded_at"`
}

// Summary returns the listing view of the document.
func (d *Document) Summary() DocumentSummary {
	return DocumentSummary{ID: d.ID, Name: d.Name}
}

// Clone returns a deep copy so callers cannot reach the stored slices.
func (d *Document) Clone() *Document {
	c := *d
	c.KeyDates = slices.Clone(d.KeyDates)
	c.ClauseIssues = slices.Clone(d.ClauseIssues)
	return &c
}

// DocumentSummary identifies a document in listings.
type DocumentSummary struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// KeyDate is a dated obligation or milestone found in a contract.
type KeyDate struct {
	// Date is a calendar date as a string, normally YYYY-MM-DD.
	Date string `json:"date" yaml:"date"`

	// Description explains what happens on the date.
	Description string `json:"description" yaml:"description"`
}

// ClauseIssue is a flagged problem in a document.
type ClauseIssue struct {
	// Clause is a short label such as "Termination".
	Clause string `json:"clause" yaml:"clause"`

	// Issue describes the defect.
	Issue string `json:"issue" yaml:"issue"`

	// Severity is one of high, medium or low.
	Severity Severity `json:"severity" yaml:"severity"`

	// TextSnippet is a literal fragment expected to occur in the document text.
	// It may be absent from the text; that is not an error.
	TextSnippet string `json:"text_snippet" yaml:"text_snippet"`
}

// Ingested is the tuple an ingestion collaborator hands to the document store.
type Ingested struct {
	Name         string
	Text         string
	KeyDates     []KeyDate
	ClauseIssues []ClauseIssue
}

// Validate checks the ingestion result crossing into the core.
// Only severities are checked; dates and snippets are taken as given.
func (in *Ingested) Validate() error {
	for i := range in.ClauseIssues {
		if !in.ClauseIssues[i].Severity.IsValid() {
			return fmt.Errorf("clause issue %d (%s): %w %q",
				i, in.ClauseIssues[i].Clause, ErrUnknownSeverity, in.ClauseIssues[i].Severity)
		}
	}
	return nil
}

// RawDocument is the opaque content read from a file before normalisation.
type RawDocument struct {
	// URI is the original location.
	URI string

	// Name overrides the display name derived from URI when set.
	Name string

	// Content is the raw bytes.
	Content []byte
}
