package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/custodia-labs/contractai-cli/internal/core/domain"
	"github.com/custodia-labs/contractai-cli/internal/core/ports/driven"
	"github.com/custodia-labs/contractai-cli/internal/core/ports/driving"
	"github.com/custodia-labs/contractai-cli/internal/logger"
)

// Ensure ClauseReviewService implements the interface.
var _ driving.ClauseReviewService = (*ClauseReviewService)(nil)

// ClauseReviewService is the clause issue index of the active document.
type ClauseReviewService struct {
	store   driven.DocumentStore
	session *Session
	events  emitter
}

// NewClauseReviewService creates a new clause review service.
func NewClauseReviewService(store driven.DocumentStore, session *Session) *ClauseReviewService {
	return &ClauseReviewService{
		store:   store,
		session: session,
	}
}

// WithEvents sets the publisher that receives selection events.
func (s *ClauseReviewService) WithEvents(publisher driven.EventPublisher) *ClauseReviewService {
	s.events = emitter{publisher: publisher}
	return s
}

// Select marks the issue at index as selected. On error the selection is unchanged.
func (s *ClauseReviewService) Select(ctx context.Context, index int) error {
	doc, err := s.active(ctx)
	if err != nil {
		return err
	}
	if doc == nil {
		return fmt.Errorf("selecting issue %d: %w: no active document", index, domain.ErrOutOfRange)
	}
	if index < 0 || index >= len(doc.ClauseIssues) {
		return fmt.Errorf("selecting issue %d of %q: %w [0, %d)",
			index, doc.Name, domain.ErrOutOfRange, len(doc.ClauseIssues))
	}
	if !s.session.selectIssue(doc.ID, index) {
		return fmt.Errorf("selecting issue %d: %w: active document changed", index, domain.ErrOutOfRange)
	}

	issue := doc.ClauseIssues[index]
	logger.Debug("selected issue %d (%s) of %s", index, issue.Clause, doc.ID)
	s.events.emit(ctx, domain.Event{
		Type:         domain.EventIssueSelected,
		DocumentID:   doc.ID,
		DocumentName: doc.Name,
		Detail:       strconv.Itoa(index) + ": " + issue.Clause,
	})
	return nil
}

// Clear removes any selection.
func (s *ClauseReviewService) Clear(ctx context.Context) {
	if !s.session.clearSelection() {
		return
	}
	id, _ := s.session.ActiveID()
	s.events.emit(ctx, domain.Event{Type: domain.EventIssueCleared, DocumentID: id})
}

// Current returns the selected issue, or nil when none is selected.
func (s *ClauseReviewService) Current(ctx context.Context) (*domain.ClauseIssue, error) {
	doc, index, ok, err := s.review(ctx)
	if err != nil || !ok {
		return nil, err
	}
	issue := doc.ClauseIssues[index]
	return &issue, nil
}

// Selected returns the selected index and whether one is set.
func (s *ClauseReviewService) Selected(_ context.Context) (int, bool) {
	return s.session.Selection()
}

// Segments returns the active document's text partitioned for the selected issue.
// With nothing active there are no segments.
func (s *ClauseReviewService) Segments(ctx context.Context) ([]domain.Segment, error) {
	doc, index, ok, err := s.review(ctx)
	if err != nil || doc == nil {
		return nil, err
	}
	return segmentsFor(doc, index, ok), nil
}

// review reads the active document together with its selection, so a
// concurrent SetActive can never pair one document with another's index.
func (s *ClauseReviewService) review(ctx context.Context) (*domain.Document, int, bool, error) {
	id, index, selected := s.session.state()
	if id == "" {
		return nil, 0, false, nil
	}
	doc, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, 0, false, err
	}
	if !selected || index >= len(doc.ClauseIssues) {
		return doc, 0, false, nil
	}
	return doc, index, true, nil
}

func segmentsFor(doc *domain.Document, index int, selected bool) []domain.Segment {
	fragment := ""
	if selected {
		fragment = doc.ClauseIssues[index].TextSnippet
	}
	return MatchSpan(doc.Text, fragment)
}

func (s *ClauseReviewService) active(ctx context.Context) (*domain.Document, error) {
	id, ok := s.session.ActiveID()
	if !ok {
		return nil, nil
	}
	return s.store.Get(ctx, id)
}
