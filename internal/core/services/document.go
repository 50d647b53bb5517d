package services

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/contractai-cli/internal/core/domain"
	"github.com/custodia-labs/contractai-cli/internal/core/ports/driven"
	"github.com/custodia-labs/contractai-cli/internal/core/ports/driving"
	"github.com/custodia-labs/contractai-cli/internal/logger"
)

// Ensure DocumentService implements the interface.
var _ driving.DocumentService = (*DocumentService)(nil)

// DocumentService owns the loaded documents and the active pointer.
type DocumentService struct {
	store   driven.DocumentStore
	session *Session
	events  emitter
	newID   func() string
	now     func() time.Time
}

// NewDocumentService creates a new document service.
func NewDocumentService(store driven.DocumentStore, session *Session) *DocumentService {
	return &DocumentService{
		store:   store,
		session: session,
		newID:   uuid.NewString,
		now:     time.Now,
	}
}

// WithEvents sets the publisher that receives document events.
func (s *DocumentService) WithEvents(publisher driven.EventPublisher) *DocumentService {
	s.events = emitter{publisher: publisher}
	return s
}

// Load adds a document, makes it active and clears any issue selection.
// Empty key dates or clause issues are valid.
func (s *DocumentService) Load(ctx context.Context, in domain.Ingested) (string, error) {
	if err := in.Validate(); err != nil {
		return "", fmt.Errorf("loading %q: %w", in.Name, err)
	}

	doc := &domain.Document{
		ID:           s.newID(),
		Name:         in.Name,
		Text:         in.Text,
		KeyDates:     slices.Clone(in.KeyDates),
		ClauseIssues: slices.Clone(in.ClauseIssues),
		LoadedAt:     s.now(),
	}
	if err := s.store.Add(ctx, doc); err != nil {
		return "", fmt.Errorf("storing %q: %w", in.Name, err)
	}
	s.session.activate(doc.ID)

	logger.Debug("loaded document %s (%s): %d key dates, %d clause issues",
		doc.ID, doc.Name, len(doc.KeyDates), len(doc.ClauseIssues))
	s.events.emit(ctx, domain.Event{
		Type:         domain.EventDocumentLoaded,
		DocumentID:   doc.ID,
		DocumentName: doc.Name,
		At:           doc.LoadedAt,
	})

	return doc.ID, nil
}

// SetActive makes an existing document active and clears any issue selection.
func (s *DocumentService) SetActive(ctx context.Context, documentID string) error {
	doc, err := s.store.Get(ctx, documentID)
	if err != nil {
		return fmt.Errorf("activating document %q: %w", documentID, err)
	}
	s.session.activate(doc.ID)

	logger.Debug("active document is now %s (%s)", doc.ID, doc.Name)
	s.events.emit(ctx, domain.Event{
		Type:         domain.EventDocumentActivated,
		DocumentID:   doc.ID,
		DocumentName: doc.Name,
	})
	return nil
}

// Active returns the active document, or nil when none is loaded.
func (s *DocumentService) Active(ctx context.Context) (*domain.Document, error) {
	id, ok := s.session.ActiveID()
	if !ok {
		return nil, nil
	}
	return s.store.Get(ctx, id)
}

// Get retrieves any loaded document by ID.
func (s *DocumentService) Get(ctx context.Context, documentID string) (*domain.Document, error) {
	return s.store.Get(ctx, documentID)
}

// List returns document summaries in load order.
func (s *DocumentService) List(ctx context.Context) ([]domain.DocumentSummary, error) {
	docs, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	summaries := make([]domain.DocumentSummary, len(docs))
	for i := range docs {
		summaries[i] = docs[i].Summary()
	}
	return summaries, nil
}
