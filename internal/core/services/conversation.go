package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/custodia-labs/contractai-cli/internal/core/domain"
	"github.com/custodia-labs/contractai-cli/internal/core/ports/driven"
	"github.com/custodia-labs/contractai-cli/internal/core/ports/driving"
	"github.com/custodia-labs/contractai-cli/internal/logger"
)

// Ensure ConversationService implements the interface.
var _ driving.ConversationService = (*ConversationService)(nil)

// ConversationService runs per-document conversations.
// Each user message schedules exactly one counterpart reply after a fixed delay.
type ConversationService struct {
	docs      driven.DocumentStore
	logs      driven.ConversationStore
	session   *Session
	replies   driven.ReplyGenerator
	scheduler *Scheduler
	delay     time.Duration
	template  string
	events    emitter
}

// NewConversationService creates a new conversation service.
// A nil reply generator always answers with the built-in template.
func NewConversationService(
	docs driven.DocumentStore,
	logs driven.ConversationStore,
	session *Session,
	replies driven.ReplyGenerator,
	scheduler *Scheduler,
	delay time.Duration,
) *ConversationService {
	return &ConversationService{
		docs:      docs,
		logs:      logs,
		session:   session,
		replies:   replies,
		scheduler: scheduler,
		delay:     delay,
	}
}

// WithEvents sets the publisher that receives conversation events.
func (s *ConversationService) WithEvents(publisher driven.EventPublisher) *ConversationService {
	s.events = emitter{publisher: publisher}
	return s
}

// WithFallbackTemplate sets the reply used when the generator fails.
func (s *ConversationService) WithFallbackTemplate(template string) *ConversationService {
	s.template = template
	return s
}

// PostUserMessage appends a user turn to the document's log and schedules one reply.
// The reply lands in documentID's log even if another document becomes active meanwhile.
func (s *ConversationService) PostUserMessage(ctx context.Context, documentID, content string) error {
	if strings.TrimSpace(content) == "" {
		return domain.ErrEmptyMessage
	}
	if !s.session.HasActive() {
		return domain.ErrNoActiveDocument
	}
	doc, err := s.docs.Get(ctx, documentID)
	if err != nil {
		return fmt.Errorf("posting to document %q: %w", documentID, err)
	}

	turn := domain.Exchange{Role: domain.RoleUser, Content: content, At: s.scheduler.Now()}
	if err := s.logs.Append(ctx, doc.ID, turn); err != nil {
		return fmt.Errorf("appending message: %w", err)
	}
	s.events.emit(ctx, domain.Event{
		Type:         domain.EventMessageSent,
		DocumentID:   doc.ID,
		DocumentName: doc.Name,
		Detail:       content,
		At:           turn.At,
	})

	if !s.scheduler.After(s.delay, func() { s.deliverReply(doc) }) {
		logger.Warn("conversation closed, no reply scheduled for %s", doc.ID)
		return nil
	}
	logger.Debug("reply for %s due in %s", doc.ID, s.delay)
	return nil
}

// deliverReply runs on the scheduler once the delay has elapsed.
func (s *ConversationService) deliverReply(doc *domain.Document) {
	ctx := context.Background()
	history, _ := s.logs.Log(ctx, doc.ID)

	content, err := s.generate(ctx, doc, history)
	if err != nil {
		logger.Warn("reply generator failed for %s, using template: %v", doc.ID, err)
		content = domain.RenderReply(s.template, doc.Name)
	}

	reply := domain.Exchange{Role: domain.RoleAssistant, Content: content, At: s.scheduler.Now()}
	if err := s.logs.Append(ctx, doc.ID, reply); err != nil {
		logger.Warn("appending reply for %s: %v", doc.ID, err)
		return
	}
	logger.Debug("reply delivered to %s", doc.ID)
	s.events.emit(ctx, domain.Event{
		Type:         domain.EventReplyReceived,
		DocumentID:   doc.ID,
		DocumentName: doc.Name,
		Detail:       content,
		At:           reply.At,
	})
}

func (s *ConversationService) generate(
	ctx context.Context,
	doc *domain.Document,
	history []domain.Exchange,
) (string, error) {
	if s.replies == nil {
		return domain.RenderReply(s.template, doc.Name), nil
	}
	content, err := s.replies.Reply(ctx, doc, history)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(content) == "" {
		return "", errors.New("empty reply")
	}
	return content, nil
}

// Log returns a document's exchanges in order.
// Unknown or not-yet-messaged documents yield an empty log.
func (s *ConversationService) Log(ctx context.Context, documentID string) []domain.Exchange {
	log, err := s.logs.Log(ctx, documentID)
	if err != nil || log == nil {
		return []domain.Exchange{}
	}
	return log
}

// Pending returns the number of replies not yet delivered.
func (s *ConversationService) Pending() int {
	return s.scheduler.Pending()
}

// Wait blocks until every scheduled reply has been delivered.
func (s *ConversationService) Wait() {
	s.scheduler.Wait()
}

// Close cancels undelivered replies.
func (s *ConversationService) Close() {
	s.scheduler.Stop()
}
