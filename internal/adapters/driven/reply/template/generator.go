// Package template provides the deterministic counterpart reply.
package template

import (
	"context"

	"github.com/custodia-labs/contractai-cli/internal/core/domain"
	"github.com/custodia-labs/contractai-cli/internal/core/ports/driven"
)

// Ensure Generator implements the interface.
var _ driven.ReplyGenerator = (*Generator)(nil)

// Generator answers every message with the same templated text.
type Generator struct {
	template string
}

// New creates a generator. An empty template uses domain.DefaultReplyTemplate.
func New(template string) *Generator {
	return &Generator{template: template}
}

// Reply renders the template for doc. History is ignored.
func (g *Generator) Reply(_ context.Context, doc *domain.Document, _ []domain.Exchange) (string, error) {
	return domain.RenderReply(g.template, doc.Name), nil
}
