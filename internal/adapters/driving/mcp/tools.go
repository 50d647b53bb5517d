package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/contractai-cli/internal/core/domain"
)

// EmptyInput is the input schema for tools that take no arguments.
type EmptyInput struct{}

// LoadDocumentInput is the input schema for the load_document tool.
type LoadDocumentInput struct {
	Path string `json:"path" jsonschema:"path to a .txt, .md or .html contract file"`
}

// DocumentOutput identifies a document.
type DocumentOutput struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ListDocumentsOutput is the output schema for the list_documents tool.
type ListDocumentsOutput struct {
	Documents []domain.DocumentSummary `json:"documents"`
	ActiveID  string                   `json:"active_id,omitempty"`
}

// SetActiveInput is the input schema for the set_active tool.
type SetActiveInput struct {
	ID string `json:"id" jsonschema:"id of a loaded document"`
}

// SelectIssueInput is the input schema for the select_issue tool.
type SelectIssueInput struct {
	Index int `json:"index" jsonschema:"zero-based index into the active document's clause issues"`
}

// IssueOutput describes the selected clause issue.
type IssueOutput struct {
	Index    int    `json:"index"`
	Clause   string `json:"clause"`
	Issue    string `json:"issue"`
	Severity string `json:"severity"`
	Snippet  string `json:"snippet"`
	Found    bool   `json:"found" jsonschema:"whether the snippet occurs in the document text"`
}

// ClearIssueOutput is the output schema for the clear_issue tool.
type ClearIssueOutput struct {
	Cleared bool `json:"cleared"`
}

// HighlightOutput is the output schema for the highlight tool.
type HighlightOutput struct {
	Segments []domain.Segment `json:"segments"`
}

// PostMessageInput is the input schema for the post_message tool.
type PostMessageInput struct {
	Message    string `json:"message" jsonschema:"the question to ask about the contract"`
	DocumentID string `json:"document_id,omitempty" jsonschema:"document to ask about (default: the active document)"`
}

// PostMessageOutput is the output schema for the post_message tool.
type PostMessageOutput struct {
	DocumentID string `json:"document_id"`
	Pending    int    `json:"pending" jsonschema:"replies still to be delivered; poll get_log for them"`
}

// GetLogInput is the input schema for the get_log tool.
type GetLogInput struct {
	DocumentID string `json:"document_id,omitempty" jsonschema:"document whose log to read (default: the active document)"`
}

// ExchangeOutput is one conversation turn.
type ExchangeOutput struct {
	Role    string `json:"role" jsonschema:"user or assistant"`
	Content string `json:"content"`
	At      string `json:"at" jsonschema:"RFC 3339 timestamp"`
}

// GetLogOutput is the output schema for the get_log tool.
type GetLogOutput struct {
	DocumentID string           `json:"document_id"`
	Exchanges  []ExchangeOutput `json:"exchanges"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "load_document",
		Description: "Load a contract file and make it the active document",
	}, s.handleLoadDocument)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_documents",
		Description: "List loaded documents in load order",
	}, s.handleListDocuments)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "set_active",
		Description: "Make a loaded document the active one",
	}, s.handleSetActive)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "select_issue",
		Description: "Select a clause issue of the active document",
	}, s.handleSelectIssue)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "clear_issue",
		Description: "Clear the clause issue selection",
	}, s.handleClearIssue)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "highlight",
		Description: "Return the active document text split around the selected issue's snippet",
	}, s.handleHighlight)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "post_message",
		Description: "Ask a question about a document; the reply arrives after the configured delay",
	}, s.handlePostMessage)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_log",
		Description: "Read a document's conversation log",
	}, s.handleGetLog)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "snapshot",
		Description: "Return the whole workspace state",
	}, s.handleSnapshot)
}

func (s *Server) handleLoadDocument(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input LoadDocumentInput,
) (*mcp.CallToolResult, DocumentOutput, error) {
	in, err := s.ports.Ingest.FromFile(ctx, input.Path)
	if err != nil {
		return nil, DocumentOutput{}, err
	}
	id, err := s.ports.Workspace.Load(ctx, *in)
	if err != nil {
		return nil, DocumentOutput{}, fmt.Errorf("loading document: %w", err)
	}
	return nil, DocumentOutput{ID: id, Name: in.Name}, nil
}

func (s *Server) handleListDocuments(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ EmptyInput,
) (*mcp.CallToolResult, ListDocumentsOutput, error) {
	docs, err := s.ports.Documents.List(ctx)
	if err != nil {
		return nil, ListDocumentsOutput{}, fmt.Errorf("listing documents: %w", err)
	}
	out := ListDocumentsOutput{Documents: docs}
	active, err := s.ports.Documents.Active(ctx)
	if err != nil {
		return nil, ListDocumentsOutput{}, err
	}
	if active != nil {
		out.ActiveID = active.ID
	}
	return nil, out, nil
}

func (s *Server) handleSetActive(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SetActiveInput,
) (*mcp.CallToolResult, DocumentOutput, error) {
	if err := s.ports.Documents.SetActive(ctx, input.ID); err != nil {
		return nil, DocumentOutput{}, err
	}
	doc, err := s.ports.Documents.Get(ctx, input.ID)
	if err != nil {
		return nil, DocumentOutput{}, err
	}
	return nil, DocumentOutput{ID: doc.ID, Name: doc.Name}, nil
}

func (s *Server) handleSelectIssue(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SelectIssueInput,
) (*mcp.CallToolResult, IssueOutput, error) {
	if err := s.ports.Clauses.Select(ctx, input.Index); err != nil {
		return nil, IssueOutput{}, err
	}
	issue, err := s.ports.Clauses.Current(ctx)
	if err != nil {
		return nil, IssueOutput{}, err
	}
	segments, err := s.ports.Clauses.Segments(ctx)
	if err != nil {
		return nil, IssueOutput{}, err
	}

	out := IssueOutput{Index: input.Index}
	if issue != nil {
		out.Clause = issue.Clause
		out.Issue = issue.Issue
		out.Severity = issue.Severity.String()
		out.Snippet = issue.TextSnippet
	}
	for _, seg := range segments {
		if seg.Highlighted() {
			out.Found = true
		}
	}
	return nil, out, nil
}

func (s *Server) handleClearIssue(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ EmptyInput,
) (*mcp.CallToolResult, ClearIssueOutput, error) {
	s.ports.Clauses.Clear(ctx)
	return nil, ClearIssueOutput{Cleared: true}, nil
}

func (s *Server) handleHighlight(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ EmptyInput,
) (*mcp.CallToolResult, HighlightOutput, error) {
	segments, err := s.ports.Clauses.Segments(ctx)
	if err != nil {
		return nil, HighlightOutput{}, err
	}
	return nil, HighlightOutput{Segments: segments}, nil
}

func (s *Server) handlePostMessage(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input PostMessageInput,
) (*mcp.CallToolResult, PostMessageOutput, error) {
	id, err := s.documentID(ctx, input.DocumentID)
	if err != nil {
		return nil, PostMessageOutput{}, err
	}
	if err := s.ports.Conversation.PostUserMessage(ctx, id, input.Message); err != nil {
		return nil, PostMessageOutput{}, err
	}
	return nil, PostMessageOutput{DocumentID: id, Pending: s.ports.Conversation.Pending()}, nil
}

func (s *Server) handleGetLog(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetLogInput,
) (*mcp.CallToolResult, GetLogOutput, error) {
	id, err := s.documentID(ctx, input.DocumentID)
	if err != nil {
		return nil, GetLogOutput{}, err
	}
	if _, err := s.ports.Documents.Get(ctx, id); err != nil {
		return nil, GetLogOutput{}, err
	}
	log := s.ports.Conversation.Log(ctx, id)
	out := GetLogOutput{DocumentID: id, Exchanges: make([]ExchangeOutput, len(log))}
	for i, ex := range log {
		out.Exchanges[i] = ExchangeOutput{
			Role:    string(ex.Role),
			Content: ex.Content,
			At:      ex.At.Format(time.RFC3339),
		}
	}
	return nil, out, nil
}

// handleSnapshot returns the snapshot without an output schema.
func (s *Server) handleSnapshot(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ EmptyInput,
) (*mcp.CallToolResult, any, error) {
	snap, err := s.ports.Workspace.Snapshot(ctx)
	if err != nil {
		return nil, nil, err
	}
	return nil, snap, nil
}

// documentID returns id, or the active document's id when id is empty.
func (s *Server) documentID(ctx context.Context, id string) (string, error) {
	if id != "" {
		return id, nil
	}
	active, err := s.ports.Documents.Active(ctx)
	if err != nil {
		return "", err
	}
	if active == nil {
		return "", domain.ErrNoActiveDocument
	}
	return active.ID, nil
}
