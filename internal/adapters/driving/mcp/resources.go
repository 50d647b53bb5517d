package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/contractai-cli/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for contractai resources.
	uriScheme = "contractai://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "documents",
		Name:        "documents",
		Description: "Loaded documents with their key dates and clause issues",
		MIMEType:    "application/json",
	}, s.handleDocumentsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "documents/{documentId}",
		Name:        "document-text",
		Description: "Full text of a loaded document",
		MIMEType:    "text/plain",
	}, s.handleDocumentTextResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "history",
		Name:        "history",
		Description: "Session audit trail, oldest event first",
		MIMEType:    "application/json",
	}, s.handleHistoryResource)
}

// handleDocumentsResource returns every loaded document without its text.
func (s *Server) handleDocumentsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	summaries, err := s.ports.Documents.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}

	type documentInfo struct {
		ID           string               `json:"id"`
		Name         string               `json:"name"`
		KeyDates     []domain.KeyDate     `json:"key_dates"`
		ClauseIssues []domain.ClauseIssue `json:"clause_issues"`
	}

	infos := make([]documentInfo, 0, len(summaries))
	for _, sum := range summaries {
		doc, err := s.ports.Documents.Get(ctx, sum.ID)
		if err != nil {
			return nil, fmt.Errorf("getting document %s: %w", sum.ID, err)
		}
		infos = append(infos, documentInfo{
			ID:           doc.ID,
			Name:         doc.Name,
			KeyDates:     doc.KeyDates,
			ClauseIssues: doc.ClauseIssues,
		})
	}

	return jsonResult(req.Params.URI, infos)
}

// handleDocumentTextResource returns the text of a specific document.
func (s *Server) handleDocumentTextResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	// Extract documentId from URI: contractai://documents/{documentId}
	docID := extractDocumentID(req.Params.URI)
	if docID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	doc, err := s.ports.Documents.Get(ctx, docID)
	if err != nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     doc.Text,
		}},
	}, nil
}

// handleHistoryResource returns the recorded session events.
func (s *Server) handleHistoryResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.History == nil {
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     "[]",
			}},
		}, nil
	}
	return jsonResult(req.Params.URI, s.ports.History.Events())
}

func jsonResult(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractDocumentID extracts the document ID from a URI like contractai://documents/{documentId}.
func extractDocumentID(uri string) string {
	const prefix = uriScheme + "documents/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	id := strings.TrimPrefix(uri, prefix)
	if strings.Contains(id, "/") {
		return ""
	}
	return id
}
