// Package mcp provides an MCP (Model Context Protocol) server adapter for contractai.
// It lets AI assistants load contracts, review flagged clauses and ask questions.
package mcp

import "errors"

// ErrMissingWorkspace is returned when the workspace service is not provided.
var ErrMissingWorkspace = errors.New("mcp: workspace service is required")

// ErrMissingDocuments is returned when the document service is not provided.
var ErrMissingDocuments = errors.New("mcp: document service is required")

// ErrMissingClauses is returned when the clause review service is not provided.
var ErrMissingClauses = errors.New("mcp: clause review service is required")

// ErrMissingConversation is returned when the conversation service is not provided.
var ErrMissingConversation = errors.New("mcp: conversation service is required")

// ErrMissingIngest is returned when the ingest service is not provided.
var ErrMissingIngest = errors.New("mcp: ingest service is required")
