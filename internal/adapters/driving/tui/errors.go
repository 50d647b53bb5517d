package tui

import "errors"

// ErrMissingWorkspace is returned when the workspace service is not provided.
var ErrMissingWorkspace = errors.New("tui: workspace service is required")

// ErrMissingDocuments is returned when the document service is not provided.
var ErrMissingDocuments = errors.New("tui: document service is required")

// ErrMissingClauses is returned when the clause review service is not provided.
var ErrMissingClauses = errors.New("tui: clause review service is required")

// ErrMissingConversation is returned when the conversation service is not provided.
var ErrMissingConversation = errors.New("tui: conversation service is required")

// ErrMissingNavigator is returned when the navigator is not provided.
var ErrMissingNavigator = errors.New("tui: navigator is required")

// ErrMissingIngest is returned when the ingest service is not provided.
var ErrMissingIngest = errors.New("tui: ingest service is required")
