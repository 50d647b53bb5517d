// Package domain defines the core business entities for contractai.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: A loaded contract with its key dates and clause issues
//   - ClauseIssue: A flagged problem tied to a literal text fragment
//   - Segment: A plain or highlighted span of a document's text
//   - Exchange: One turn of a per-document conversation
//   - View: A workspace view gated by the navigator
//   - Event: A session event emitted for the audit trail
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
