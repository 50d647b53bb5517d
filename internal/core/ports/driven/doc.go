// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - DocumentStore: Loaded documents in load order
//   - ConversationStore: Per-document exchange logs
//   - Clock: Time source and deferred callbacks for delayed replies
//   - ReplyGenerator: Counterpart replies (templated by default)
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - EventPublisher: Session event feed for the audit trail.
//   - Normaliser: Turns raw file content into an ingestion result.
//   - CalendarExporter: Writes a key date for calendar applications.
//   - SnapshotExporter: Serialises a session snapshot.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, connector, or normaliser package
package driven
