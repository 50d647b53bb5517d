// Package driving declares what the CLI, the TUI and the MCP server may ask
// of a contract review session: load and switch documents, select clause
// issues, chat, and read or change settings.
//
// internal/core/services implements every interface here.
package driving
