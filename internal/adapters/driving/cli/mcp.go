package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/contractai-cli/internal/adapters/driving/mcp"
	"github.com/custodia-labs/contractai-cli/internal/app"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve [file]...",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server for AI assistant integration.

The server communicates over stdio using JSON-RPC. Files given as
arguments are loaded before the server starts. Replies to post_message
arrive after the configured delay; poll get_log to read them.

Claude Desktop configuration (claude_desktop_config.json):
  {
    "mcpServers": {
      "contractai": {
        "command": "/path/to/contractai",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	session, err := newSession(false)
	if err != nil {
		return err
	}
	defer session.Close() //nolint:errcheck

	if _, err := session.LoadFiles(cmd.Context(), args); err != nil {
		return err
	}

	server, err := mcp.NewServer(mcpPorts(session))
	if err != nil {
		return err
	}
	return server.Run(cmd.Context())
}

func mcpPorts(session *app.Session) *mcp.Ports {
	return &mcp.Ports{
		Workspace:    session.Workspace,
		Documents:    session.Documents,
		Clauses:      session.Clauses,
		Conversation: session.Conversation,
		Ingest:       session.Ingest,
		History:      session.History,
	}
}
