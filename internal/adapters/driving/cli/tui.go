package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/contractai-cli/internal/adapters/driven/calendar"
	"github.com/custodia-labs/contractai-cli/internal/adapters/driving/tui"
	"github.com/custodia-labs/contractai-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/contractai-cli/internal/connectors/inbox"
	"github.com/custodia-labs/contractai-cli/internal/logger"
)

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui [file]...",
	Short: "Launch the interactive contract workspace",
	Long: `Launch the interactive terminal workspace.

Files given as arguments are loaded before the workspace opens; the last
one becomes the active document. With --watch, every contract file that
appears in DIR is loaded as well.

Controls:
  tab, shift+tab  - Next / previous view
  alt+1..alt+5    - Jump to a view (plain digits outside text inputs)
  ↑/↓, enter      - Move and select within a view
  esc             - Clear the clause selection
  ctrl+c          - Quit`,
	RunE: runTUI,
}

var tuiWatchDir string

func init() {
	tuiCmd.Flags().StringVar(&tuiWatchDir, "watch", "", "Load contract files that appear in `DIR`")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	session, err := newSession(false)
	if err != nil {
		return err
	}
	defer session.Close() //nolint:errcheck

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	if _, err := session.LoadFiles(ctx, args); err != nil {
		return err
	}

	events, err := session.Bus.Subscribe(ctx)
	if err != nil {
		return fmt.Errorf("failed to subscribe to session events: %w", err)
	}

	ports := &tui.Ports{
		Workspace:    session.Workspace,
		Documents:    session.Documents,
		Clauses:      session.Clauses,
		Conversation: session.Conversation,
		Navigator:    session.Navigator,
		Ingest:       session.Ingest,
		History:      session.History,
		Calendar:     calendar.NewICSExporter(time.Now),
	}

	app, err := tui.NewApp(ports, styles.WithHighlight(session.Settings().HighlightColor))
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(ctx).WithEvents(events).WithExportDir(".", calendar.FileName)

	if tuiWatchDir != "" {
		watcher := inbox.New(tuiWatchDir, session.Ingest.Supports)
		defer watcher.Close() //nolint:errcheck

		paths, err := watchInbox(ctx, session.LoadFile, watcher)
		if err != nil {
			return err
		}
		app.WithInbox(paths)
	}

	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// watchInbox loads the files already in the watcher's directory, then starts watching it.
// Files that fail to load are logged and skipped.
func watchInbox(
	ctx context.Context,
	load func(context.Context, string) (string, error),
	watcher *inbox.Watcher,
) (<-chan string, error) {
	existing, err := watcher.Existing()
	if err != nil {
		return nil, fmt.Errorf("failed to read inbox %s: %w", watcher.Dir(), err)
	}
	for _, path := range existing {
		if _, err := load(ctx, path); err != nil {
			logger.Warn("skipping %s: %v", path, err)
		}
	}

	paths, err := watcher.Watch(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to watch inbox %s: %w", watcher.Dir(), err)
	}
	return paths, nil
}
