// Package cli provides the cobra command tree for contractai.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/contractai-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/contractai-cli/internal/app"
	"github.com/custodia-labs/contractai-cli/internal/core/ports/driving"
	"github.com/custodia-labs/contractai-cli/internal/core/services"
	"github.com/custodia-labs/contractai-cli/internal/logger"
)

// version is set at build time with -ldflags "-X .../cli.version=...".
var version = "dev"

var (
	verbose   bool
	configDir string
)

// Services used by commands. Set by SetServices or lazily from --config-dir.
var (
	settingsService driving.SettingsService
	ingestService   driving.IngestService
)

var rootCmd = &cobra.Command{
	Use:   "contractai",
	Short: "Review contracts from the terminal",
	Long: `contractai loads contract files, lists their key dates, highlights
flagged clauses and answers questions about them.

Run 'contractai tui' for the interactive workspace.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "",
		"Configuration directory (default ~/"+file.DefaultDirName+")")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetServices injects the services commands run against.
func SetServices(settings driving.SettingsService, ingest driving.IngestService) {
	settingsService = settings
	ingestService = ingest
}

func setup(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)
	if settingsService == nil {
		store, err := file.NewConfigStore(configDir)
		if err != nil {
			return fmt.Errorf("failed to open config: %w", err)
		}
		settingsService = services.NewSettingsService(store)
		logger.Debug("config loaded from %s", store.Path())
	}
	if ingestService == nil {
		ingestService = app.NewIngestService()
	}
	return nil
}

// newSession starts a workspace session with the current settings.
func newSession(instant bool) (*app.Session, error) {
	settings, err := settingsService.Get()
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	return app.NewSession(app.Options{
		Settings: settings,
		Instant:  instant,
		Ingest:   ingestService,
	})
}
