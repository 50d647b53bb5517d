package driving

import "github.com/custodia-labs/contractai-cli/internal/core/domain"

// SettingsService manages workspace settings.
type SettingsService interface {
	// Get retrieves current settings, filling defaults for unset keys.
	Get() (*domain.WorkspaceSettings, error)

	// Save validates and persists settings.
	Save(settings *domain.WorkspaceSettings) error

	// Set parses and stores a single setting by key.
	Set(key, value string) error

	// Keys returns the configurable setting keys.
	Keys() []string
}
