package services

import (
	"fmt"
	"strconv"
	"time"

	"github.com/custodia-labs/contractai-cli/internal/core/domain"
	"github.com/custodia-labs/contractai-cli/internal/core/ports/driven"
	"github.com/custodia-labs/contractai-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	KeyReplyDelay     = "conversation.reply_delay_ms"
	KeyReplyTemplate  = "conversation.reply_template"
	KeyOpenChatOnLoad = "workspace.open_chat_on_load"
	KeyHighlightColor = "highlight.color"
)

// SettingsService manages workspace settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current settings. Unset keys take their defaults.
func (s *SettingsService) Get() (*domain.WorkspaceSettings, error) {
	defaults := domain.DefaultWorkspaceSettings()

	settings := &domain.WorkspaceSettings{
		ReplyDelay:     time.Duration(s.getInt(KeyReplyDelay, int(defaults.ReplyDelay.Milliseconds()))) * time.Millisecond,
		ReplyTemplate:  s.getString(KeyReplyTemplate, defaults.ReplyTemplate),
		OpenChatOnLoad: s.getBool(KeyOpenChatOnLoad, defaults.OpenChatOnLoad),
		HighlightColor: s.getString(KeyHighlightColor, defaults.HighlightColor),
	}
	return settings, nil
}

// Save validates and persists settings.
func (s *SettingsService) Save(settings *domain.WorkspaceSettings) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	if err := s.configStore.Set(KeyReplyDelay, int(settings.ReplyDelay.Milliseconds())); err != nil {
		return fmt.Errorf("save reply delay: %w", err)
	}
	if err := s.configStore.Set(KeyReplyTemplate, settings.ReplyTemplate); err != nil {
		return fmt.Errorf("save reply template: %w", err)
	}
	if err := s.configStore.Set(KeyOpenChatOnLoad, settings.OpenChatOnLoad); err != nil {
		return fmt.Errorf("save open chat on load: %w", err)
	}
	if err := s.configStore.Set(KeyHighlightColor, settings.HighlightColor); err != nil {
		return fmt.Errorf("save highlight color: %w", err)
	}
	return nil
}

// Set parses value for key and saves the result.
func (s *SettingsService) Set(key, value string) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	switch key {
	case KeyReplyDelay:
		ms, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be an integer: %q", domain.ErrInvalidInput, key, value)
		}
		settings.ReplyDelay = time.Duration(ms) * time.Millisecond
	case KeyReplyTemplate:
		settings.ReplyTemplate = value
	case KeyOpenChatOnLoad:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be true or false: %q", domain.ErrInvalidInput, key, value)
		}
		settings.OpenChatOnLoad = b
	case KeyHighlightColor:
		settings.HighlightColor = value
	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}

	return s.Save(settings)
}

// Keys returns the configurable setting keys.
func (s *SettingsService) Keys() []string {
	return []string{KeyReplyDelay, KeyReplyTemplate, KeyOpenChatOnLoad, KeyHighlightColor}
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

// getInt treats a stored zero as a value, not as unset.
func (s *SettingsService) getInt(key string, defaultVal int) int {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetInt(key)
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}
