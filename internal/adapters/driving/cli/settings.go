package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage workspace settings",
	Long: `View and change the reply delay, reply template, chat-on-load policy
and highlight colour.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Change a setting",
	Long: `Change a single setting by key.

Keys:
  conversation.reply_delay_ms   Milliseconds before the counterpart replies
  conversation.reply_template   Reply text; {{name}} becomes the document name
  workspace.open_chat_on_load   Switch to chat after loading (true/false)
  highlight.color               Background colour of highlighted clauses`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Conversation]")
	cmd.Printf("  Reply delay:    %d ms\n", settings.ReplyDelay.Milliseconds())
	cmd.Printf("  Reply template: %s\n", settings.ReplyTemplate)
	cmd.Println()

	cmd.Println("[Workspace]")
	cmd.Printf("  Open chat on load: %s\n", yesNo(settings.OpenChatOnLoad))
	cmd.Println()

	cmd.Println("[Highlight]")
	cmd.Printf("  Colour: %s\n", settings.HighlightColor)

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], args[1]
	if err := settingsService.Set(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	cmd.Printf("Set %s = %s\n", key, value)
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
