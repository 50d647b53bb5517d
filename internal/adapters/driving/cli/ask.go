package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/contractai-cli/internal/core/domain"
)

var askCmd = &cobra.Command{
	Use:   "ask [file] [question]",
	Short: "Ask a question about a contract",
	Long: `Load a contract and post a question to its conversation, then print
the exchange once the reply has arrived.

The reply is delivered immediately unless --wait is given, in which case the
configured reply delay is observed.`,
	Args: cobra.ExactArgs(2),
	RunE: runAsk,
}

var askWait bool

func init() {
	askCmd.Flags().BoolVar(&askWait, "wait", false, "Observe the configured reply delay")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	session, err := newSession(!askWait)
	if err != nil {
		return err
	}
	defer session.Close()

	ctx := cmd.Context()
	id, err := session.LoadFile(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", args[0], err)
	}
	if err := session.Conversation.PostUserMessage(ctx, id, args[1]); err != nil {
		return fmt.Errorf("failed to post message: %w", err)
	}
	session.Flush()

	for _, ex := range session.Conversation.Log(ctx, id) {
		cmd.Printf("%s: %s\n", speaker(ex.Role), ex.Content)
	}
	return nil
}

func speaker(role domain.Role) string {
	if role == domain.RoleUser {
		return "You"
	}
	return "Assistant"
}
