package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version and the file types contractai can load",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("contractai %s\n", version)
		cmd.Printf("Formats: %s\n", strings.Join(ingestService.Extensions(), " "))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
