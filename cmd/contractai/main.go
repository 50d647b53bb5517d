// Command contractai reviews contract files from the terminal.
package main

import (
	"os"

	"github.com/custodia-labs/contractai-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/contractai-cli/internal/app"
)

func main() {
	// Settings stay lazy so --config-dir is honoured.
	cli.SetServices(nil, app.NewIngestService())

	// cobra reports the error itself.
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
