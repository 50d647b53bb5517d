package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/contractai-cli/internal/adapters/driven/export"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]...",
	Short: "Export a workspace snapshot",
	Long: `Load contract files and export a snapshot of the workspace: the loaded
documents, the active document, its highlighted text and its conversation.

Formats: json, yaml, markdown.

Examples:
  contractai export lease.txt --format yaml
  contractai export lease.txt msa.md --issue 1 --format markdown -o report.md`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExport,
}

var (
	exportFormat string
	exportOutput string
	exportIssue  int
)

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json",
		"Output format ("+strings.Join(export.Formats(), ", ")+")")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Write to file instead of stdout")
	exportCmd.Flags().IntVarP(&exportIssue, "issue", "i", 0, "Clause issue to highlight, 1-based")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	exporter, err := export.NewExporter(exportFormat)
	if err != nil {
		return err
	}

	session, err := newSession(true)
	if err != nil {
		return err
	}
	defer session.Close()

	ctx := cmd.Context()
	if _, err := session.LoadFiles(ctx, args); err != nil {
		return err
	}
	if exportIssue != 0 {
		if err := session.Clauses.Select(ctx, exportIssue-1); err != nil {
			return fmt.Errorf("failed to select issue %d: %w", exportIssue, err)
		}
	}

	snapshot, err := session.Snapshot(ctx)
	if err != nil {
		return fmt.Errorf("failed to build snapshot: %w", err)
	}

	var w io.Writer = cmd.OutOrStdout()
	if exportOutput != "" {
		f, err := os.Create(exportOutput)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", exportOutput, err)
		}
		defer f.Close()
		w = f
	}

	if err := exporter.Export(snapshot, w); err != nil {
		return fmt.Errorf("failed to export: %w", err)
	}
	if exportOutput != "" {
		cmd.Printf("Exported to %s\n", exportOutput)
	}
	return nil
}
