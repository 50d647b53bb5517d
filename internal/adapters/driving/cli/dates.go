package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/contractai-cli/internal/adapters/driven/calendar"
)

var datesCmd = &cobra.Command{
	Use:   "dates [file]",
	Short: "List a contract's key dates",
	Long: `Load a contract and list its key dates.

With --ics, each key date is also written to DIR as an iCalendar file
that can be imported into a calendar application.`,
	Args: cobra.ExactArgs(1),
	RunE: runDates,
}

var datesICSDir string

func init() {
	datesCmd.Flags().StringVar(&datesICSDir, "ics", "", "Write one .ics file per key date to `DIR`")
	rootCmd.AddCommand(datesCmd)
}

func runDates(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	session, err := newSession(true)
	if err != nil {
		return err
	}
	defer session.Close()

	ctx := cmd.Context()
	id, err := session.LoadFile(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", args[0], err)
	}
	doc, err := session.Documents.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get document: %w", err)
	}

	cmd.Printf("Key dates for %s:\n\n", doc.Name)
	if len(doc.KeyDates) == 0 {
		cmd.Println("  No key dates found for this contract.")
		return nil
	}
	for _, kd := range doc.KeyDates {
		cmd.Printf("  %-10s  %s\n", kd.Date, kd.Description)
	}

	if datesICSDir == "" {
		return nil
	}
	if err := os.MkdirAll(datesICSDir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", datesICSDir, err)
	}

	exporter := calendar.NewICSExporter(time.Now)
	cmd.Println()
	for _, kd := range doc.KeyDates {
		path := filepath.Join(datesICSDir, calendar.FileName(doc.Name, kd))
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", path, err)
		}
		err = exporter.Export(ctx, doc.Name, kd, f)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return fmt.Errorf("failed to export %s: %w", kd.Date, err)
		}
		cmd.Printf("Wrote %s\n", path)
	}
	return nil
}
