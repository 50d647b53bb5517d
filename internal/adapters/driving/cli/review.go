package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/contractai-cli/internal/core/domain"
)

var reviewCmd = &cobra.Command{
	Use:   "review [file]...",
	Short: "List flagged clauses and highlight one in the text",
	Long: `Load one or more contract files and review the clause issues of the
active document. The last file loaded is active unless --active picks another.

With --issue, the issue's text snippet is highlighted in the document text
and its details are printed below it.

Examples:
  contractai review lease.txt
  contractai review lease.txt msa.md --active 1 --issue 2`,
	Args: cobra.MinimumNArgs(1),
	RunE: runReview,
}

var (
	reviewActive int
	reviewIssue  int
	reviewPlain  bool
)

func init() {
	reviewCmd.Flags().IntVarP(&reviewActive, "active", "a", 0, "Document to review, 1-based in load order")
	reviewCmd.Flags().IntVarP(&reviewIssue, "issue", "i", 0, "Clause issue to highlight, 1-based")
	reviewCmd.Flags().BoolVar(&reviewPlain, "plain", false, "Mark highlights with [[ ]] even on a terminal")
	rootCmd.AddCommand(reviewCmd)
}

func runReview(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	session, err := newSession(true)
	if err != nil {
		return err
	}
	defer session.Close()

	ctx := cmd.Context()
	ids, err := session.LoadFiles(ctx, args)
	if err != nil {
		return err
	}

	if reviewActive != 0 {
		if reviewActive < 1 || reviewActive > len(ids) {
			return fmt.Errorf("%w: --active %d with %d documents loaded", domain.ErrOutOfRange, reviewActive, len(ids))
		}
		if err := session.Documents.SetActive(ctx, ids[reviewActive-1]); err != nil {
			return fmt.Errorf("failed to set active document: %w", err)
		}
	}
	if reviewIssue != 0 {
		if err := session.Clauses.Select(ctx, reviewIssue-1); err != nil {
			return fmt.Errorf("failed to select issue %d: %w", reviewIssue, err)
		}
	}

	doc, err := session.Documents.Active(ctx)
	if err != nil {
		return fmt.Errorf("failed to get active document: %w", err)
	}
	docs, err := session.Documents.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list documents: %w", err)
	}

	if len(docs) > 1 {
		cmd.Println("Documents:")
		printDocuments(cmd, docs, doc.ID)
		cmd.Println()
	}

	selected, hasSelection := session.Clauses.Selected(ctx)
	cmd.Printf("Clause issues for %s:\n\n", doc.Name)
	if len(doc.ClauseIssues) == 0 {
		cmd.Println("  No clause issues found for this contract.")
	}
	for i, issue := range doc.ClauseIssues {
		marker := " "
		if hasSelection && i == selected {
			marker = ">"
		}
		cmd.Printf("%s %d. [%s] %s: %s\n", marker, i+1, issue.Severity, issue.Clause, issue.Issue)
	}

	segments, err := session.Clauses.Segments(ctx)
	if err != nil {
		return fmt.Errorf("failed to render text: %w", err)
	}
	mark := highlighter(cmd.OutOrStderr(), reviewPlain, session.Settings().HighlightColor)
	cmd.Println()
	cmd.Println("Text:")
	cmd.Println()
	cmd.Println(renderSegments(segments, mark))

	current, err := session.Clauses.Current(ctx)
	if err != nil {
		return fmt.Errorf("failed to get selected issue: %w", err)
	}
	if current != nil {
		cmd.Println()
		cmd.Println("Selected issue:")
		cmd.Printf("  Clause:   %s\n", current.Clause)
		cmd.Printf("  Issue:    %s\n", current.Issue)
		cmd.Printf("  Severity: %s\n", current.Severity)
		if !containsHighlight(segments) {
			cmd.Println("  (snippet not found in the text)")
		}
	}
	return nil
}

func containsHighlight(segments []domain.Segment) bool {
	for _, s := range segments {
		if s.Highlighted() {
			return true
		}
	}
	return false
}
