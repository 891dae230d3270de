package cli

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/doeshing/ollash/internal/app"
)

const defaultHistoryLimit = 20

func newHistoryCommand(container *app.Container) *cobra.Command {
	var (
		limit  int
		search string
	)

	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "List recent invocations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listHistory(cmd.OutOrStdout(), container, limit, search)
		},
	}
	historyCmd.Flags().IntVar(&limit, "limit", defaultHistoryLimit, "Max entries to show")
	historyCmd.Flags().StringVar(&search, "search", "", "Filter by keyword in prompt or command")

	historyCmd.AddCommand(
		&cobra.Command{
			Use:   "clear",
			Short: "Delete all history entries",
			RunE: func(cmd *cobra.Command, args []string) error {
				if container.HistoryStore == nil {
					return fmt.Errorf("history is disabled")
				}
				return container.HistoryStore.Clear()
			},
		},
		&cobra.Command{
			Use:   "export <path>",
			Short: "Export history to a JSONL file",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if container.HistoryStore == nil {
					return fmt.Errorf("history is disabled")
				}
				return container.HistoryStore.ExportJSON(args[0])
			},
		},
	)

	return historyCmd
}

func listHistory(out io.Writer, container *app.Container, limit int, search string) error {
	if container.HistoryStore == nil {
		return fmt.Errorf("history is disabled")
	}
	records, err := container.HistoryStore.Records(limit, search)
	if err != nil {
		return fmt.Errorf("failed to retrieve history records: %w", err)
	}
	if len(records) == 0 {
		fmt.Fprintln(out, "No history recorded yet.")
		return nil
	}
	for _, rec := range records {
		status := "shown"
		if rec.Executed {
			status = fmt.Sprintf("exit %d", rec.ExitCode)
		}
		marker := " "
		if rec.Destructive {
			marker = "!"
		}
		fmt.Fprintf(out, "%s %-14s %-8s %q -> %s\n",
			marker, humanize.Time(rec.Timestamp), status, rec.Prompt, rec.Command)
	}
	return nil
}
