package cli

import (
	"errors"
	"time"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect the local filing history",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List past filings, newest first",
	RunE:  runHistoryList,
}

var historyListLimit int

func init() {
	historyListCmd.Flags().IntVar(
		&historyListLimit, "limit", 20, "Maximum entries to show (0 for all)")

	historyCmd.AddCommand(historyListCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	if openHistory == nil {
		return errors.New("history store not configured")
	}

	history, closer, err := openHistory()
	if err != nil {
		return err
	}
	defer closer.Close()

	entries, err := history.List(cmd.Context(), historyListLimit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		cmd.Println("No filings recorded yet.")
		return nil
	}

	for _, e := range entries {
		cmd.Printf("%s  %s\n", e.FiledAt.Local().Format(time.RFC3339), e.LocalPath)
		cmd.Printf("    group %q in %s/%s, row %s\n", e.GroupLabel, e.SpreadsheetID, e.SheetName, e.AppendedRange)
		cmd.Printf("    %s\n", e.Link)
	}
	return nil
}
