package main

import (
	"fmt"
	"time"

	"github.com/necdetsanli/guestbookctl/internal/history"
	"github.com/spf13/cobra"
)

var historyFlags struct {
	limit int
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show moderation actions performed from this machine",
	Long: `Show the local log of approve/delete actions this tool performed.

The log lives on this machine only; it is not the server's view of the
guestbook.`,
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().IntVar(&historyFlags.limit, "limit", 50, "maximum actions to show")
}

func runHistory(cmd *cobra.Command, args []string) error {
	dbPath := cfg.HistoryDB
	if dbPath == "" {
		var err error
		dbPath, err = history.DefaultPath()
		if err != nil {
			return err
		}
	}

	db, err := history.Open(dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	actions, err := history.List(db, historyFlags.limit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(actions) == 0 {
		fmt.Fprintln(out, "No recorded actions.")
		return nil
	}

	fmt.Fprintf(out, "%-19s  %-8s  %-32s  %s\n", "TIME", "ACTION", "KEY", "OUTCOME")
	for _, a := range actions {
		ts := time.Unix(a.PerformedAt, 0).Format("2006-01-02 15:04:05")
		fmt.Fprintf(out, "%-19s  %-8s  %-32s  %s\n", ts, a.Action, a.EntryKey, a.Outcome)
	}
	return nil
}
