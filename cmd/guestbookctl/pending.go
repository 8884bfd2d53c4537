package main

import (
	"encoding/json"
	"fmt"

	"github.com/necdetsanli/guestbookctl/internal/logging"
	"github.com/necdetsanli/guestbookctl/internal/state"
	"github.com/spf13/cobra"
)

var pendingFlags struct {
	clientConfig
	cursor string
	all    bool
	asJSON bool
}

var pendingCmd = &cobra.Command{
	Use:   "pending",
	Short: "List entries awaiting moderation",
	Long: `List guestbook entries awaiting moderation, newest page first.

Without flags this is a reset fetch of the first page. Pass --cursor to
continue from a previous page, or --all to follow cursors to the end.`,
	RunE: runPending,
}

func init() {
	rootCmd.AddCommand(pendingCmd)

	addClientFlags(pendingCmd, &pendingFlags.clientConfig)
	pendingCmd.Flags().StringVar(&pendingFlags.cursor, "cursor", "", "continuation cursor from a previous page")
	pendingCmd.Flags().BoolVar(&pendingFlags.all, "all", false, "follow cursors until the listing is exhausted")
	pendingCmd.Flags().BoolVar(&pendingFlags.asJSON, "json", false, "print raw JSON instead of a table")
}

func runPending(cmd *cobra.Command, args []string) error {
	c, err := pendingFlags.newAdminClient()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	st := state.Reset()

	cursor := pendingFlags.cursor
	reset := cursor == ""
	for {
		page, err := c.ListPending(ctx, cursor)
		if err != nil {
			if st.Len() > 0 {
				// Continuation failure: keep what we already have on screen.
				fmt.Fprintf(cmd.ErrOrStderr(), "continuation failed after %d entries: %v\n", st.Len(), describeErr(err))
				break
			}
			return describeErr(err)
		}
		st = st.Apply(page, reset)
		reset = false
		logger.Debug("fetched pending page", logging.Count(len(page.Entries)), logging.Cursor(st.Cursor))

		if !pendingFlags.all || !st.HasMore() {
			break
		}
		cursor = st.Cursor
	}

	out := cmd.OutOrStdout()
	if pendingFlags.asJSON {
		b, err := json.MarshalIndent(st.Entries, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(b))
		return nil
	}

	if st.Len() == 0 {
		fmt.Fprintln(out, "No pending entries.")
		return nil
	}

	printEntries(out, st.Entries)
	if st.HasMore() {
		fmt.Fprintf(out, "\nMore available: rerun with --cursor %s\n", st.Cursor)
	}
	return nil
}
