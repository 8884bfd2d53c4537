package main

import (
	"encoding/json"
	"fmt"

	"github.com/necdetsanli/guestbookctl/internal/state"
	"github.com/spf13/cobra"
)

var entriesFlags struct {
	clientConfig
	cursor string
	all    bool
	asJSON bool
}

var entriesCmd = &cobra.Command{
	Use:   "entries",
	Short: "Browse the public guestbook",
	Long:  `List approved guestbook entries as visitors see them. No token required.`,
	RunE:  runEntries,
}

func init() {
	rootCmd.AddCommand(entriesCmd)

	addClientFlags(entriesCmd, &entriesFlags.clientConfig)
	entriesCmd.Flags().StringVar(&entriesFlags.cursor, "cursor", "", "continuation cursor from a previous page")
	entriesCmd.Flags().BoolVar(&entriesFlags.all, "all", false, "follow cursors until the listing is exhausted")
	entriesCmd.Flags().BoolVar(&entriesFlags.asJSON, "json", false, "print raw JSON instead of a table")
}

func runEntries(cmd *cobra.Command, args []string) error {
	c, err := entriesFlags.newPublicClient()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	st := state.Reset()

	cursor := entriesFlags.cursor
	reset := cursor == ""
	for {
		page, err := c.ListApproved(ctx, cursor)
		if err != nil {
			if st.Len() > 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "continuation failed after %d entries: %v\n", st.Len(), describeErr(err))
				break
			}
			return describeErr(err)
		}
		st = st.Apply(page, reset)
		reset = false

		if !entriesFlags.all || !st.HasMore() {
			break
		}
		cursor = st.Cursor
	}

	out := cmd.OutOrStdout()
	if entriesFlags.asJSON {
		b, err := json.MarshalIndent(st.Entries, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(b))
		return nil
	}

	if st.Len() == 0 {
		fmt.Fprintln(out, "The guestbook is empty.")
		return nil
	}

	printEntries(out, st.Entries)
	if st.HasMore() {
		fmt.Fprintf(out, "\nMore available: rerun with --cursor %s\n", st.Cursor)
	}
	return nil
}
