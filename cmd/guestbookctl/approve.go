package main

import (
	"fmt"

	"github.com/necdetsanli/guestbookctl/internal/history"
	"github.com/necdetsanli/guestbookctl/internal/logging"
	"github.com/spf13/cobra"
)

var approveFlags struct {
	clientConfig
}

var approveCmd = &cobra.Command{
	Use:   "approve <key>",
	Short: "Approve a pending entry",
	Long: `Approve a pending guestbook entry so it appears publicly.

The key must carry the "pending:" prefix as printed by "guestbookctl pending".`,
	Args: cobra.ExactArgs(1),
	RunE: runApprove,
}

func init() {
	rootCmd.AddCommand(approveCmd)

	addClientFlags(approveCmd, &approveFlags.clientConfig)
}

func runApprove(cmd *cobra.Command, args []string) error {
	c, err := approveFlags.newAdminClient()
	if err != nil {
		return err
	}

	key := args[0]
	ctx := cmd.Context()

	if err := c.Approve(ctx, key); err != nil {
		recordHistory("approve", key, err)
		return describeErr(err)
	}
	recordHistory("approve", key, nil)
	fmt.Fprintf(cmd.OutOrStdout(), "Approved %s.\n", key)

	// Refresh from the server rather than trusting local bookkeeping; the
	// listing is the source of truth for what is still pending.
	page, err := c.ListPending(ctx, "")
	if err != nil {
		logger.Warn("refresh after approve failed", logging.Key(key), logging.Err(err))
		return nil
	}
	reportRemaining(cmd, len(page.Entries), page.NextCursor != "")
	return nil
}

func reportRemaining(cmd *cobra.Command, n int, more bool) {
	switch {
	case n == 0:
		fmt.Fprintln(cmd.OutOrStdout(), "No pending entries remain.")
	case more:
		fmt.Fprintf(cmd.OutOrStdout(), "%d+ pending entries remain.\n", n)
	default:
		fmt.Fprintf(cmd.OutOrStdout(), "%d pending entries remain.\n", n)
	}
}

// recordHistory logs the action locally, best effort: a broken history
// database must never block moderation.
func recordHistory(action, key string, opErr error) {
	outcome := "ok"
	if opErr != nil {
		outcome = opErr.Error()
	}

	dbPath := cfg.HistoryDB
	if dbPath == "" {
		var err error
		dbPath, err = history.DefaultPath()
		if err != nil {
			logger.Warn("history disabled", logging.Action(action), logging.Err(err))
			return
		}
	}
	db, err := history.Open(dbPath)
	if err != nil {
		logger.Warn("history unavailable", logging.Action(action), logging.Err(err))
		return
	}
	defer db.Close()

	if err := history.Record(db, action, key, outcome); err != nil {
		logger.Warn("history write failed", logging.Action(action), logging.Key(key), logging.Err(err))
	}
}
