package main

import (
	"fmt"

	"github.com/necdetsanli/guestbookctl/internal/logging"
	"github.com/spf13/cobra"
)

var deleteFlags struct {
	clientConfig
	yes bool
}

var deleteCmd = &cobra.Command{
	Use:   "delete <key>",
	Short: "Delete an entry",
	Long: `Permanently delete a guestbook entry, pending or approved.

Deletion cannot be undone, so the command asks for confirmation unless --yes
is passed.`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)

	addClientFlags(deleteCmd, &deleteFlags.clientConfig)
	deleteCmd.Flags().BoolVar(&deleteFlags.yes, "yes", false, "skip the confirmation prompt")
}

func runDelete(cmd *cobra.Command, args []string) error {
	c, err := deleteFlags.newAdminClient()
	if err != nil {
		return err
	}

	key := args[0]
	if !deleteFlags.yes {
		if !confirm(cmd.InOrStdin(), cmd.OutOrStdout(), fmt.Sprintf("Delete %s? This cannot be undone.", key)) {
			fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
			return nil
		}
	}

	ctx := cmd.Context()
	if err := c.Delete(ctx, key); err != nil {
		recordHistory("delete", key, err)
		return describeErr(err)
	}
	recordHistory("delete", key, nil)
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s.\n", key)

	page, err := c.ListPending(ctx, "")
	if err != nil {
		logger.Warn("refresh after delete failed", logging.Key(key), logging.Err(err))
		return nil
	}
	reportRemaining(cmd, len(page.Entries), page.NextCursor != "")
	return nil
}
