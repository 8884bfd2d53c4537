package main

import (
	"fmt"

	"github.com/necdetsanli/guestbookctl/internal/api"
	"github.com/spf13/cobra"
)

var signFlags struct {
	clientConfig
	name      string
	website   string
	message   string
	challenge string
	answer    string
}

var signCmd = &cobra.Command{
	Use:   "sign",
	Short: "Sign the guestbook",
	Long: `Submit a new guestbook entry for moderation.

The worker may require an anti-spam challenge; pass its id and your answer
with --challenge and --answer. The tool forwards both untouched.`,
	RunE: runSign,
}

func init() {
	rootCmd.AddCommand(signCmd)

	addClientFlags(signCmd, &signFlags.clientConfig)
	signCmd.Flags().StringVar(&signFlags.name, "name", "", "your name (required)")
	signCmd.Flags().StringVar(&signFlags.website, "website", "", "your website (optional, http(s) URL)")
	signCmd.Flags().StringVar(&signFlags.message, "message", "", "the message (required)")
	signCmd.Flags().StringVar(&signFlags.challenge, "challenge", "", "anti-spam challenge id")
	signCmd.Flags().StringVar(&signFlags.answer, "answer", "", "anti-spam challenge answer")
	_ = signCmd.MarkFlagRequired("name")
	_ = signCmd.MarkFlagRequired("message")
}

func runSign(cmd *cobra.Command, args []string) error {
	c, err := signFlags.newPublicClient()
	if err != nil {
		return err
	}

	sub := api.SubmitRequest{
		Name:      signFlags.name,
		Website:   signFlags.website,
		Message:   signFlags.message,
		Challenge: signFlags.challenge,
		Answer:    signFlags.answer,
	}
	if err := c.Submit(cmd.Context(), sub); err != nil {
		return describeErr(err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Thanks for signing! Your entry awaits moderation.")
	return nil
}
