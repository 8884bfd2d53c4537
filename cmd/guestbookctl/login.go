package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	"github.com/necdetsanli/guestbookctl/internal/client"
	"github.com/necdetsanli/guestbookctl/internal/token"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var loginFlags struct {
	clientConfig
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Store the admin token for this session",
	Long: `Prompt for the admin bearer token and store it for the current session.

The token is kept in a file under the OS temp directory, readable only by
you, and does not survive a reboot. Pass --token to skip the prompt (note
that it then lands in shell history).`,
	RunE: runLogin,
}

func init() {
	rootCmd.AddCommand(loginCmd)

	addClientFlags(loginCmd, &loginFlags.clientConfig)
}

func runLogin(cmd *cobra.Command, args []string) error {
	raw := loginFlags.token
	if raw == "" {
		var err error
		raw, err = promptToken(cmd)
		if err != nil {
			return err
		}
	}

	tok := token.Sanitize(raw)
	if tok == "" {
		return fmt.Errorf("token failed validation: need 20-2048 characters from [A-Za-z0-9._~+=/-]")
	}

	store := sessionStore()
	if err := store.Set(tok); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Token stored in %s.\n", store.Path())

	// Courtesy check; the stored token stays either way, the server alone
	// decides validity over time.
	g, err := loginFlags.guard()
	if err != nil {
		return err
	}
	c := client.New(g, tok)
	c.SetTimeout(cfg.Timeout)

	page, err := c.ListPending(cmd.Context(), "")
	switch {
	case errors.Is(err, client.ErrUnauthorized):
		fmt.Fprintln(cmd.OutOrStdout(), "Warning: the worker rejected this token. Stored anyway.")
	case err != nil:
		fmt.Fprintf(cmd.OutOrStdout(), "Could not verify token: %v\n", err)
	default:
		reportRemaining(cmd, len(page.Entries), page.NextCursor != "")
	}
	return nil
}

func promptToken(cmd *cobra.Command) (string, error) {
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		fmt.Fprint(cmd.OutOrStdout(), "Admin token: ")
		b, err := term.ReadPassword(fd)
		fmt.Fprintln(cmd.OutOrStdout())
		if err != nil {
			return "", fmt.Errorf("read token: %w", err)
		}
		return string(b), nil
	}

	// Piped input: read a single line.
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read token: %w", err)
	}
	return line, nil
}
