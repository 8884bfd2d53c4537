package main

import (
	"fmt"
	"os"

	"github.com/necdetsanli/guestbookctl/internal/config"
	"github.com/necdetsanli/guestbookctl/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "guestbookctl",
	Short: "Moderate and sign the guestbook",
	Long: `guestbookctl talks to the guestbook worker API: it lists and moderates
pending entries (approve/delete), browses the public guestbook, and signs it.

Admin commands need a bearer token; run "guestbookctl login" once per session
or set GUESTBOOK_ADMIN_TOKEN.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("loading configuration: %w", err)
		}
		logger, err = logging.New(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
		if err != nil {
			return fmt.Errorf("initializing logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			logging.Sync(logger)
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
