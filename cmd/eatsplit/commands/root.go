// Package commands implements the eatsplit command line.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/mmynk/eatsplit/internal/config"
	"github.com/mmynk/eatsplit/pkg/logging"
)

var (
	cfg       config.Config
	logLevel  string
	logFormat string
)

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "eatsplit",
		Short:         "Split bills with friends and track who owes whom",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load()
			if err != nil {
				return err
			}
			cfg = loaded

			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if cmd.Flags().Changed("log-format") {
				cfg.LogFormat = logFormat
			}
			logging.Setup(cfg.LogLevel, cfg.LogFormat)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error (overrides LOG_LEVEL)")
	root.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format: text or json (overrides LOG_FORMAT)")

	root.AddCommand(serveCmd(), friendsCmd())
	return root
}
