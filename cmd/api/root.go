package main

import (
	"os"

	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "mun-coordinator",
	Short: "MUN session coordinator",
	Long: `mun-coordinator accepts delegate websocket connections, groups them into
committee sessions, plans each chat message into specialist tasks and
broadcasts the results to everyone in the session.

With no subcommand it runs the server, same as "serve".`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a config file (default: config.yaml in ./config, . or /etc/app/)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}
