// Package cli defines the hello-visits command line: serve, migrate, and version.
// Every command reads its settings through config.Load, so flags, environment
// variables, and a .env file all work the same way everywhere.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trentd187/hello-visits/internal/config"
)

// Version is stamped at build time with -ldflags "-X .../internal/cli.Version=...".
var Version = "dev"

// NewRootCmd builds the command tree. A fresh tree per call keeps tests independent.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "hello-visits",
		Short: "Greets visitors by name and keeps a leaderboard of who visits most",
		Long: `hello-visits serves three HTTP endpoints backed by PostgreSQL:

  /v1/hello   greet a visitor and count the visit
  /v2/hello   same, with the first-time/returning decision made by the database
  /v1/top10   the ten most frequent visitors

Settings come from flags, environment variables, or a .env file.`,
		SilenceUsage: true,
	}

	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(newServeCmd(), newMigrateCmd(), newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "hello-visits %s\n", Version)
		},
	}
}

// Execute runs the root command. It is called by main.main().
func Execute() error {
	return NewRootCmd().Execute()
}
