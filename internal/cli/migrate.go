// This file handles the "migrate" command group: migrate up and migrate down.
//
// The server applies pending migrations on startup unless --skip-migrations is
// set; these commands exist for deployments that run schema changes as a
// separate step, and for rolling a bad migration back by hand.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trentd187/hello-visits/internal/config"
	"github.com/trentd187/hello-visits/internal/database"
	"github.com/trentd187/hello-visits/internal/logging"
)

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	// --- migrate up ---
	// Same code path as serve's startup migration: versioned SQL files on
	// PostgreSQL, AutoMigrate on SQLite.
	up := &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			log, err := logging.New(cfg.LogLevel, cfg.IsProduction())
			if err != nil {
				return err
			}

			db, err := database.Connect(cfg, log)
			if err != nil {
				return err
			}
			defer database.Close(db)

			if err := database.Migrate(db, cfg); err != nil {
				return err
			}
			log.Info("schema is up to date")
			return nil
		},
	}

	// --- migrate down ---
	// Only the PostgreSQL schema is versioned; SQLite has no down files to run.
	var steps int
	down := &cobra.Command{
		Use:   "down",
		Short: "Revert the most recent migrations (PostgreSQL only)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			if cfg.DatabaseDriver != config.DriverPostgres {
				return fmt.Errorf("migrate down needs DATABASE_DRIVER=%s, got %q", config.DriverPostgres, cfg.DatabaseDriver)
			}
			// migrate talks to the database itself, so no GORM connection is opened here
			if err := database.RollbackMigrations(cfg.DatabaseURL, cfg.MigrationsDir, steps); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "reverted %d migration(s)\n", steps)
			return nil
		},
	}
	down.Flags().IntVar(&steps, "steps", 1, "number of migrations to revert")

	cmd.AddCommand(up, down)
	return cmd
}
