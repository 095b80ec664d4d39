// This file handles the "serve" command: it wires config, logging, the database,
// metrics, and the fiber app together and runs the HTTP server until the process
// receives SIGINT or SIGTERM.
//
// Startup order matters: config first (everything else reads it), then the logger,
// then the database, then migrations, and only then does the server start accepting
// requests.
package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/trentd187/hello-visits/internal/config"
	"github.com/trentd187/hello-visits/internal/database"
	"github.com/trentd187/hello-visits/internal/logging"
	"github.com/trentd187/hello-visits/internal/metrics"
	"github.com/trentd187/hello-visits/internal/router"
	"github.com/trentd187/hello-visits/internal/visits"
)

// shutdownTimeout is how long in-flight requests get to finish after SIGINT/SIGTERM.
const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	var skipMigrations bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cmd, skipMigrations)
		},
	}
	cmd.Flags().BoolVar(&skipMigrations, "skip-migrations", false, "do not migrate the schema on startup")
	return cmd
}

func serve(ctx context.Context, cmd *cobra.Command, skipMigrations bool) error {
	// --- Step 1: Load configuration ---
	// Flags set on the command line win over env vars and .env.
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}

	// --- Step 2: Build the logger ---
	// JSON output in production, human-readable text everywhere else.
	log, err := logging.New(cfg.LogLevel, cfg.IsProduction())
	if err != nil {
		return err
	}

	// --- Step 3: Connect to the database ---
	// Registers the read replica too when REPLICA_DATABASE_URL is set.
	db, err := database.Connect(cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.WithError(err).Warn("closing database")
		}
	}()

	// --- Step 4: Migrate ---
	// Applying pending migrations on startup keeps the schema in step with the binary.
	if !skipMigrations {
		if err := database.Migrate(db, cfg); err != nil {
			return err
		}
	}

	// --- Step 5: Build the app ---
	// The store is the only stateful dependency; handlers get it through router.Deps.
	app := router.New(router.Deps{
		Store:   visits.NewStore(db),
		Metrics: metrics.New(),
		Log:     log,
		Ping:    func(ctx context.Context) error { return database.Ping(ctx, db) },
	})

	// --- Step 6: Serve until the listener fails or a signal arrives ---
	// Listen blocks, so it runs in its own goroutine and reports back on listenErr.
	listenErr := make(chan error, 1)
	go func() {
		log.WithField("port", cfg.Port).Info("starting server")
		listenErr <- app.Listen(":" + cfg.Port)
	}()

	select {
	case err := <-listenErr:
		return err
	case <-ctx.Done():
	}

	// --- Step 7: Graceful shutdown ---
	// Stop accepting connections and give in-flight requests shutdownTimeout to finish.
	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return app.ShutdownWithContext(shutdownCtx)
}
