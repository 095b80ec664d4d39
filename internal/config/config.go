// Package config handles loading and validating runtime configuration for the hello-visits service.
// Configuration values (like the database URL and API port) are read from environment variables
// rather than being hardcoded, so the same binary can run in dev, staging, and production
// without changing any code. Command-line flags registered by the CLI override the environment.
package config

import (
	"fmt"
	"strings"

	// godotenv reads a .env file and loads its key=value pairs into the process environment.
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	// viper merges defaults, environment variables, and bound flags into one lookup.
	"github.com/spf13/viper"
)

// Supported values for DATABASE_DRIVER.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite" // Single-file database for local development and tests
)

// Config holds all runtime configuration values for the application.
type Config struct {
	Port               string // The TCP port the HTTP server will listen on (e.g., "8080")
	DatabaseURL        string // Primary database DSN; a postgres:// URL, or a file path for sqlite
	ReplicaDatabaseURL string // Optional read replica DSN; the leaderboard reads from it when set
	DatabaseDriver     string // "postgres" or "sqlite"
	MigrationsDir      string // Directory holding the golang-migrate .sql files
	MaxOpenConns       int    // Upper bound on pooled connections per database
	LogLevel           string // logrus level name: "debug", "info", "warn", "error"
	Env                string // The runtime environment: "development", "staging", or "production"
}

// Keys are flag-style (dashes); viper maps them to env vars like DATABASE_URL.
const (
	keyPort               = "port"
	keyDatabaseURL        = "database-url"
	keyReplicaDatabaseURL = "replica-database-url"
	keyDatabaseDriver     = "database-driver"
	keyMigrationsDir      = "migrations-dir"
	keyMaxOpenConns       = "db-max-open-conns"
	keyLogLevel           = "log-level"
	keyEnv                = "env"
)

// Load reads configuration from a .env file (if present), environment variables, and
// any flags in fs that were explicitly set. fs may be nil.
func Load(fs *pflag.FlagSet) (*Config, error) {
	// A missing .env is fine: in production the deployment platform sets real env vars.
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(keyPort, "8080")
	v.SetDefault(keyDatabaseDriver, DriverPostgres)
	v.SetDefault(keyMigrationsDir, "migrations")
	v.SetDefault(keyMaxOpenConns, 10)
	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keyEnv, "development")

	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return nil, fmt.Errorf("config: bind flags: %w", err)
		}
	}

	cfg := &Config{
		Port:               v.GetString(keyPort),
		DatabaseURL:        v.GetString(keyDatabaseURL),
		ReplicaDatabaseURL: v.GetString(keyReplicaDatabaseURL),
		DatabaseDriver:     strings.ToLower(v.GetString(keyDatabaseDriver)),
		MigrationsDir:      v.GetString(keyMigrationsDir),
		MaxOpenConns:       v.GetInt(keyMaxOpenConns),
		LogLevel:           v.GetString(keyLogLevel),
		Env:                v.GetString(keyEnv),
	}
	return cfg, cfg.Validate()
}

// Validate checks the settings the server cannot start without.
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("config: DATABASE_URL is required")
	}
	switch c.DatabaseDriver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("config: unsupported DATABASE_DRIVER %q (want %q or %q)", c.DatabaseDriver, DriverPostgres, DriverSQLite)
	}
	if c.MaxOpenConns < 1 {
		return fmt.Errorf("config: DB_MAX_OPEN_CONNS must be at least 1, got %d", c.MaxOpenConns)
	}
	return nil
}

// IsProduction reports whether the service runs with production settings.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// RegisterFlags adds the command-line flags that Load understands to fs.
// Flags left at their defaults do not override environment variables.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String(keyPort, "8080", "HTTP listen port (env PORT)")
	fs.String(keyDatabaseURL, "", "primary database DSN (env DATABASE_URL)")
	fs.String(keyReplicaDatabaseURL, "", "read replica DSN for the leaderboard (env REPLICA_DATABASE_URL)")
	fs.String(keyDatabaseDriver, DriverPostgres, "database driver: postgres or sqlite (env DATABASE_DRIVER)")
	fs.String(keyMigrationsDir, "migrations", "directory with SQL migration files (env MIGRATIONS_DIR)")
	fs.String(keyLogLevel, "info", "log level: debug, info, warn, error (env LOG_LEVEL)")
}
