// Package main is the entry point for the mylib catalog API server.
// It wires together configuration, the database connection, and the HTTP router.
package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/mylibhq/mylib/internal/data"

	_ "github.com/lib/pq"           // Register the PostgreSQL driver with database/sql.
	_ "github.com/mattn/go-sqlite3" // Register the SQLite driver with database/sql.
)

// appVersion is the current version of the API, shown in logs.
const appVersion = "1.0.0"

// serverConfig holds all the values that can be tweaked at startup via command-line flags.
type serverConfig struct {
	port        int    // TCP port the HTTP server listens on (default 4000)
	environment string // Runtime environment: development, staging, or production
	db          struct {
		driver string // database/sql driver name: sqlite3 or postgres
		dsn    string // Data Source Name for the selected driver
	}
	limiter struct {
		rps     float64 // Sustained requests per second per client IP
		burst   int     // Burst capacity per client IP
		enabled bool    // Rate limiting can be switched off entirely
	}
}

// applicationDependencies bundles every shared resource that HTTP handlers need.
// A pointer to this struct is passed as the receiver on all handler and route methods.
type applicationDependencies struct {
	config serverConfig   // Server configuration loaded from flags
	logger *slog.Logger   // Structured logger that writes to stdout
	models data.Models    // Database model layer for all tables
	wg     sync.WaitGroup // Tracks in-flight background tasks so serve() can drain them
}

// main is the application entry point.
// It parses flags, opens the database, creates the schema if needed,
// wires up dependencies, and starts the HTTP server.
func main() {
	var settings serverConfig

	// Register command-line flags so operators can override defaults at runtime.
	flag.IntVar(&settings.port, "port", 4000, "Server port")
	flag.StringVar(&settings.environment, "env", "development", "Environment(development|staging|production)")
	flag.StringVar(&settings.db.driver, "db-driver", "sqlite3", "Database driver (sqlite3|postgres)")
	flag.StringVar(&settings.db.dsn, "db-dsn", "file:books.db?_busy_timeout=5000", "Database DSN")
	flag.Float64Var(&settings.limiter.rps, "limiter-rps", 2, "Rate limiter requests per second per IP")
	flag.IntVar(&settings.limiter.burst, "limiter-burst", 4, "Rate limiter burst per IP")
	flag.BoolVar(&settings.limiter.enabled, "limiter-enabled", true, "Enable per-IP rate limiting")

	flag.Parse()

	// Create a structured logger that writes human-readable text to stdout.
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	// Open and verify the database connection pool.
	db, err := openDB(settings)
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
	defer db.Close() // Close the pool cleanly when main() returns.

	logger.Info("database connection pool established", "driver", settings.db.driver)

	// Create the catalog tables on first run. There is no migration tooling;
	// the DDL is idempotent, so running it on every start is safe.
	err = data.CreateSchema(db, settings.db.driver)
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}

	// Bundle all shared dependencies into a single struct.
	appInstance := &applicationDependencies{
		config: settings,
		logger: logger,
		models: data.NewModels(db),
	}

	// serve blocks until the server shuts down or encounters a fatal error.
	err = appInstance.serve()
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

// openDB opens a connection pool for the configured driver and DSN,
// then pings the database with a 5-second timeout to confirm it is reachable.
// Returns the pool on success, or an error if the connection cannot be established.
func openDB(settings serverConfig) (*sql.DB, error) {
	// sql.Open only validates the DSN format; it does not actually connect yet.
	db, err := sql.Open(settings.db.driver, settings.db.dsn)
	if err != nil {
		return nil, err
	}

	// Create a context that cancels automatically after 5 seconds.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// PingContext performs a real round-trip to verify the database is reachable.
	err = db.PingContext(ctx)
	if err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}
