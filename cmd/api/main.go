// Package main is the entry point for the books API server.
// It wires together configuration, the persistence backend, the application
// service, and the HTTP router.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/aoideee/hexbooks/internal/application"
)

// appVersion is the current version of the API, shown in logs.
const appVersion = "1.0.0"

// applicationDependencies bundles every shared resource that HTTP handlers need.
// A pointer to this struct is passed as the receiver on all handler and route methods.
type applicationDependencies struct {
	config  serverConfig             // Server configuration loaded at startup
	logger  *slog.Logger             // Structured logger that writes to stdout
	books   application.BookUseCases // Inbound port for the book use cases
	metrics *httpMetrics             // Prometheus collectors for HTTP traffic
}

func newApplication(settings serverConfig, logger *slog.Logger, books application.BookUseCases) *applicationDependencies {
	return &applicationDependencies{
		config:  settings,
		logger:  logger,
		books:   books,
		metrics: newHTTPMetrics(),
	}
}

// main parses configuration, opens the store, wires up dependencies, and
// starts the HTTP server. Any configuration problem stops the process before
// a single request is served.
func main() {
	settings, err := loadConfig()
	if err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}

	// Flags override the environment for the values operators change most.
	flag.IntVar(&settings.Port, "port", settings.Port, "Server port")
	flag.StringVar(&settings.Environment, "env", settings.Environment, "Environment(development|staging|production)")
	flag.StringVar(&settings.Store, "store", settings.Store, "Persistence backend(memory|dynamodb|postgres|badger)")
	flag.Parse()

	logger := newLogger(settings.LogLevel)

	if err := settings.validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	store, closeStore, err := openStore(context.Background(), settings, logger)
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}

	app := newApplication(settings, logger, application.NewBookService(store))
	logger.Info("starting books api", "version", appVersion, "store", settings.Store)

	err = app.serve()
	if cerr := closeStore(); cerr != nil {
		logger.Error("closing store", "error", cerr)
	}
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

// newLogger creates a structured logger that writes human-readable text to stdout.
func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}
