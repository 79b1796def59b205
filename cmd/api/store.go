// cmd/api/store.go
// This file selects and opens the persistence backend named by the STORE setting.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/aoideee/hexbooks/internal/application"
	"github.com/aoideee/hexbooks/internal/data"

	_ "github.com/lib/pq" // Register the PostgreSQL driver with database/sql.
)

// openStore builds the BookStore for settings.Store. The returned close
// function releases the backend's resources and is never nil.
func openStore(ctx context.Context, settings serverConfig, logger *slog.Logger) (application.BookStore, func() error, error) {
	noop := func() error { return nil }

	switch settings.Store {
	case storeMemory:
		return data.NewMemoryStore(data.DefaultSeed()), noop, nil

	case storeDynamoDB:
		client, err := data.NewDynamoClient(ctx, data.DynamoConfig{
			Table:    settings.AWS.Table,
			Region:   settings.AWS.Region,
			Endpoint: settings.AWS.Endpoint,
		})
		if err != nil {
			return nil, nil, err
		}
		logger.Info("using dynamodb table", "table", settings.AWS.Table, "region", settings.AWS.Region, "endpoint", settings.AWS.Endpoint)
		return data.NewDynamoStore(client, settings.AWS.Table), noop, nil

	case storePostgres:
		db, err := openDB(ctx, settings)
		if err != nil {
			return nil, nil, err
		}
		store := data.NewPostgresStore(db, settings.DB.Table)
		if err := store.EnsureSchema(ctx); err != nil {
			db.Close()
			return nil, nil, err
		}
		logger.Info("database connection pool established", "table", settings.DB.Table)
		return store, db.Close, nil

	case storeBadger:
		db, err := badger.Open(badger.DefaultOptions(settings.Badger.Path).WithLoggingLevel(badger.WARNING))
		if err != nil {
			return nil, nil, fmt.Errorf("badger open failed: %w", err)
		}
		logger.Info("badger database opened", "path", settings.Badger.Path)
		return data.NewBadgerStore(db, settings.Badger.Table), db.Close, nil
	}

	return nil, nil, fmt.Errorf("unknown store %q", settings.Store)
}

// openDB opens a PostgreSQL connection pool using the DSN stored in settings,
// then pings the database with a 5-second timeout to confirm it is reachable.
func openDB(ctx context.Context, settings serverConfig) (*sql.DB, error) {
	// sql.Open only validates the DSN format; it does not actually connect yet.
	db, err := sql.Open("postgres", settings.DB.DSN)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err = db.PingContext(ctx)
	if err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}
