package config

import (
	"context"
	"time"

	"github.com/akeren/waitlist-backend/internal/log"
	"github.com/akeren/waitlist-backend/internal/store"
)

// Store connection parameters. DATABASE_URL and DATABASE_NAME match what the
// /test diagnostics endpoint reports on.
const (
	DatabaseURLKey  = "DATABASE_URL"
	DatabaseNameKey = "DATABASE_NAME"
)

type StoreConfig struct {
	URI      string
	Database string

	ConnectTimeout time.Duration
}

func NewStoreConfig() *StoreConfig {
	return &StoreConfig{
		URI:            sanitizeEnv(GetValueFromEnvironmentVariable(DatabaseURLKey, "")),
		Database:       sanitizeEnv(GetValueFromEnvironmentVariable(DatabaseNameKey, "")),
		ConnectTimeout: 10 * time.Second,
	}
}

func (sc *StoreConfig) IsConfigured() bool {
	return sc.URI != "" && sc.Database != ""
}

// NewStoreOrNil connects to the document store, or returns nil when the store
// is unconfigured or unreachable. The server still runs without a store: the
// diagnostics endpoint reports the degraded state and waitlist operations
// surface an unavailable-database error per request.
func (sc *StoreConfig) NewStoreOrNil(logger *log.Logger) store.DocumentStore {
	if !sc.IsConfigured() {
		logger.Warn("Document store is not configured; proceeding without a database",
			"missing", missingStoreEnvVars(sc))
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), sc.ConnectTimeout)
	defer cancel()

	documentStore, err := store.NewMongoStore(ctx, sc.URI, sc.Database)
	if err != nil {
		logger.Error("Failed to connect to document store; proceeding without a database", "error", err)
		return nil
	}

	logger.Info("Document store connection established successfully", "database", sc.Database)
	return documentStore
}

func missingStoreEnvVars(sc *StoreConfig) string {
	switch {
	case sc.URI == "" && sc.Database == "":
		return DatabaseURLKey + ", " + DatabaseNameKey
	case sc.URI == "":
		return DatabaseURLKey
	default:
		return DatabaseNameKey
	}
}

func CloseStore(documentStore store.DocumentStore, logger *log.Logger) {
	if documentStore == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := documentStore.Disconnect(ctx); err != nil {
		logger.Error("Failed to disconnect document store", "error", err)
	} else {
		logger.Info("Document store disconnected successfully")
	}
}
