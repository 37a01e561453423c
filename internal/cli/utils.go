package cli

import (
	"fmt"

	"lateral-intake/internal/config"
	"lateral-intake/internal/store"
)

// openStore builds the store selected by configuration. The --db flag, when
// set, overrides the environment connection string.
func openStore(cfg config.Config, dbOverride string) (store.ApplicationStore, error) {
	if cfg.IsMemoryMode() {
		return store.NewMemoryStore(), nil
	}
	connStr := cfg.ConnectionString
	if dbOverride != "" {
		connStr = dbOverride
	}
	st, err := store.NewPostgresStore(connStr)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	return st, nil
}

// maskConnectionString hides credentials when echoing connection info.
func maskConnectionString(connStr string) string {
	if len(connStr) > 20 {
		return connStr[:10] + "..." + connStr[len(connStr)-10:]
	}
	return "***"
}
