// Package config reads runtime configuration from the environment, with an
// optional .env file for local development.
package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// StoreType selects the application-store backing.
type StoreType string

const (
	MemoryStore   StoreType = "memory"
	PostgresStore StoreType = "postgres"
)

// Config is the full runtime configuration.
type Config struct {
	Store             StoreType
	ConnectionString  string
	ListenAddr        string
	SessionSigningKey string
	SignInURL         string
	LogLevel          string
	LogDev            bool
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first when present; real environment variables win.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		Store:             storeTypeFromEnv(),
		ConnectionString:  getEnv("DB_CONN_STRING", "postgres://localhost:5432/postgres?sslmode=disable"),
		ListenAddr:        getEnv("LISTEN_ADDR", ":8080"),
		SessionSigningKey: os.Getenv("SESSION_SIGNING_KEY"),
		SignInURL:         getEnv("SIGN_IN_URL", "/sign-in"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LogDev:            os.Getenv("LOG_DEV") == "1",
	}
	return cfg
}

func storeTypeFromEnv() StoreType {
	switch strings.ToLower(os.Getenv("INTAKE_STORE_TYPE")) {
	case "memory", "mem":
		return MemoryStore
	case "postgresql", "postgres", "db", "":
		return PostgresStore
	default:
		// Unknown types fall back to PostgreSQL.
		return PostgresStore
	}
}

// IsMemoryMode reports whether the in-memory store is selected.
func (c Config) IsMemoryMode() bool {
	return c.Store == MemoryStore
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
