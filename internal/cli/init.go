// Package cli provides common CLI initialization utilities shared by
// cmd/fatura and cmd/migrate.
package cli

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"fatura/internal/config"
	"fatura/internal/services"
	"fatura/internal/storage"
)

// Store is a recognition store with a session-scoped lifecycle: opened
// once per session, closed when the session ends.
type Store interface {
	services.RecognitionStore
	Close() error
}

// SetupLogger initializes structured logging with default settings.
// Returns the configured logger and sets it as the default logger.
func SetupLogger() *slog.Logger {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)
	return logger
}

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as this is optional in production.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration and validates it.
// Returns the config or exits the process on validation failure.
func LoadAndValidateConfig(logger *slog.Logger) *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}
	return cfg
}

// InitStore opens the recognition store selected by the configuration.
// An unreachable store is fatal: it exits here rather than surfacing on
// the first lookup.
func InitStore(logger *slog.Logger, cfg *config.Config) Store {
	if cfg.StoreBackend == "memory" {
		logger.Info("Initialized in-memory recognition store", "backend", cfg.StoreBackend)
		return storage.NewMemoryStore()
	}

	repo, err := storage.NewSQLiteRepository(cfg.SQLiteDBPath)
	if err != nil {
		logger.Error("Failed to open recognition store", "error", err, "path", cfg.SQLiteDBPath)
		os.Exit(1)
	}
	logger.Info("Initialized SQLite recognition store", "backend", cfg.StoreBackend, "path", cfg.SQLiteDBPath)
	return repo
}
