package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/viper"

	"github.com/ninamercado/snackflow/internal/config"
	"github.com/ninamercado/snackflow/internal/llm"
	"github.com/ninamercado/snackflow/internal/parser"
	"github.com/ninamercado/snackflow/internal/sheets"
	"github.com/ninamercado/snackflow/internal/storage"
)

// newParser builds the order parser from configuration. A missing API key
// yields a deterministic-only parser, not an error.
func newParser(logger *slog.Logger) (*parser.Parser, error) {
	cfg := llm.Config{
		Provider: viper.GetString("llm.provider"),
		Model:    viper.GetString("llm.model"),
		APIKey:   viper.GetString("llm.api_key"),
	}
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("ANTHROPIC_API_KEY")
	}

	client, err := llm.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create completion client: %w", err)
	}
	if client == nil {
		logger.Info("no completion API key configured, using regex strategy only")
	}

	return parser.New(client, logger), nil
}

// newStore opens the local order history database.
func newStore(ctx context.Context) (*storage.SQLiteStorage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = config.DefaultDatabasePath()
	}

	store, err := storage.NewSQLiteStorage(config.ExpandPath(dbPath))
	if err != nil {
		return nil, fmt.Errorf("failed to open order database: %w", err)
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to migrate order database: %w", err)
	}

	return store, nil
}

// newLedgerWriter builds the Google Sheets writer from the environment.
func newLedgerWriter(ctx context.Context, logger *slog.Logger) (*sheets.Writer, error) {
	cfg := sheets.DefaultConfig()
	if err := cfg.LoadFromEnv(); err != nil {
		return nil, err
	}
	if name := viper.GetString("sheets.worksheet"); name != "" {
		cfg.WorksheetName = name
	}

	return sheets.NewWriter(ctx, cfg, logger)
}
