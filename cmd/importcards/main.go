// Command importcards loads a card-content table into the
// content-addressed card_definitions store, adapted from the teacher's
// scripts/import_cards.go (CSV-to-Postgres importer) to this module's
// viper-decoded TOML-like table format (§6).
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dreamtides/rules-engine/internal/content"
	"github.com/dreamtides/rules-engine/internal/enginelog"
	"github.com/dreamtides/rules-engine/internal/persistence"
	"go.uber.org/zap"
)

func main() {
	tablePath := flag.String("cards", "data/cards.toml", "path to the card content table")
	dbURL := flag.String("database-url", os.Getenv("DATABASE_URL"), "postgres connection string")
	flag.Parse()

	logger, err := enginelog.New(enginelog.Config{Level: "info", Format: "console"})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	absPath, err := filepath.Abs(*tablePath)
	if err != nil {
		logger.Fatal("failed to resolve card table path", zap.Error(err))
	}
	logger.Info("loading card content table", zap.String("path", absPath))

	table, err := content.Load(absPath)
	if err != nil {
		logger.Fatal("failed to load card content table", zap.Error(err))
	}
	logger.Info("parsed card rows", zap.Int("count", len(table.Rows)))

	if *dbURL == "" {
		logger.Fatal("no database URL configured; set --database-url or DATABASE_URL")
	}

	ctx := context.Background()
	store, err := persistence.Open(ctx, *dbURL)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer store.Close()

	if err := store.SaveCardDefinitions(ctx, table); err != nil {
		logger.Fatal("failed to import card definitions", zap.Error(err))
	}

	logger.Info("card import complete", zap.Int("imported", len(table.Rows)))
}
