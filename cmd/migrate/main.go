package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/anatomypro/backend/platform"
	"github.com/anatomypro/backend/platform/database"
	"github.com/anatomypro/backend/platform/logger"
)

// Creates the schema and seeds the mission catalog. Run once per
// environment before starting the API.
func main() {
	configPath := "config.toml"
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}

	cfg, err := platform.LoadConfig(configPath)
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.SetDefault(slog.New(logger.NewHandler("AnatomyPro-Migrate", cfg.Log.Level, cfg.Log.AddSource)))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db, err := database.New(ctx, cfg.DB)
	if err != nil {
		slog.Error("Failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer db.Close()

	if err := db.InitializeSchema(ctx); err != nil {
		slog.Error("Migration failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("Migration completed successfully")
}
