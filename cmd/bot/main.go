package main

import (
	"context"
	"log"
	"os"

	"raidbot/internal/adapters/discord"
	"raidbot/internal/config"
	"raidbot/internal/infrastructure/database"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Configuration error: %v", err)
	}

	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatalf("❌ Migration error: %v", err)
	}

	ctx := context.Background()
	pool, err := database.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Database initialization error: %v", err)
	}
	defer pool.Close()

	ledgerRepo := database.NewLedgerRepository(pool)
	settingsRepo := database.NewSettingsRepository(pool)

	bot, err := discord.NewBot(cfg, ledgerRepo, settingsRepo)
	if err != nil {
		log.Fatalf("❌ Bot creation error: %v", err)
	}
	if err := bot.Start(); err != nil {
		log.Printf("❌ Bot startup error: %v", err)
		os.Exit(1)
	}
}
