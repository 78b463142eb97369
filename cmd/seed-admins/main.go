// Command seed-admins provisions the regional admin accounts.
// The password comes from SEED_ADMIN_PASSWORD.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/anhtong/guild-api/internal/config"
	"github.com/anhtong/guild-api/internal/database"
	"github.com/anhtong/guild-api/internal/repository"
	"github.com/anhtong/guild-api/internal/service"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	db := database.NewSurrealDB(database.Config{
		Host:      cfg.Database.Host,
		Port:      cfg.Database.Port,
		User:      cfg.Database.User,
		Password:  cfg.Database.Password,
		Namespace: cfg.Database.Namespace,
		Database:  cfg.Database.Database,
	})

	ctx := context.Background()
	if err := db.Connect(ctx); err != nil {
		slog.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	seeder := service.NewSeeder(repository.NewUserRepository(db))
	created, err := seeder.SeedAdmins(ctx, cfg.Seed.AdminPassword)
	if err != nil {
		slog.Error("failed to seed admins", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if len(created) == 0 {
		slog.Info("all admin accounts already exist")
		return
	}
	for _, username := range created {
		slog.Info("created admin account", slog.String("username", username))
	}
}
