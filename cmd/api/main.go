package main

import (
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/ramanuj-ai/ramanuj-site/internal/auth"
	"github.com/ramanuj-ai/ramanuj-site/internal/config"
	"github.com/ramanuj-ai/ramanuj-site/internal/database"
	"github.com/ramanuj-ai/ramanuj-site/internal/handlers"
	"github.com/ramanuj-ai/ramanuj-site/internal/uploads"
)

func main() {
	// .env is optional outside local dev.
	_ = godotenv.Load()

	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	cfg := config.Load()

	db, err := database.Connect(cfg.DatabasePath, log)
	if err != nil {
		log.Fatal("failed to initialize database", zap.Error(err))
	}
	if err := database.SeedAdmin(db, cfg.AdminEmail, cfg.AdminPassword, log); err != nil {
		log.Fatal("failed to seed admin user", zap.Error(err))
	}

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatal("failed to create uploads directory", zap.Error(err))
	}

	store := uploads.NewStore(cfg.UploadDir)
	sessions := auth.NewManager(cfg.SessionSecret)

	r := handlers.NewRouter(db, sessions, store, cfg.FrontendURL, log)

	log.Info("backend listening", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("server failed", zap.Error(err))
	}
}
