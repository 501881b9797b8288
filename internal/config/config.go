// Package config resolves backend settings from the environment.
package config

import "os"

// Config holds every environment-driven setting the backend recognizes.
type Config struct {
	Port          string
	DatabasePath  string
	UploadDir     string
	AdminEmail    string
	AdminPassword string
	SessionSecret string
	FrontendURL   string
}

// Load reads settings from the environment, falling back to the same
// local-dev defaults the service has always shipped with.
func Load() Config {
	return Config{
		Port:          getenv("PORT", "8080"),
		DatabasePath:  getenv("DATABASE_PATH", "data/app.db"),
		UploadDir:     getenv("UPLOAD_DIR", "data/uploads"),
		AdminEmail:    getenv("ADMIN_EMAIL", "admin@ramanuj.local"),
		AdminPassword: getenv("ADMIN_PASSWORD", "admin123"),
		SessionSecret: getenv("SESSION_SECRET", "dev_secret_change_me"),
		FrontendURL:   getenv("FRONTEND_URL", "https://ramanuj-website.vercel.app"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
