package database

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/ramanuj-ai/ramanuj-site/internal/models"
)

// Connect opens the SQLite store at path, creating the parent directory
// if needed, and migrates the schema. Foreign keys are switched on so
// job deletion cascades to applications.
func Connect(path string, log *zap.Logger) (*gorm.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
	}

	dsn := path + "?_foreign_keys=on"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	log.Info("database connection established", zap.String("path", path))

	if err := db.AutoMigrate(&models.User{}, &models.Job{}, &models.Contact{}, &models.Application{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

// SeedAdmin creates the admin user if no user with that email exists.
// Idempotent: a second start with the same email is a no-op.
func SeedAdmin(db *gorm.DB, email, password string, log *zap.Logger) error {
	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return fmt.Errorf("check admin user: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	user := models.User{Email: email, PasswordHash: string(hash), Role: "admin"}
	if err := db.Create(&user).Error; err != nil {
		return fmt.Errorf("seed admin user: %w", err)
	}
	log.Info("seeded superuser", zap.String("email", email))
	return nil
}
