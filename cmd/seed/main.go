// Seed creates the bootstrap admin account if it does not exist yet.
package main

import (
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/mdazmalmallick17-glitch/gamehub/internal/config"
	"github.com/mdazmalmallick17-glitch/gamehub/internal/database"
	"github.com/mdazmalmallick17-glitch/gamehub/internal/logging"
	"github.com/mdazmalmallick17-glitch/gamehub/internal/models"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	logging.Setup()

	cfg := config.Load()
	if cfg.AdminPassword == "" {
		slog.Error("ADMIN_PASSWORD environment variable is required")
		os.Exit(1)
	}

	if err := database.Connect(cfg); err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	if err := database.Migrate(); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	var existing models.User
	if err := database.DB.Where("username = ?", cfg.AdminUsername).First(&existing).Error; err == nil {
		slog.Info("admin user already exists", "username", cfg.AdminUsername)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		slog.Error("failed to hash admin password", "error", err)
		os.Exit(1)
	}

	admin := models.User{
		ID:       uuid.New(),
		Username: cfg.AdminUsername,
		Password: string(hash),
		Role:     models.RoleAdmin,
		Avatar:   "https://api.dicebear.com/7.x/avataaars/svg?seed=admin",
		Bio:      "Platform Administrator",
	}
	if err := database.DB.Create(&admin).Error; err != nil {
		slog.Error("failed to create admin user", "error", err)
		os.Exit(1)
	}

	slog.Info("admin user created", "username", cfg.AdminUsername)
}
