package database

import (
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"leadbox/internal/config"
	"leadbox/internal/models"
	"leadbox/internal/utils"
)

func SeedAdmin(db *gorm.DB, cfg *config.Config) error {
	var count int64
	if err := db.Model(&models.AdminUser{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	username := cfg.AdminUsername
	if username == "" {
		username = "admin"
	}
	password := cfg.AdminPassword
	if password == "" {
		password = "admin123"
	}
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	admin := models.AdminUser{
		UserID:       uuid.NewString(),
		Username:     username,
		PasswordHash: hashed,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	log.Println("Seeded initial admin:", username)
	if password == "admin123" {
		log.Println("WARNING: admin account uses the default password; set ADMIN_PASSWORD before exposing this service")
	}
	return nil
}
