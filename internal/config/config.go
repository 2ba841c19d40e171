package config

import (
	"log"
	"os"

	"leadbox/internal/utils"
)

type Config struct {
	Port          string
	DBPath        string
	JWTSecret     string
	JWTExpiresIn  string // hours
	AdminUsername string
	AdminPassword string
	PublicDir     string
	AdminDir      string
}

func Load() *Config {
	cfg := &Config{
		Port:          getenv("PORT", "3000"),
		DBPath:        getenv("DB_PATH", "./data/database.db"),
		JWTSecret:     getenv("JWT_SECRET", ""),
		JWTExpiresIn:  getenv("JWT_EXPIRES_IN", "24"),
		AdminUsername: getenv("ADMIN_USERNAME", "admin"),
		AdminPassword: getenv("ADMIN_PASSWORD", "admin123"),
		PublicDir:     getenv("PUBLIC_DIR", "./public"),
		AdminDir:      getenv("ADMIN_DIR", "./admin"),
	}

	if cfg.JWTSecret == "" {
		secret, err := utils.GenerateSecret(32)
		if err != nil {
			log.Fatalf("failed to generate fallback JWT secret: %v", err)
		}
		cfg.JWTSecret = secret
		log.Println("WARNING: JWT_SECRET not set, using a random per-process secret; issued tokens will not survive a restart")
	}

	return cfg
}

func getenv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}
