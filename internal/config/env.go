package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Env struct {
	AppAddr   string
	GinMode   string
	JWTSecret string

	DBHost string
	DBPort string
	DBUser string
	DBPass string
	DBName string

	AutoMigrate bool
}

// LoadEnv reads configuration from the environment, with .env as a
// development convenience. Missing values fall back to local defaults.
func LoadEnv() Env {
	_ = godotenv.Load()

	return Env{
		AppAddr:     getEnv("APP_ADDR", ":8080"),
		GinMode:     strings.TrimSpace(os.Getenv("GIN_MODE")),
		JWTSecret:   getEnv("JWT_SECRET", "super-secret-key-change-me"),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBUser:      getEnv("DB_USER", "root"),
		DBPass:      getEnv("DB_PASS", "root"),
		DBName:      getEnv("DB_NAME", "transport_company"),
		AutoMigrate: os.Getenv("AUTO_MIGRATE") == "1",
	}
}

func getEnv(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}
