package config

import (
	"os"
	"strconv"
	"time"
)

// Config is built once at startup and handed to the wiring layer;
// nothing below main reads the environment directly.
type Config struct {
	Port          string
	DatabaseDSN   string
	RedisAddr     string
	JWTSecret     string
	JWTExpiration time.Duration
}

func Load() Config {
	return Config{
		Port:          getEnv("PORT", "8080"),
		DatabaseDSN:   getEnv("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=dashboard port=5432 sslmode=disable"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		JWTSecret:     getEnv("JWT_SECRET", "dev-secret"),
		JWTExpiration: time.Duration(getEnvInt("JWT_EXPIRATION_HOURS", 24)) * time.Hour,
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
