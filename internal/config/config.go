package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	JWTSecret     string
	AdminUsername string
	AdminPassword string
	ServerPort    string
	SeedDemoData  bool
}

func Load() *Config {
	// Local development keeps settings in a .env file; missing is fine.
	_ = godotenv.Load()

	return &Config{
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBUser:        getEnv("DB_USER", "postgres"),
		DBPassword:    getEnv("DB_PASSWORD", "postgres"),
		DBName:        getEnv("DB_NAME", "opinioncontest"),
		JWTSecret:     getEnv("JWT_SECRET", "super-secret-key-change-me"),
		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "opinion5"),
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		SeedDemoData:  getEnv("SEED_DEMO_DATA", "true") == "true",
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
