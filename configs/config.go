package configs

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost     string
	DBPort     int
	DBUser     string
	DBPassword string
	DBName     string
	DBNameTest string
	AppPort    int
}

// LoadConfig membaca konfigurasi dari environment variable (dan file .env jika ada).
// Default values:
//
//	DB_HOST=localhost, DB_PORT=5432, DB_USER=appuser, DB_PASSWORD=apppassword,
//	DB_NAME=myapp, DB_NAME_TEST=myapp_test, PORT=5000
func LoadConfig() Config {
	// Muat file .env
	if err := godotenv.Load(); err != nil {
		// Hanya log jika tidak dalam mode test
		if os.Getenv("GO_ENV") != "test" {
			log.Println("No .env file found, using default values")
		}
	}

	return Config{
		DBHost:     envOr("DB_HOST", "localhost"),
		DBPort:     envOrInt("DB_PORT", 5432),
		DBUser:     envOr("DB_USER", "appuser"),
		DBPassword: envOr("DB_PASSWORD", "apppassword"),
		DBName:     envOr("DB_NAME", "myapp"),
		DBNameTest: envOr("DB_NAME_TEST", "myapp_test"),
		AppPort:    envOrInt("PORT", 5000),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envOrInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}
