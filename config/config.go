package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv loads environment variables from .env file
func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}
}

// GetEnv gets an environment variable or returns a default value if not present
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// DatabaseURL returns the database connection string. DATABASE_URL wins when
// set; otherwise the URL is composed from the individual DB_* variables.
func DatabaseURL() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}

	host := GetEnv("DB_HOST", "localhost")
	port := GetEnv("DB_PORT", "5432")
	user := GetEnv("DB_USER", "postgres")
	password := GetEnv("DB_PASSWORD", "password")
	name := GetEnv("DB_NAME", "sitedock")
	sslMode := "disable"
	if GetEnv("DB_SSL", "false") == "true" {
		sslMode = "require"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		user, password, host, port, name, sslMode)
}

// PlatformDomain returns the apex domain that site subdomains hang off.
func PlatformDomain() string {
	return GetEnv("PLATFORM_DOMAIN", "sitedock.app")
}

// BaseURL returns the externally visible URL of the dashboard, used when
// building invitation links.
func BaseURL() string {
	return GetEnv("BASE_URL", "http://localhost:3000")
}
