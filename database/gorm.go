package database

import (
	"log"

	"github.com/sitedock/sitedock/config"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Initialize sets up the process-wide GORM database connection and migrates
// the schema. Called once at startup; everything downstream receives DB by
// injection rather than importing it.
func Initialize() {
	conn, err := NewConnection(config.DatabaseURL())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := conn.Migrate(); err != nil {
		log.Fatalf("Failed to auto migrate: %v", err)
	}

	DB = conn.DB
}
