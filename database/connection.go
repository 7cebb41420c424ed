package database

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/sitedock/sitedock/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connection represents a database connection with an explicit lifecycle,
// so tests and tooling can open their own instead of relying on the global.
type Connection struct {
	DB     *gorm.DB
	DbURL  string
	Models []interface{}
}

// NewConnection opens a GORM connection to the given database URL and
// configures the underlying pool.
func NewConnection(dbURL string) (*Connection, error) {
	if dbURL == "" {
		return nil, errors.New("database URL cannot be empty")
	}

	// Configure GORM logger
	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			ParameterizedQueries:      true,
			Colorful:                  true,
		},
	)

	// TranslateError maps unique and foreign key violations to
	// gorm.ErrDuplicatedKey / gorm.ErrForeignKeyViolated, which the error
	// taxonomy depends on.
	db, err := gorm.Open(postgres.Open(dbURL), &gorm.Config{
		Logger:         newLogger,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %v", err)
	}

	// Get and configure the underlying SQL DB
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get SQL DB: %v", err)
	}

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Println("Connected to database")

	return &Connection{
		DB:    db,
		DbURL: dbURL,
		Models: []interface{}{
			&models.User{},
			&models.Session{},
			&models.Site{},
			&models.SiteConfiguration{},
			&models.Domain{},
			&models.Certificate{},
			&models.ConfigVar{},
			&models.Deployment{},
			&models.EmailNotification{},
			&models.Webhook{},
			&models.SiteAccess{},
			&models.SiteInvitation{},
		},
	}, nil
}

// Migrate migrates the database schema
func (c *Connection) Migrate() error {
	log.Println("Migrating database schema...")
	err := c.DB.AutoMigrate(c.Models...)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %v", err)
	}
	log.Println("Database schema migrated")
	return nil
}
