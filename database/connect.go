package database

import (
	"fmt"
	"log"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/sharath018/event-management-backend/config"
)

// Connect opens the store selected by DB_DRIVER.
func Connect(cfg *config.Config) (Store, error) {
	switch strings.ToLower(cfg.DBDriver) {
	case "", "memory":
		log.Println("🗂  Using in-memory store (data lives for the process lifetime)")
		return NewMemoryStore(), nil
	case "postgres":
		db, err := OpenPostgres(cfg)
		if err != nil {
			return nil, err
		}
		log.Println("🔄 Running database migrations...")
		if err := Migrate(db); err != nil {
			return nil, fmt.Errorf("auto-migrate: %w", err)
		}
		log.Println("✅ Database migrations completed")
		return NewGormStore(db), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
}

// OpenPostgres connects GORM to the configured PostgreSQL database.
func OpenPostgres(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort, cfg.DBSSLMode,
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}
	log.Printf("✅ Connected to PostgreSQL at %s:%s/%s", cfg.DBHost, cfg.DBPort, cfg.DBName)
	return db, nil
}
