package db

import (
	"time" // Connection timeout durations

	"ledger_system/internal/config" // Application configuration
	"ledger_system/internal/domain" // Importing domain models

	"gorm.io/driver/mysql" // MySQL driver for GORM
	"gorm.io/gorm"         // GORM ORM library
)

// Open connects to the database and tunes the shared connection pool.
// The pool is the only concurrency bottleneck in the process: every
// request borrows a connection and the confirmation transaction holds
// one for its full duration.
func Open(cfg *config.Config) (*gorm.DB, error) {
	// Data Source Name (DSN) for the MySQL connection
	dsn := cfg.DBUser + ":" + cfg.DBPassword + "@tcp(" + cfg.DBHost + ":" + cfg.DBPort + ")/" + cfg.DBName + "?parseTime=true"
	if cfg.IsProd {
		dsn += "&tls=true" // TLS to the database is mandatory in production
	}
	database, err := gorm.Open(mysql.Open(dsn), &gorm.Config{}) // Open a connection to the database
	if err != nil {
		return nil, err
	}
	sqlDB, err := database.DB() // Underlying sql.DB for pool tuning
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(cfg.DBPoolSize)                                     // Bound the pool; requests queue beyond this
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdle)                                      // Keep a few warm connections
	sqlDB.SetConnMaxIdleTime(time.Duration(cfg.DBConnMaxIdleSec) * time.Second) // Close idle connections
	return database, nil
}

// Migrate creates or updates the schema for the domain models.
// AutoMigrate will create tables, missing foreign keys, constraints,
// columns and indexes.
func Migrate(database *gorm.DB) error {
	return database.AutoMigrate(&domain.Receiver{}, &domain.Operation{})
}
