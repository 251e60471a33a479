package store

import (
	"fmt"
	"os"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ecowatt/solardevis/internal/models"
)

// Open opens (or creates) the local quote database and migrates its single
// table. Set DB_DEBUG=1 to see the SQL.
func Open(path string) (*gorm.DB, error) {
	logLevel := logger.Silent
	if os.Getenv("DB_DEBUG") == "1" {
		logLevel = logger.Info
	}
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: logger.Default.LogMode(logLevel)})
	if err != nil {
		return nil, fmt.Errorf("opening quote database: %w", err)
	}
	if err := db.AutoMigrate(&models.SavedQuote{}); err != nil {
		return nil, fmt.Errorf("automigrate saved quotes: %w", err)
	}
	return db, nil
}
