package database

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/EdwardCranko/PDF-Squeeze/internal/models"
)

// Initialize opens the sqlite database at dbPath and migrates the schema.
func Initialize(dbPath string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&models.UserPreferences{}); err != nil {
		return nil, err
	}

	return db, nil
}
