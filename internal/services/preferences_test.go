package services

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	domain "github.com/EdwardCranko/PDF-Squeeze/internal/domain/compression"
	"github.com/EdwardCranko/PDF-Squeeze/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	// Auto-migrate the schema
	if err := db.AutoMigrate(&models.UserPreferences{}); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

func TestNewPreferencesService(t *testing.T) {
	db := setupTestDB(t)
	service := NewPreferencesService(db)

	if service == nil {
		t.Fatal("Expected PreferencesService instance, got nil")
	}

	if service.db != db {
		t.Error("Expected database to be set correctly")
	}
}

func TestGetPreferences_CreatesDefault(t *testing.T) {
	db := setupTestDB(t)
	service := NewPreferencesService(db)

	prefs, err := service.GetPreferences()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if prefs == nil {
		t.Fatal("Expected preferences, got nil")
	}

	if prefs.Quality != domain.DefaultQuality {
		t.Errorf("Expected default quality %v, got %v", domain.DefaultQuality, prefs.Quality)
	}

	if prefs.Scale != domain.DefaultScale {
		t.Errorf("Expected default scale %v, got %v", domain.DefaultScale, prefs.Scale)
	}

	if prefs.PostOptimize {
		t.Error("Expected PostOptimize to default to false")
	}
}

func TestUpdatePreferences(t *testing.T) {
	db := setupTestDB(t)
	service := NewPreferencesService(db)

	err := service.UpdatePreferences(map[string]interface{}{
		"quality":       0.4,
		"scale":         2.0,
		"post_optimize": true,
		"output_folder": "/tmp/out",
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	prefs, err := service.GetPreferences()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if prefs.Quality != 0.4 {
		t.Errorf("Expected quality 0.4, got %v", prefs.Quality)
	}
	if prefs.Scale != 2.0 {
		t.Errorf("Expected scale 2.0, got %v", prefs.Scale)
	}
	if !prefs.PostOptimize {
		t.Error("Expected PostOptimize true")
	}
	if prefs.OutputFolder != "/tmp/out" {
		t.Errorf("Expected output folder /tmp/out, got %q", prefs.OutputFolder)
	}
}

func TestUpdatePreferences_IgnoresUnknownAndWrongTypes(t *testing.T) {
	db := setupTestDB(t)
	service := NewPreferencesService(db)

	err := service.UpdatePreferences(map[string]interface{}{
		"quality": "not a number",
		"unknown": 42,
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	prefs, err := service.GetPreferences()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if prefs.Quality != domain.DefaultQuality {
		t.Errorf("Expected quality untouched at %v, got %v", domain.DefaultQuality, prefs.Quality)
	}
}

func TestPreferencesOptions(t *testing.T) {
	data := models.UserPreferencesData{Quality: 2.5, Scale: -1}
	opts := data.Options()

	if opts.Quality != 1 {
		t.Errorf("Expected stored quality clamped to 1, got %v", opts.Quality)
	}
	if opts.Scale != domain.DefaultScale {
		t.Errorf("Expected invalid scale to fall back to %v, got %v", domain.DefaultScale, opts.Scale)
	}
}
