package models

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"

	domain "github.com/EdwardCranko/PDF-Squeeze/internal/domain/compression"
)

// UserPreferences represents user preferences in the database
type UserPreferences struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	PreferencesJSON string    `gorm:"type:text" json:"preferences_json"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// UserPreferencesData represents the structured preferences data
type UserPreferencesData struct {
	OutputFolder string  `json:"output_folder"`
	Quality      float64 `json:"quality"`
	Scale        float64 `json:"scale"`
	PostOptimize bool    `json:"post_optimize"`
}

// DefaultPreferences returns default preference values
func DefaultPreferences() UserPreferencesData {
	return UserPreferencesData{
		OutputFolder: "",
		Quality:      domain.DefaultQuality,
		Scale:        domain.DefaultScale,
		PostOptimize: false,
	}
}

// Options converts the stored preferences into run options.
func (d UserPreferencesData) Options() domain.Options {
	return domain.Options{
		Quality:      d.Quality,
		Scale:        d.Scale,
		PostOptimize: d.PostOptimize,
	}.Normalized()
}

// GetPreferences parses and returns the preferences data
func (up *UserPreferences) GetPreferences() UserPreferencesData {
	if up.PreferencesJSON == "" {
		return DefaultPreferences()
	}

	var prefs UserPreferencesData
	if err := json.Unmarshal([]byte(up.PreferencesJSON), &prefs); err != nil {
		return DefaultPreferences()
	}

	return prefs
}

// SetPreferences sets the preferences data
func (up *UserPreferences) SetPreferences(prefs UserPreferencesData) error {
	data, err := json.Marshal(prefs)
	if err != nil {
		return err
	}

	up.PreferencesJSON = string(data)
	return nil
}

// GetOrCreatePreferences gets or creates the global preferences instance
func GetOrCreatePreferences(db *gorm.DB) (*UserPreferences, error) {
	var prefs UserPreferences

	// Try to get existing preferences with ID = 1
	result := db.First(&prefs, 1)

	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			// Create default preferences
			prefs = UserPreferences{
				ID: 1,
			}

			if err := prefs.SetPreferences(DefaultPreferences()); err != nil {
				return nil, err
			}

			if err := db.Create(&prefs).Error; err != nil {
				return nil, err
			}
		} else {
			return nil, result.Error
		}
	}

	return &prefs, nil
}
