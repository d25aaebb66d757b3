package services

import (
	"gorm.io/gorm"

	"github.com/EdwardCranko/PDF-Squeeze/internal/models"
)

// PreferencesService handles user preferences operations
type PreferencesService struct {
	db *gorm.DB
}

// NewPreferencesService creates a new preferences service
func NewPreferencesService(db *gorm.DB) *PreferencesService {
	return &PreferencesService{db: db}
}

// GetPreferences gets the current user preferences
func (s *PreferencesService) GetPreferences() (*models.UserPreferencesData, error) {
	prefs, err := models.GetOrCreatePreferences(s.db)
	if err != nil {
		return nil, err
	}

	prefsData := prefs.GetPreferences()
	return &prefsData, nil
}

// UpdatePreferences updates user preferences
func (s *PreferencesService) UpdatePreferences(data map[string]interface{}) error {
	prefs, err := models.GetOrCreatePreferences(s.db)
	if err != nil {
		return err
	}

	currentPrefs := prefs.GetPreferences()

	// Update fields from request data
	if val, ok := data["output_folder"]; ok {
		if folder, ok := val.(string); ok {
			currentPrefs.OutputFolder = folder
		}
	}

	if val, ok := data["quality"]; ok {
		if quality, ok := val.(float64); ok {
			currentPrefs.Quality = quality
		}
	}

	if val, ok := data["scale"]; ok {
		if scale, ok := val.(float64); ok {
			currentPrefs.Scale = scale
		}
	}

	if val, ok := data["post_optimize"]; ok {
		if optimize, ok := val.(bool); ok {
			currentPrefs.PostOptimize = optimize
		}
	}

	// Save updated preferences
	if err := prefs.SetPreferences(currentPrefs); err != nil {
		return err
	}

	return s.db.Save(prefs).Error
}
