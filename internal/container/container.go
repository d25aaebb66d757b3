package container

import (
	"log/slog"

	"gorm.io/gorm"

	"github.com/EdwardCranko/PDF-Squeeze/internal/config"
	domain "github.com/EdwardCranko/PDF-Squeeze/internal/domain/compression"
	"github.com/EdwardCranko/PDF-Squeeze/internal/services"
)

// Container holds all dependencies for the application
type Container struct {
	config *config.Config
	db     *gorm.DB
	logger *slog.Logger

	// Services
	pdfService   *services.PDFService
	prefsService *services.PreferencesService
	batchService *BatchService
}

// New creates a new dependency injection container
func New(cfg *config.Config, db *gorm.DB) *Container {
	c := &Container{
		config: cfg,
		db:     db,
		logger: cfg.Logger,
	}

	c.initServices()
	return c
}

// initServices initializes all services with their dependencies
func (c *Container) initServices() {
	c.pdfService = services.NewPDFService(c.config)
	if c.db != nil {
		c.prefsService = services.NewPreferencesService(c.db)
	}
	c.batchService = NewBatchService(c.pdfService, c.prefsService, c.logger)
}

// GetCompressionService returns the file-level compression service
func (c *Container) GetCompressionService() domain.Service {
	return c.pdfService
}

// GetBatchService returns the multi-file batch service
func (c *Container) GetBatchService() *BatchService {
	return c.batchService
}

// GetPreferencesService returns the preferences service, nil without a database
func (c *Container) GetPreferencesService() *services.PreferencesService {
	return c.prefsService
}

// GetConfig returns the application configuration
func (c *Container) GetConfig() *config.Config {
	return c.config
}
