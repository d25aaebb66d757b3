package container

import (
	"context"
	"log/slog"

	"github.com/EdwardCranko/PDF-Squeeze/internal/concurrency"
	domain "github.com/EdwardCranko/PDF-Squeeze/internal/domain/compression"
	"github.com/EdwardCranko/PDF-Squeeze/internal/services"
)

// BatchService compresses batches of files through a worker pool, filling in
// stored preference defaults for any option left unset.
type BatchService struct {
	pdfService   *services.PDFService
	prefsService *services.PreferencesService
	logger       *slog.Logger
}

// NewBatchService creates a new batch service. prefsService may be nil; the
// built-in defaults are used instead.
func NewBatchService(pdfService *services.PDFService, prefsService *services.PreferencesService, logger *slog.Logger) *BatchService {
	if logger == nil {
		logger = slog.Default()
	}
	return &BatchService{
		pdfService:   pdfService,
		prefsService: prefsService,
		logger:       logger,
	}
}

// CompressBatch processes the request's files concurrently, one independent
// sequential run per file.
func (s *BatchService) CompressBatch(ctx context.Context, request concurrency.BatchRequest) domain.BatchResult {
	request.Options = s.resolveOptions(request.Options)

	pool := concurrency.NewWorkerPool(ctx, s.processFile)
	result := pool.ProcessBatch(request)

	for _, r := range result.Results {
		if r.Status != "completed" {
			s.logger.Error("batch file failed", "file", r.OriginalFilename, "error", r.Error)
		}
	}
	return result
}

// processFile is the worker pool's per-file processor.
func (s *BatchService) processFile(ctx context.Context, fileID, filePath, outputDir string, opts domain.Options, workerID int) (*domain.FileResult, error) {
	s.logger.Debug("processing file", "file", filePath, "worker_id", workerID)

	result, err := s.pdfService.CompressFile(ctx, filePath, outputDir, opts)
	if err != nil {
		return nil, err
	}
	result.FileID = fileID
	return result, nil
}

// resolveOptions fills unset options from stored preferences when available.
func (s *BatchService) resolveOptions(opts domain.Options) domain.Options {
	if opts.Quality > 0 && opts.Scale > 0 {
		return opts.Normalized()
	}

	defaults := domain.DefaultOptions()
	if s.prefsService != nil {
		if prefs, err := s.prefsService.GetPreferences(); err == nil && prefs != nil {
			defaults = prefs.Options()
		} else if err != nil {
			s.logger.Warn("loading preferences, falling back to defaults", "error", err)
		}
	}

	if opts.Quality <= 0 {
		opts.Quality = defaults.Quality
	}
	if opts.Scale <= 0 {
		opts.Scale = defaults.Scale
	}
	return opts.Normalized()
}
