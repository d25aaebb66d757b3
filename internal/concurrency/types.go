package concurrency

import (
	"context"

	domain "github.com/EdwardCranko/PDF-Squeeze/internal/domain/compression"
)

// WorkItem represents a single file to be processed
type WorkItem struct {
	ID       string
	FilePath string
}

// BatchRequest represents a request to process multiple files concurrently.
// Each file becomes one independent, strictly sequential compression run.
type BatchRequest struct {
	Files     []string
	OutputDir string
	Options   domain.Options
}

// ProcessorFunc defines the function signature for processing a single file
type ProcessorFunc func(ctx context.Context, fileID, filePath, outputDir string, opts domain.Options, workerID int) (*domain.FileResult, error)

// WorkerPool represents a pool of workers for concurrent processing
type WorkerPool struct {
	ctx        context.Context
	maxWorkers int
	processor  ProcessorFunc
	workChan   chan WorkItem
	resultChan chan *domain.FileResult
	totalFiles int
}
