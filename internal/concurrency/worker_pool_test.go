package concurrency

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	domain "github.com/EdwardCranko/PDF-Squeeze/internal/domain/compression"
)

func TestProcessBatch_EmptyRequest(t *testing.T) {
	pool := NewWorkerPool(context.Background(), nil)

	result := pool.ProcessBatch(BatchRequest{})

	if result.Success {
		t.Error("Expected failure for empty batch")
	}
	if result.Error == "" {
		t.Error("Expected an error message")
	}
}

func TestProcessBatch_AllFilesProcessed(t *testing.T) {
	var calls int32
	processor := func(ctx context.Context, fileID, filePath, outputDir string, opts domain.Options, workerID int) (*domain.FileResult, error) {
		atomic.AddInt32(&calls, 1)
		return &domain.FileResult{
			FileID:           fileID,
			OriginalFilename: filePath,
			OriginalSize:     1000,
			CompressedSize:   400,
		}, nil
	}

	pool := NewWorkerPool(context.Background(), processor)
	result := pool.ProcessBatch(BatchRequest{
		Files: []string{"a.pdf", "b.pdf", "c.pdf"},
	})

	if !result.Success {
		t.Fatalf("Expected success, got error %q", result.Error)
	}
	if result.TotalFiles != 3 {
		t.Errorf("Expected 3 results, got %d", result.TotalFiles)
	}
	if atomic.LoadInt32(&calls) != 3 {
		t.Errorf("Expected 3 processor calls, got %d", calls)
	}
	if result.TotalOriginalSize != 3000 || result.TotalCompressedSize != 1200 {
		t.Errorf("Unexpected totals: %d -> %d", result.TotalOriginalSize, result.TotalCompressedSize)
	}
	if result.OverallCompressionRatio != 60 {
		t.Errorf("Expected overall ratio 60, got %v", result.OverallCompressionRatio)
	}

	for _, r := range result.Results {
		if r.Status != "completed" {
			t.Errorf("Expected completed status for %s, got %s", r.OriginalFilename, r.Status)
		}
		if r.FileID == "" {
			t.Error("Expected each result to carry a file ID")
		}
	}
}

func TestProcessBatch_MixedFailures(t *testing.T) {
	processor := func(ctx context.Context, fileID, filePath, outputDir string, opts domain.Options, workerID int) (*domain.FileResult, error) {
		if filePath == "bad.pdf" {
			return nil, errors.New("render page 1: draw failed")
		}
		return &domain.FileResult{FileID: fileID, OriginalFilename: filePath}, nil
	}

	pool := NewWorkerPool(context.Background(), processor)
	result := pool.ProcessBatch(BatchRequest{
		Files: []string{"good.pdf", "bad.pdf"},
	})

	if result.TotalFiles != 2 {
		t.Fatalf("Expected 2 results, got %d", result.TotalFiles)
	}

	statuses := map[string]string{}
	for _, r := range result.Results {
		statuses[r.OriginalFilename] = r.Status
	}
	if statuses["good.pdf"] != "completed" {
		t.Errorf("Expected good.pdf completed, got %s", statuses["good.pdf"])
	}
	if statuses["bad.pdf"] != "error" {
		t.Errorf("Expected bad.pdf error, got %s", statuses["bad.pdf"])
	}
}

func TestProcessBatch_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls int32
	processor := func(ctx context.Context, fileID, filePath, outputDir string, opts domain.Options, workerID int) (*domain.FileResult, error) {
		atomic.AddInt32(&calls, 1)
		return &domain.FileResult{FileID: fileID}, nil
	}

	pool := NewWorkerPool(ctx, processor)
	result := pool.ProcessBatch(BatchRequest{
		Files: []string{"a.pdf", "b.pdf", "c.pdf", "d.pdf"},
	})

	// Workers bail out on a dead context without touching remaining files.
	if int(atomic.LoadInt32(&calls)) != 0 {
		t.Errorf("Expected no files processed on a cancelled context, got %d", calls)
	}
	if result.TotalFiles != 0 {
		t.Errorf("Expected no results, got %d", result.TotalFiles)
	}
}
