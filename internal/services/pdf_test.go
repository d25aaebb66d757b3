package services

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/EdwardCranko/PDF-Squeeze/internal/config"
	domain "github.com/EdwardCranko/PDF-Squeeze/internal/domain/compression"
)

func testConfig() *config.Config {
	return &config.Config{
		Logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError})),
	}
}

func TestNewPDFService(t *testing.T) {
	service := NewPDFService(testConfig())

	if service == nil {
		t.Fatal("Expected PDFService instance, got nil")
	}
	if service.compressor == nil {
		t.Error("Expected compressor to be wired")
	}
}

func TestCompressBytes_EmptyInput(t *testing.T) {
	service := NewPDFService(testConfig())

	_, err := service.CompressBytes(context.Background(), nil, domain.DefaultOptions())

	var loadErr *domain.LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("Expected LoadError for empty input, got %v", err)
	}
}

func TestCompressFile_MissingFile(t *testing.T) {
	service := NewPDFService(testConfig())

	_, err := service.CompressFile(context.Background(), filepath.Join(t.TempDir(), "missing.pdf"), "", domain.DefaultOptions())

	var loadErr *domain.LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("Expected LoadError for missing file, got %v", err)
	}
}

func TestCompressBytes_CorruptInput(t *testing.T) {
	service := NewPDFService(testConfig())

	_, err := service.CompressBytes(context.Background(), []byte("this is not a pdf"), domain.DefaultOptions())

	var loadErr *domain.LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("Expected LoadError for corrupt input, got %v", err)
	}
}
