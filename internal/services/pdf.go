package services

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/EdwardCranko/PDF-Squeeze/internal/common"
	"github.com/EdwardCranko/PDF-Squeeze/internal/compression"
	"github.com/EdwardCranko/PDF-Squeeze/internal/config"
	domain "github.com/EdwardCranko/PDF-Squeeze/internal/domain/compression"
	"github.com/EdwardCranko/PDF-Squeeze/internal/pdf"
)

// PDFService runs whole-file compressions: bytes in, smaller bytes out, with
// size bookkeeping around the core pipeline.
type PDFService struct {
	compressor *compression.Compressor
	logger     *slog.Logger
}

// NewPDFService creates a new PDF service wired to the fitz-backed pipeline.
func NewPDFService(cfg *config.Config) *PDFService {
	logger := cfg.Logger
	return &PDFService{
		compressor: compression.NewCompressor(
			pdf.NewLoader(logger),
			pdf.NewRasterizer(logger),
			compression.NewJPEGEncoder(),
			func() domain.Assembler { return compression.NewPDFAssembler() },
			logger,
		),
		logger: logger,
	}
}

// CompressBytes transcodes one document held in memory.
func (s *PDFService) CompressBytes(ctx context.Context, data []byte, opts domain.Options) ([]byte, error) {
	opts = opts.Normalized()

	out, err := s.compressor.Compress(ctx, data, opts)
	if err != nil {
		return nil, err
	}

	if opts.PostOptimize {
		out, err = s.optimize(out)
		if err != nil {
			return nil, err
		}
	}

	return out, nil
}

// optimize runs a structural pass over the assembled document and keeps the
// smaller of the two buffers.
func (s *PDFService) optimize(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := api.Optimize(bytes.NewReader(data), &buf, nil); err != nil {
		return nil, domain.NewResourceError("optimize document", err)
	}
	if buf.Len() >= len(data) {
		s.logger.Debug("optimization did not shrink output, keeping assembled document",
			"assembled", len(data), "optimized", buf.Len())
		return data, nil
	}
	return buf.Bytes(), nil
}

// CompressFile compresses inputPath and writes the result next to it, or into
// outputDir when given. The returned FileResult carries both sizes and the
// space saved.
func (s *PDFService) CompressFile(ctx context.Context, inputPath, outputDir string, opts domain.Options) (*domain.FileResult, error) {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return nil, domain.NewLoadError("read source", err)
	}

	out, err := s.CompressBytes(ctx, data, opts)
	if err != nil {
		return nil, err
	}

	if outputDir == "" {
		outputDir = filepath.Dir(inputPath)
	}
	if err := os.MkdirAll(outputDir, common.DefaultFilePermissions); err != nil {
		return nil, domain.NewResourceError("create output directory", err)
	}

	outName := common.CompressedName(inputPath)
	outPath := filepath.Join(outputDir, outName)
	if err := os.WriteFile(outPath, out, 0644); err != nil {
		return nil, domain.NewResourceError("write output", err)
	}

	result := &domain.FileResult{
		FileID:             common.GenerateUUID(),
		OriginalFilename:   filepath.Base(inputPath),
		CompressedFilename: outName,
		OriginalSize:       int64(len(data)),
		CompressedSize:     int64(len(out)),
		CompressedPath:     outPath,
		Status:             "completed",
	}
	result.CompressionRatio = result.Ratio()

	s.logger.Info("compressed file",
		"file", result.OriginalFilename,
		"original", common.FormatFileSize(result.OriginalSize),
		"compressed", common.FormatFileSize(result.CompressedSize),
		"saved_pct", result.CompressionRatio)

	return result, nil
}
