package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/EdwardCranko/PDF-Squeeze/api"
	"github.com/EdwardCranko/PDF-Squeeze/internal/common"
	"github.com/EdwardCranko/PDF-Squeeze/internal/concurrency"
	"github.com/EdwardCranko/PDF-Squeeze/internal/config"
	"github.com/EdwardCranko/PDF-Squeeze/internal/container"
	"github.com/EdwardCranko/PDF-Squeeze/internal/database"
	domain "github.com/EdwardCranko/PDF-Squeeze/internal/domain/compression"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "pdf-squeeze",
		Short:         "Shrink PDFs by rasterizing each page to a lossy image",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(newCompressCmd())
	root.AddCommand(newServeCmd())
	return root
}

func newCompressCmd() *cobra.Command {
	var (
		quality   float64
		scale     float64
		optimize  bool
		outputDir string
		quiet     bool
	)

	cmd := &cobra.Command{
		Use:   "compress <file.pdf> [more files...]",
		Short: "Compress one or more PDF files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			deps := buildContainer()
			opts := domain.Options{
				Quality:      quality,
				Scale:        scale,
				PostOptimize: optimize,
			}

			if len(args) == 1 {
				return compressOne(ctx, deps, args[0], outputDir, opts, quiet)
			}
			return compressBatch(ctx, deps, args, outputDir, opts)
		},
	}

	cmd.Flags().Float64VarP(&quality, "quality", "q", domain.DefaultQuality, "image quality in (0,1], lower is smaller")
	cmd.Flags().Float64VarP(&scale, "scale", "s", domain.DefaultScale, "rasterization scale before per-page capping")
	cmd.Flags().BoolVar(&optimize, "optimize", false, "run a structural optimization pass on the output")
	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "directory for compressed files (default: next to each source)")
	cmd.Flags().BoolVar(&quiet, "quiet", false, "suppress the progress bar")
	return cmd
}

func compressOne(ctx context.Context, deps *container.Container, path, outputDir string, opts domain.Options, quiet bool) error {
	if !quiet {
		bar := progressbar.NewOptions(100,
			progressbar.OptionSetDescription(path),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetWidth(50),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprint(os.Stderr, "\n")
			}),
		)
		opts.OnProgress = func(percent int) {
			_ = bar.Set(percent)
		}
	}

	result, err := deps.GetCompressionService().CompressFile(ctx, path, outputDir, opts)
	if err != nil {
		return err
	}

	fmt.Printf("%s: %s -> %s (%.1f%% saved) -> %s\n",
		result.OriginalFilename,
		common.FormatFileSize(result.OriginalSize),
		common.FormatFileSize(result.CompressedSize),
		result.CompressionRatio,
		result.CompressedPath)
	return nil
}

func compressBatch(ctx context.Context, deps *container.Container, files []string, outputDir string, opts domain.Options) error {
	result := deps.GetBatchService().CompressBatch(ctx, concurrency.BatchRequest{
		Files:     files,
		OutputDir: outputDir,
		Options:   opts,
	})
	if !result.Success {
		return fmt.Errorf("batch failed: %s", result.Error)
	}

	failures := 0
	for _, r := range result.Results {
		if r.Status != "completed" {
			failures++
			fmt.Printf("%s: FAILED: %s\n", r.OriginalFilename, r.Error)
			continue
		}
		fmt.Printf("%s: %s -> %s (%.1f%% saved)\n",
			r.OriginalFilename,
			common.FormatFileSize(r.OriginalSize),
			common.FormatFileSize(r.CompressedSize),
			r.CompressionRatio)
	}

	fmt.Printf("total: %s -> %s (%.1f%% saved)\n",
		common.FormatFileSize(result.TotalOriginalSize),
		common.FormatFileSize(result.TotalCompressedSize),
		result.OverallCompressionRatio)

	if failures > 0 {
		return fmt.Errorf("%d of %d files failed", failures, result.TotalFiles)
	}
	return nil
}

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the compression HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			deps := buildContainer()
			if addr == "" {
				addr = deps.GetConfig().ListenAddr
			}

			deps.GetConfig().Logger.Info("listening", "addr", addr)
			return api.SetupRouter(deps).Run(addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from PDFSQUEEZE_LISTEN_ADDR)")
	return cmd
}

// buildContainer wires configuration, storage and services. A broken
// preferences database is not fatal; the built-in defaults take over.
func buildContainer() *container.Container {
	cfg := config.New()

	db, err := database.Initialize(cfg.DatabasePath)
	if err != nil {
		cfg.Logger.Warn("preferences database unavailable", "error", err)
		db = nil
	}

	return container.New(cfg, db)
}
