package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"

	"github.com/nao1215/logreport/internal/analyzer"
	"github.com/nao1215/logreport/internal/config"
	rlog "github.com/nao1215/logreport/internal/log"
	"github.com/nao1215/logreport/internal/metrics"
	"github.com/nao1215/logreport/internal/model"
	"github.com/nao1215/logreport/internal/pipeline"
	"github.com/nao1215/logreport/internal/report"
	"github.com/spf13/cobra"
)

// runReportCmd executes the root command.
func runReportCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// Workers share stderr for diagnostics and logs.
	stderr := &lockedWriter{w: cmd.ErrOrStderr()}
	logger, err := setupLogger(cmd, stderr, cfg.Verbose)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return runReport(ctx, cfg, cmd.OutOrStdout(), stderr, logger)
}

// buildConfig creates a Config from cobra command flags and the config file.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()
	cfg.LogFiles = args

	var err error

	cfg.ReportType, err = cmd.Flags().GetString("report")
	if err != nil {
		return nil, err
	}

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return nil, err
	}
	cfg.Format = report.Format(format)

	cfg.OutputFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	cfg.Concurrency, err = cmd.Flags().GetInt("concurrency")
	if err != nil {
		return nil, err
	}

	cfg.MetricsFile, err = cmd.Flags().GetString("metrics-file")
	if err != nil {
		return nil, err
	}

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	cfg.Verbose = getVerboseFlag(cmd)

	file, err := config.Load(cfg.ConfigFilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}
	cfg.Apply(file, func(name string) bool {
		return cmd.Flags().Changed(name)
	})

	return cfg, nil
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// setupLogger creates the redacting logger selected by --log-format.
func setupLogger(cmd *cobra.Command, w io.Writer, verbose bool) (*slog.Logger, error) {
	format, err := cmd.Flags().GetString("log-format")
	if err != nil {
		return nil, err
	}

	switch format {
	case "text", "":
		return rlog.NewLogger(w, verbose), nil
	case "json":
		return rlog.NewJSONLogger(w, verbose), nil
	default:
		return nil, fmt.Errorf("unsupported log format %q (available: text, json)", format)
	}
}

// runReport analyzes every log file and writes the merged report.
// Malformed line diagnostics go to diagnostics; the report goes to stdout
// unless cfg.OutputFile is set.
func runReport(ctx context.Context, cfg *config.Config, stdout, diagnostics io.Writer, logger *slog.Logger) error {
	var collector *metrics.Collector
	if cfg.MetricsFile != "" {
		collector = metrics.NewCollector()
	}

	processor := pipeline.NewBatchProcessor(
		func() pipeline.FileProcessor {
			return analyzer.New(
				analyzer.WithLogger(logger),
				analyzer.WithDiagnostics(diagnostics),
			)
		},
		pipeline.WithConcurrency(cfg.Concurrency),
		pipeline.WithBatchLogger(logger),
		pipeline.WithMetrics(collector),
	)

	results, runErr := processor.ProcessFiles(ctx, cfg.LogFiles)

	if collector != nil {
		if err := collector.WriteTextfile(cfg.MetricsFile); err != nil {
			logger.Warn("failed to write metrics file", "path", cfg.MetricsFile, "error", err)
		}
	}

	if runErr != nil {
		return runErr
	}

	return writeReport(cfg, results, stdout, logger)
}

// writeReport renders the report selected by cfg.ReportType in the configured format.
func writeReport(cfg *config.Config, results []model.AnalysisResult, stdout io.Writer, logger *slog.Logger) (err error) {
	output := stdout
	if cfg.OutputFile != "" {
		f, openErr := createOutputFile(cfg.OutputFile)
		if openErr != nil {
			return openErr
		}
		defer func() {
			if closeErr := f.Close(); closeErr != nil && err == nil {
				err = fmt.Errorf("failed to close report file: %w", closeErr)
			}
		}()
		output = f
	}

	writer, err := report.NewWriter(cfg.ReportType, cfg.Format, output)
	if err != nil {
		return err
	}

	n, err := writer.Write(results)
	if err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	logger.Info("report written",
		"report", cfg.ReportType,
		"format", cfg.Format,
		"bytes", n,
		"files", len(results),
	)
	return nil
}

// createOutputFile creates path and its parent directories.
func createOutputFile(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600) //nolint:gosec // User-provided output path is intentional
	if err != nil {
		return nil, fmt.Errorf("failed to create report file: %w", err)
	}
	return f, nil
}

// lockedWriter serializes writes from concurrent workers.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}
