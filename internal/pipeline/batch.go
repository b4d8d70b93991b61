package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"runtime"
	"time"

	"github.com/nao1215/logreport/internal/metrics"
	"github.com/nao1215/logreport/internal/model"
	"golang.org/x/sync/errgroup"
)

// FileProcessor analyzes a single log file.
// *analyzer.Analyzer satisfies this interface.
type FileProcessor interface {
	ProcessFile(ctx context.Context, path string) (model.AnalysisResult, error)
}

// BatchProcessor analyzes multiple log files concurrently.
// It uses errgroup to manage goroutines and respect the concurrency limit.
type BatchProcessor struct {
	// processorFactory creates a new FileProcessor for each file.
	// Every file gets a fresh instance so no counters are shared.
	processorFactory func() FileProcessor

	// concurrency is the maximum number of files analyzed at once.
	concurrency int

	// logger is used for batch-level logging.
	logger *slog.Logger

	// metrics receives per-file statistics. May be nil.
	metrics *metrics.Collector
}

// BatchOption configures a BatchProcessor.
type BatchOption func(*BatchProcessor)

// WithBatchLogger sets a custom logger for batch processing.
func WithBatchLogger(logger *slog.Logger) BatchOption {
	return func(b *BatchProcessor) {
		b.logger = logger
	}
}

// WithConcurrency sets the maximum number of concurrent files.
// Default is runtime.NumCPU() if not specified.
func WithConcurrency(n int) BatchOption {
	return func(b *BatchProcessor) {
		if n > 0 {
			b.concurrency = n
		}
	}
}

// WithMetrics records per-file statistics in c.
func WithMetrics(c *metrics.Collector) BatchOption {
	return func(b *BatchProcessor) {
		b.metrics = c
	}
}

// NewBatchProcessor creates a new BatchProcessor.
// processorFactory is called once per file.
func NewBatchProcessor(processorFactory func() FileProcessor, opts ...BatchOption) *BatchProcessor {
	bp := &BatchProcessor{
		processorFactory: processorFactory,
		concurrency:      runtime.NumCPU(),
	}

	for _, opt := range opts {
		opt(bp)
	}

	if bp.logger == nil {
		bp.logger = slog.Default()
	}

	return bp
}

// ProcessFiles analyzes every path and returns the results in input order.
//
// It returns only after every started worker has finished. The first file
// that cannot be opened or read cancels the remaining work and its error is
// returned; no partial results are returned in that case.
func (bp *BatchProcessor) ProcessFiles(ctx context.Context, paths []string) ([]model.AnalysisResult, error) {
	bp.logger.Info("starting batch processing",
		"total_files", len(paths),
		"concurrency", bp.concurrency,
	)

	startTime := time.Now()

	// Each worker writes only its own index.
	results := make([]model.AnalysisResult, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(bp.concurrency)

	for i, path := range paths {
		g.Go(func() error {
			// Check for cancellation before starting
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			fileStart := time.Now()
			result, err := bp.processorFactory().ProcessFile(ctx, path)
			if err != nil {
				// Siblings stopped by an earlier failure are not failures themselves.
				if errors.Is(err, context.Canceled) && ctx.Err() != nil {
					bp.logger.Debug("log file cancelled", "path", path)
					return err
				}
				if bp.metrics != nil {
					bp.metrics.ObserveFailure()
				}
				bp.logger.Error("log file failed",
					"path", path,
					"error", err,
				)
				return err
			}

			elapsed := time.Since(fileStart)
			if bp.metrics != nil {
				bp.metrics.ObserveFile(result, elapsed)
			}
			bp.logger.Info("log file completed",
				"path", path,
				"index", i+1,
				"total", len(paths),
				"elapsed", elapsed,
			)

			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	bp.logger.Info("batch processing complete",
		"total_files", len(paths),
		"elapsed", time.Since(startTime),
	)

	return results, nil
}
