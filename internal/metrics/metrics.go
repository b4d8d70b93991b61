// Package metrics records run statistics as Prometheus metrics.
//
// The CLI is a one-shot process, so metrics are not served over HTTP.
// Instead they can be written in the text exposition format to a file that
// the node_exporter textfile collector picks up.
package metrics

import (
	"fmt"
	"time"

	"github.com/nao1215/logreport/internal/model"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "logreport"

// Collector holds the metrics of a single run.
// All methods are safe for concurrent use.
type Collector struct {
	registry *prometheus.Registry

	FilesProcessed *prometheus.CounterVec
	LinesRead      prometheus.Counter
	Requests       *prometheus.CounterVec
	MalformedLines prometheus.Counter
	FileDuration   prometheus.Histogram
}

// NewCollector creates a Collector registered on a private registry.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		FilesProcessed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "files_processed_total",
				Help:      "Total number of log files processed, by status.",
			},
			[]string{"status"},
		),
		LinesRead: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "lines_read_total",
				Help:      "Total number of lines read from log files.",
			},
		),
		Requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "requests_total",
				Help:      "Total number of request log lines counted per endpoint, by level.",
			},
			[]string{"level"},
		),
		MalformedLines: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "malformed_lines_total",
				Help:      "Total number of request log lines that could not be parsed.",
			},
		),
		FileDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "file_processing_seconds",
				Help:      "Time spent analyzing a single log file.",
				Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
			},
		),
	}

	c.registry.MustRegister(
		c.FilesProcessed,
		c.LinesRead,
		c.Requests,
		c.MalformedLines,
		c.FileDuration,
	)

	return c
}

// ObserveFile records a successfully analyzed file.
func (c *Collector) ObserveFile(result model.AnalysisResult, elapsed time.Duration) {
	c.FilesProcessed.WithLabelValues("ok").Inc()
	c.LinesRead.Add(float64(result.LinesRead))
	c.MalformedLines.Add(float64(result.MalformedLines))
	c.FileDuration.Observe(elapsed.Seconds())

	for _, levels := range result.HandlerCounts {
		for level, count := range levels {
			c.Requests.WithLabelValues(level.String()).Add(float64(count))
		}
	}
}

// ObserveFailure records a file that could not be analyzed.
func (c *Collector) ObserveFailure() {
	c.FilesProcessed.WithLabelValues("error").Inc()
}

// WriteTextfile writes all metrics to path in the Prometheus text format.
// The file is written atomically.
func (c *Collector) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, c.registry); err != nil {
		return fmt.Errorf("failed to write metrics file: %w", err)
	}
	return nil
}
