// Package monitoring provides Prometheus metrics for console log channels.
package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// LinesWritten tracks the total number of lines flushed per channel.
	LinesWritten = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "debugtools_lines_total",
		Help: "Total number of lines written",
	}, []string{"severity"})

	// LineSize tracks the length of rendered lines in bytes, colour codes excluded.
	LineSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "debugtools_line_size_bytes",
		Help:    "Size of rendered lines in bytes",
		Buckets: prometheus.ExponentialBuckets(32, 2, 10), // 32B to 16KB
	})

	// LinesWithoutCaller tracks lines printed with no caller label.
	LinesWithoutCaller = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "debugtools_empty_caller_total",
		Help: "Total number of lines written without a caller label",
	}, []string{"severity"})
)

// RecordLine records one flushed line
func RecordLine(severity string, size int, hasCaller bool) {
	LinesWritten.WithLabelValues(severity).Inc()
	LineSize.Observe(float64(size))
	if !hasCaller {
		LinesWithoutCaller.WithLabelValues(severity).Inc()
	}
}
