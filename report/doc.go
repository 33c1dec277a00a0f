// Package report holds the bench.Sink and bench.Progress implementations:
// a CSV table writer, a Prometheus metrics collector that can be dumped as a
// node-exporter textfile, and a slog progress logger.
package report
