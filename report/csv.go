package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/pathbench/bench"
)

// CSV writes records as comma-separated rows under a fixed header row.
// Every row is flushed as it is written, so an aborted run leaves a valid
// prefix of the table behind.
type CSV struct {
	w      *csv.Writer
	closer io.Closer
}

// NewCSV writes the header to w and returns the sink.
func NewCSV(w io.Writer) (*CSV, error) {
	c := &CSV{w: csv.NewWriter(w)}
	if err := c.row(bench.Header()); err != nil {
		return nil, fmt.Errorf("report: csv header: %w", err)
	}

	return c, nil
}

// CreateCSV truncates or creates path and writes the header to it.
// The caller must Close the sink.
func CreateCSV(path string) (*CSV, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("report: %w", err)
	}
	c, err := NewCSV(f)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	c.closer = f

	return c, nil
}

// Write appends one row.
func (c *CSV) Write(r bench.Record) error {
	if err := c.row(r.Fields()); err != nil {
		return fmt.Errorf("report: csv row %s/%d/%s: %w", r.Topology, r.ConfiguredVertices, r.Solver, err)
	}

	return nil
}

// Close flushes and closes the underlying file, if CreateCSV opened one.
func (c *CSV) Close() error {
	c.w.Flush()
	if err := c.w.Error(); err != nil {
		return fmt.Errorf("report: csv flush: %w", err)
	}
	if c.closer == nil {
		return nil
	}

	return c.closer.Close()
}

func (c *CSV) row(fields []string) error {
	if err := c.w.Write(fields); err != nil {
		return err
	}
	c.w.Flush()

	return c.w.Error()
}
