package report

import "github.com/katalvlaran/pathbench/bench"

// Multi fans every record out to sinks in order, stopping at the first
// failure.
type Multi []bench.Sink

// Write writes r to every sink.
func (m Multi) Write(r bench.Record) error {
	for _, s := range m {
		if err := s.Write(r); err != nil {
			return err
		}
	}

	return nil
}
