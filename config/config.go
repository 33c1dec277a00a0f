// Package config holds the benchmark sweep configuration: its defaults,
// YAML loading and validation.
//
// Precedence is defaults < YAML file < command-line flags; the CLI applies
// the last layer after Load.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pathbench/builder"
	"github.com/katalvlaran/pathbench/pathfind"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Defaults of the classic sweep.
const (
	DefaultMin       = 10
	DefaultMax       = 1010
	DefaultStep      = 50
	DefaultRepeats   = 100
	DefaultTrials    = 1
	DefaultLogLevel  = "info"
	DefaultLogFormat = "auto"
)

// Sweep is the inclusive arithmetic progression of configured vertex counts.
type Sweep struct {
	Min  int `yaml:"min"`
	Max  int `yaml:"max"`
	Step int `yaml:"step"`
}

// Points returns Min, Min+Step, ... up to and including Max.
// It returns nil when Step is not positive.
func (s Sweep) Points() []int {
	if s.Step <= 0 || s.Max < s.Min {
		return nil
	}
	pts := make([]int, 0, (s.Max-s.Min)/s.Step+1)
	for n := s.Min; n <= s.Max; n += s.Step {
		pts = append(pts, n)
	}

	return pts
}

// Config is the full benchmark configuration.
type Config struct {
	// Sweep of vertex counts.
	Sweep Sweep `yaml:"sweep"`

	// Repeats is the number of timed calls averaged per solver per trial.
	Repeats int `yaml:"repeats"`

	// Trials is the number of endpoint pairs drawn per graph.
	Trials int `yaml:"trials"`

	// Seed fixes the random source; nil seeds from OS entropy.
	Seed *int64 `yaml:"seed,omitempty"`

	// Topologies and Solvers select subsets by display name, in run order.
	Topologies []string `yaml:"topologies"`
	Solvers    []string `yaml:"solvers"`

	// Output is the CSV table path.
	Output string `yaml:"output,omitempty"`

	// MetricsFile, when set, receives a Prometheus textfile after the run.
	MetricsFile string `yaml:"metrics_file,omitempty"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
	// LogFormat is text, json, or auto (text on a terminal, json otherwise).
	LogFormat string `yaml:"log_format"`
}

// Default returns the classic configuration: 10..1010 step 50, 100 repeats,
// one trial per graph, every topology and every solver.
func Default() Config {
	return Config{
		Sweep:      Sweep{Min: DefaultMin, Max: DefaultMax, Step: DefaultStep},
		Repeats:    DefaultRepeats,
		Trials:     DefaultTrials,
		Topologies: builder.Names(),
		Solvers:    pathfind.Names(),
		LogLevel:   DefaultLogLevel,
		LogFormat:  DefaultLogFormat,
	}
}

// Load reads a YAML file over Default and validates the result.
// Unknown keys are rejected. An empty file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	if err = Decode(f, &cfg); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	if err = cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Decode strictly decodes YAML from r into cfg, keeping fields r omits.
func Decode(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode: %w", err)
	}

	return nil
}

// Marshal renders cfg as YAML.
func (c Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}

	return data, nil
}

// Validate reports the first inconsistency, wrapping ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case c.Sweep.Min < builder.MinVertices:
		return fmt.Errorf("%w: sweep.min=%d < %d", ErrInvalidConfig, c.Sweep.Min, builder.MinVertices)
	case c.Sweep.Max < c.Sweep.Min:
		return fmt.Errorf("%w: sweep.max=%d < sweep.min=%d", ErrInvalidConfig, c.Sweep.Max, c.Sweep.Min)
	case c.Sweep.Step < 1:
		return fmt.Errorf("%w: sweep.step=%d < 1", ErrInvalidConfig, c.Sweep.Step)
	case c.Repeats < 1:
		return fmt.Errorf("%w: repeats=%d < 1", ErrInvalidConfig, c.Repeats)
	case c.Trials < 1:
		return fmt.Errorf("%w: trials=%d < 1", ErrInvalidConfig, c.Trials)
	case len(c.Topologies) == 0:
		return fmt.Errorf("%w: no topologies selected", ErrInvalidConfig)
	case len(c.Solvers) == 0:
		return fmt.Errorf("%w: no solvers selected", ErrInvalidConfig)
	}

	if err := oneOf("topology", c.Topologies, builder.Names()); err != nil {
		return err
	}
	if err := oneOf("solver", c.Solvers, pathfind.Names()); err != nil {
		return err
	}
	if err := oneOf("log_level", []string{c.LogLevel}, []string{"debug", "info", "warn", "error"}); err != nil {
		return err
	}
	if err := oneOf("log_format", []string{c.LogFormat}, []string{"auto", "text", "json"}); err != nil {
		return err
	}

	return nil
}

// oneOf checks every value against allowed, case-insensitively, and rejects
// repeats.
func oneOf(field string, values, allowed []string) error {
	seen := make(map[string]bool, len(values))
	for _, v := range values {
		key := strings.ToLower(v)
		if seen[key] {
			return fmt.Errorf("%w: %s %q listed twice", ErrInvalidConfig, field, v)
		}
		seen[key] = true

		ok := false
		for _, a := range allowed {
			if strings.EqualFold(v, a) {
				ok = true
				break
			}
		}
		if !ok {
			return fmt.Errorf("%w: %s %q (want one of %s)", ErrInvalidConfig, field, v, strings.Join(allowed, ", "))
		}
	}

	return nil
}
