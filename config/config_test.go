package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathbench/config"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pathbench.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	require.NoError(t, cfg.Validate())

	pts := cfg.Sweep.Points()
	require.Len(t, pts, 21)
	assert.Equal(t, 10, pts[0])
	assert.Equal(t, 60, pts[1])
	assert.Equal(t, 1010, pts[len(pts)-1])
	assert.Equal(t, 100, cfg.Repeats)
	assert.Equal(t, []string{"Full", "Partial", "Tree"}, cfg.Topologies)
	assert.Equal(t, []string{"Dijkstra", "Floyd-Warshall", "Bellman-Ford", "SPFA"}, cfg.Solvers)
	assert.Nil(t, cfg.Seed)
}

func TestSweepPoints(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []int{2, 5, 8}, config.Sweep{Min: 2, Max: 9, Step: 3}.Points())
	assert.Equal(t, []int{4}, config.Sweep{Min: 4, Max: 4, Step: 10}.Points())
	assert.Nil(t, config.Sweep{Min: 4, Max: 9, Step: 0}.Points())
}

func TestLoad_OverridesDefaults(t *testing.T) {
	t.Parallel()

	path := writeFile(t, strings.Join([]string{
		"sweep:",
		"  min: 4",
		"  max: 20",
		"  step: 4",
		"repeats: 3",
		"seed: 42",
		"solvers: [dijkstra, SPFA]",
		"log_format: json",
	}, "\n"))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.Sweep{Min: 4, Max: 20, Step: 4}, cfg.Sweep)
	assert.Equal(t, 3, cfg.Repeats)
	assert.Equal(t, config.DefaultTrials, cfg.Trials)
	require.NotNil(t, cfg.Seed)
	assert.Equal(t, int64(42), *cfg.Seed)
	assert.Equal(t, []string{"dijkstra", "SPFA"}, cfg.Solvers)
	assert.Equal(t, []string{"Full", "Partial", "Tree"}, cfg.Topologies)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoad_EmptyFileIsDefault(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load(writeFile(t, ""))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = config.Load(writeFile(t, "repeat: 5\n"))
	assert.Error(t, err, "unknown key must be rejected")

	_, err = config.Load(writeFile(t, "repeats: 0\n"))
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"min below two", func(c *config.Config) { c.Sweep.Min = 1 }},
		{"max below min", func(c *config.Config) { c.Sweep.Max = 5 }},
		{"zero step", func(c *config.Config) { c.Sweep.Step = 0 }},
		{"zero trials", func(c *config.Config) { c.Trials = 0 }},
		{"no topologies", func(c *config.Config) { c.Topologies = nil }},
		{"no solvers", func(c *config.Config) { c.Solvers = []string{} }},
		{"unknown topology", func(c *config.Config) { c.Topologies = []string{"Grid"} }},
		{"duplicate solver", func(c *config.Config) { c.Solvers = []string{"SPFA", "spfa"} }},
		{"bad level", func(c *config.Config) { c.LogLevel = "trace" }},
		{"bad format", func(c *config.Config) { c.LogFormat = "xml" }},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg := config.Default()
			tc.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig)
		})
	}
}

func TestMarshal_RoundTripsThroughDecode(t *testing.T) {
	t.Parallel()

	seed := int64(7)
	cfg := config.Default()
	cfg.Seed = &seed
	data, err := cfg.Marshal()
	require.NoError(t, err)

	var back config.Config
	require.NoError(t, config.Decode(strings.NewReader(string(data)), &back))
	assert.Equal(t, cfg, back)
}
