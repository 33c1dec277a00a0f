package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/pathbench/config"
)

// flagValues holds the raw command-line values; only flags the user set
// override the configuration.
type flagValues struct {
	configPath  string
	min         int
	max         int
	step        int
	repeats     int
	trials      int
	seed        int64
	topologies  []string
	solvers     []string
	metricsFile string
	logLevel    string
	logFormat   string
}

func newRootCmd() *cobra.Command {
	var fv flagValues

	root := &cobra.Command{
		Use:   "pathbench [flags] <output.csv>",
		Short: "Benchmark shortest-path solvers on random graphs",
		Long: `pathbench sweeps vertex counts over three graph topologies (Full,
Partial, Tree), times Dijkstra, Floyd-Warshall, Bellman-Ford and SPFA on
random endpoint pairs, and writes the averages as a CSV table.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd.Flags(), fv, args)
			if err != nil {
				return err
			}

			return runBench(cmd.Context(), cmd.ErrOrStderr(), cfg)
		},
	}

	f := root.Flags()
	f.StringVarP(&fv.configPath, "config", "c", "", "YAML configuration file")
	f.IntVar(&fv.min, "min", config.DefaultMin, "smallest vertex count")
	f.IntVar(&fv.max, "max", config.DefaultMax, "largest vertex count")
	f.IntVar(&fv.step, "step", config.DefaultStep, "vertex count step")
	f.IntVarP(&fv.repeats, "repeats", "r", config.DefaultRepeats, "timed calls per solver per trial")
	f.IntVar(&fv.trials, "trials", config.DefaultTrials, "endpoint pairs per graph")
	f.Int64Var(&fv.seed, "seed", 0, "random seed (default: OS entropy)")
	f.StringSliceVar(&fv.topologies, "topology", nil, "topologies to run (default: all)")
	f.StringSliceVar(&fv.solvers, "solver", nil, "solvers to run (default: all)")
	f.StringVar(&fv.metricsFile, "metrics-file", "", "write Prometheus textfile metrics here")
	f.StringVar(&fv.logLevel, "log-level", config.DefaultLogLevel, "debug, info, warn or error")
	f.StringVar(&fv.logFormat, "log-format", config.DefaultLogFormat, "auto, text or json")

	root.AddCommand(newDefaultsCmd())

	return root
}

func newDefaultsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "defaults",
		Short: "Print the default configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := config.Default().Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)

			return err
		},
	}
}

// resolveConfig layers defaults, the optional YAML file, set flags and the
// positional output path, then validates.
func resolveConfig(flags *pflag.FlagSet, fv flagValues, args []string) (config.Config, error) {
	cfg := config.Default()
	if fv.configPath != "" {
		loaded, err := config.Load(fv.configPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	if flags.Changed("min") {
		cfg.Sweep.Min = fv.min
	}
	if flags.Changed("max") {
		cfg.Sweep.Max = fv.max
	}
	if flags.Changed("step") {
		cfg.Sweep.Step = fv.step
	}
	if flags.Changed("repeats") {
		cfg.Repeats = fv.repeats
	}
	if flags.Changed("trials") {
		cfg.Trials = fv.trials
	}
	if flags.Changed("seed") {
		seed := fv.seed
		cfg.Seed = &seed
	}
	if flags.Changed("topology") {
		cfg.Topologies = fv.topologies
	}
	if flags.Changed("solver") {
		cfg.Solvers = fv.solvers
	}
	if flags.Changed("metrics-file") {
		cfg.MetricsFile = fv.metricsFile
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = fv.logLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = fv.logFormat
	}
	if len(args) == 1 {
		cfg.Output = args[0]
	}

	if cfg.Output == "" {
		return cfg, fmt.Errorf("%w: no output file (pass it as the argument or set output in the config)", config.ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}
