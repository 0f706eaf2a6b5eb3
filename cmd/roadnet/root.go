package main

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/roadnet/config"
	"github.com/katalvlaran/roadnet/ingest"
	"github.com/katalvlaran/roadnet/logging"
)

var errMissingFlag = errors.New("missing required setting")

// app carries state shared by every subcommand after PersistentPreRunE.
type app struct {
	configPath string
	cfg        config.Config
	log        *zap.Logger
	runID      string
}

// flag names shared between the config layer and cobra.
const (
	flagConfig     = "config"
	flagLogLevel   = "log-level"
	flagLogFormat  = "log-format"
	flagCSV        = "csv"
	flagFrom       = "from"
	flagTo         = "to"
	flagBlock      = "block"
	flagMetricsOut = "metrics-out"
	flagOut        = "out"
)

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "roadnet",
		Short:         "Shortest routes over a road network with blocked roads",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, flagConfig, "", "path to a YAML config file")
	rootCmd.PersistentFlags().String(flagLogLevel, "", "log level: debug|info|warn|error")
	rootCmd.PersistentFlags().String(flagLogFormat, "", "log format: json|console")

	rootCmd.AddCommand(newRouteCmd(a), newEdgesCmd(a), newDotCmd(a))
	return rootCmd
}

// setup layers config file, dotenv and environment, then explicitly set flags.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	changed := func(name string) bool {
		return flags.Lookup(name) != nil && flags.Changed(name)
	}
	str := func(name string, dst *string) {
		if changed(name) {
			*dst, _ = flags.GetString(name)
		}
	}
	str(flagLogLevel, &cfg.LogLevel)
	str(flagLogFormat, &cfg.LogFormat)
	str(flagCSV, &cfg.CSV)
	str(flagFrom, &cfg.Source)
	str(flagTo, &cfg.Target)
	str(flagMetricsOut, &cfg.MetricsOut)
	if changed(flagBlock) {
		cfg.Blocked, _ = flags.GetStringSlice(flagBlock)
		if _, err := cfg.Blocks(); err != nil {
			return err
		}
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}

	a.cfg = cfg
	a.runID = uuid.NewString()
	a.log = logger.With(zap.String("run_id", a.runID), zap.String("command", cmd.Name()))
	return nil
}

// loadGraph reads the configured CSV and applies configured blocks.
func (a *app) loadGraph() (*ingest.Graph, error) {
	if a.cfg.CSV == "" {
		return nil, fmt.Errorf("%w: --%s", errMissingFlag, flagCSV)
	}

	g, err := ingest.LoadFile(a.cfg.CSV, ingest.WithLogger(a.log))
	if err != nil {
		return nil, err
	}

	blocks, err := a.cfg.Blocks()
	if err != nil {
		return nil, err
	}
	for _, b := range blocks {
		if err := g.DisableEdge(b[0], b[1]); err != nil {
			return nil, fmt.Errorf("blocking %s:%s: %w", b[0], b[1], err)
		}
	}

	a.log.Info("road network loaded",
		zap.String("csv", a.cfg.CSV),
		zap.Int("nodes", g.NodeCount()),
		zap.Int("edges", g.EdgeCount()),
		zap.Int("extra_blocks", len(blocks)))
	return g, nil
}

func addGraphFlags(cmd *cobra.Command) {
	cmd.Flags().String(flagCSV, "", "road network CSV (from,to,weight,isBlocked)")
	cmd.Flags().StringSlice(flagBlock, nil, "additionally block a road, as from:to (repeatable)")
}
