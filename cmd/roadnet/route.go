package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/roadnet/dijkstra"
	"github.com/katalvlaran/roadnet/metrics"
)

func newRouteCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "route",
		Short: "Print shortest distances from --from, and the route to --to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRoute(cmd.OutOrStdout())
		},
	}
	addGraphFlags(cmd)
	cmd.Flags().String(flagFrom, "", "source node")
	cmd.Flags().String(flagTo, "", "optional target node")
	cmd.Flags().String(flagMetricsOut, "", "write Prometheus text metrics to this file")
	return cmd
}

func (a *app) runRoute(out io.Writer) error {
	if a.cfg.Source == "" {
		return fmt.Errorf("%w: --%s", errMissingFlag, flagFrom)
	}

	g, err := a.loadGraph()
	if err != nil {
		return err
	}

	collector := metrics.NewCollector()
	collector.ObserveGraph(g.NodeCount(), g.EdgeCount())

	eng, err := dijkstra.FromGraph(g, dijkstra.WithLogger(a.log))
	if err != nil {
		return err
	}

	start := time.Now()
	res, err := eng.ShortestPath(a.cfg.Source)
	elapsed := time.Since(start)
	var stats dijkstra.Stats
	if res != nil {
		stats = res.Stats()
	}
	collector.ObserveQuery(err, elapsed, stats)
	if werr := a.writeMetrics(collector); werr != nil {
		return werr
	}
	if err != nil {
		return err
	}

	a.log.Info("shortest paths computed",
		zap.String("source", a.cfg.Source),
		zap.Duration("elapsed", elapsed),
		zap.Int("relaxations", stats.Relaxations),
		zap.Int("blocked_skips", stats.BlockedSkips))

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NODE\tDISTANCE\tPREV")
	for _, k := range res.Keys() {
		d, _ := res.Distance(k)
		prev, ok := res.Predecessor(k)
		if !ok {
			prev = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", k, formatDistance(d), prev)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if a.cfg.Target == "" {
		return nil
	}
	path, err := res.PathTo(a.cfg.Target)
	switch {
	case errors.Is(err, dijkstra.ErrUnreachable):
		fmt.Fprintf(out, "route %s -> %s: unreachable\n", a.cfg.Source, a.cfg.Target)
		return nil
	case err != nil:
		return err
	}
	d, _ := res.Distance(a.cfg.Target)
	fmt.Fprintf(out, "route %s -> %s: %v (%s)\n", a.cfg.Source, a.cfg.Target, path, formatDistance(d))
	return nil
}

func (a *app) writeMetrics(c *metrics.Collector) error {
	if a.cfg.MetricsOut == "" {
		return nil
	}
	if err := c.Write(a.cfg.MetricsOut); err != nil {
		return fmt.Errorf("writing metrics: %w", err)
	}
	a.log.Debug("metrics written", zap.String("path", a.cfg.MetricsOut))
	return nil
}

func formatDistance(d float64) string {
	return strconv.FormatFloat(d, 'g', -1, 64)
}
