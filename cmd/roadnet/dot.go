package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/roadnet/dijkstra"
	"github.com/katalvlaran/roadnet/render"
)

func newDotCmd(a *app) *cobra.Command {
	var outPath string
	cmd := &cobra.Command{
		Use:   "dot",
		Short: "Emit the road network as Graphviz DOT, optionally with a highlighted route",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return err
				}
				defer f.Close()
				out = f
			}
			return a.runDot(out)
		},
	}
	addGraphFlags(cmd)
	cmd.Flags().String(flagFrom, "", "route source to highlight")
	cmd.Flags().String(flagTo, "", "route target to highlight")
	cmd.Flags().StringVar(&outPath, flagOut, "", "write DOT to this file instead of stdout")
	return cmd
}

func (a *app) runDot(out io.Writer) error {
	g, err := a.loadGraph()
	if err != nil {
		return err
	}

	opts := []render.Option{render.WithTitle(a.cfg.CSV)}
	if a.cfg.Source != "" && a.cfg.Target != "" {
		eng, err := dijkstra.FromGraph(g, dijkstra.WithLogger(a.log))
		if err != nil {
			return err
		}
		res, err := eng.ShortestPath(a.cfg.Source)
		if err != nil {
			return err
		}
		path, err := res.PathTo(a.cfg.Target)
		switch {
		case errors.Is(err, dijkstra.ErrUnreachable):
			a.log.Warn("no route to highlight", zap.String("from", a.cfg.Source), zap.String("to", a.cfg.Target))
		case err != nil:
			return err
		default:
			opts = append(opts, render.WithRoute(path))
		}
	}

	if err := render.WriteDOT(out, g, opts...); err != nil {
		return fmt.Errorf("writing dot: %w", err)
	}
	return nil
}
