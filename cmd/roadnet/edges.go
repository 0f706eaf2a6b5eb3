package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newEdgesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edges",
		Short: "List each road once with its weight and blocked state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runEdges(cmd.OutOrStdout())
		},
	}
	addGraphFlags(cmd)
	return cmd
}

func (a *app) runEdges(out io.Writer) error {
	g, err := a.loadGraph()
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FROM\tTO\tWEIGHT\tBLOCKED")
	for _, e := range g.GetEdges() {
		w, _ := g.Weight(e.From, e.To)
		fmt.Fprintf(tw, "%s\t%s\t%s\t%t\n", e.From, e.To, formatDistance(w), g.IsDisabled(e.From, e.To))
	}
	return tw.Flush()
}
