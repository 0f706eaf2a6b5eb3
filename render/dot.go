// Package render writes road networks as Graphviz DOT.
//
// Nodes are emitted in insertion order, edges once per logical edge. Blocked
// edges are drawn red and dashed, edges on a highlighted route bold blue.
// Every edge is labelled with its weight. Layout is left to Graphviz.
package render

import (
	"bufio"
	"cmp"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/roadnet/core"
)

// Colours used for edge styling.
const (
	ColorDefault = "#666666"
	ColorBlocked = "#d62728"
	ColorRoute   = "#1f77b4"
)

// Options configures WriteDOT.
type Options struct {
	Title string
	// route holds both orientations of every highlighted hop, keyed by fmt.Sprint of the keys.
	route map[[2]string]struct{}
}

// Option is a functional option for WriteDOT.
type Option func(*Options)

// WithTitle sets the graph label.
func WithTitle(title string) Option {
	return func(o *Options) { o.Title = title }
}

// WithRoute highlights each consecutive pair of route.
func WithRoute[K cmp.Ordered](route []K) Option {
	return func(o *Options) {
		if o.route == nil {
			o.route = make(map[[2]string]struct{}, 2*len(route))
		}
		for i := 1; i < len(route); i++ {
			a, b := fmt.Sprint(route[i-1]), fmt.Sprint(route[i])
			o.route[[2]string{a, b}] = struct{}{}
			o.route[[2]string{b, a}] = struct{}{}
		}
	}
}

// WriteDOT renders g to w as an undirected DOT graph.
func WriteDOT[K cmp.Ordered, N any, E comparable](w io.Writer, g *core.Graph[K, N, E], opts ...Option) error {
	var cfg Options
	for _, opt := range opts {
		opt(&cfg)
	}

	bw := bufio.NewWriter(w)

	bw.WriteString("graph G {\n")
	if cfg.Title != "" {
		fmt.Fprintf(bw, "  graph [label=%s, labelloc=t];\n", quote(cfg.Title))
	}
	bw.WriteString("  node [shape=circle, fontname=\"Arial\"];\n")
	bw.WriteString("  edge [fontname=\"Arial\", fontsize=10];\n")

	data := g.GetNodesData()
	for _, k := range g.Keys() {
		id := fmt.Sprint(k)
		label := fmt.Sprint(data[k])
		if label == "" {
			label = id
		}
		fmt.Fprintf(bw, "  %s [label=%s];\n", quote(id), quote(label))
	}

	for _, e := range g.GetEdges() {
		weight, _ := g.Weight(e.From, e.To)
		attrs := []string{"label=" + quote(strconv.FormatFloat(weight, 'g', -1, 64))}

		from, to := fmt.Sprint(e.From), fmt.Sprint(e.To)
		_, routed := cfg.route[[2]string{from, to}]
		switch {
		case g.IsDisabled(e.From, e.To) || g.IsDisabled(e.To, e.From):
			attrs = append(attrs, "color="+quote(ColorBlocked), "style=dashed")
		case routed:
			attrs = append(attrs, "color="+quote(ColorRoute), "penwidth=2.5")
		default:
			attrs = append(attrs, "color="+quote(ColorDefault))
		}

		fmt.Fprintf(bw, "  %s -- %s [%s];\n",
			quote(from), quote(to), strings.Join(attrs, ", "))
	}

	bw.WriteString("}\n")

	return bw.Flush()
}

// quote returns s as a DOT double-quoted ID.
func quote(s string) string {
	return `"` + strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`).Replace(s) + `"`
}
