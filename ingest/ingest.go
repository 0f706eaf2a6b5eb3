// Package ingest loads road network CSV files into a core.Graph.
//
// Expected columns (header row required, order free, names case-insensitive,
// extra columns ignored):
//
//	from,to,weight,isBlocked
//	x,y,1.0,False
//	y,z,2.0,False
//	x,z,10.0,True
//
// Every endpoint becomes a node carrying roads.City{Name: id}; every row
// becomes one logical edge carrying roads.Road. A repeated pair overwrites the
// earlier row.
package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/roadnet/core"
	"github.com/katalvlaran/roadnet/roads"
)

// Column names recognised in the header row.
const (
	ColumnFrom    = "from"
	ColumnTo      = "to"
	ColumnWeight  = "weight"
	ColumnBlocked = "isblocked"
)

// Sentinel errors returned by Load.
var (
	// ErrMissingColumn indicates the header lacks a required column.
	ErrMissingColumn = errors.New("ingest: missing column")

	// ErrEmptyKey indicates an empty from/to cell.
	ErrEmptyKey = errors.New("ingest: empty node key")

	// ErrBadWeight indicates a weight that is not a finite, non-negative number.
	ErrBadWeight = errors.New("ingest: bad weight")

	// ErrBadBlocked indicates an isBlocked cell that is not a boolean.
	ErrBadBlocked = errors.New("ingest: bad isBlocked value")
)

// Graph is the concrete graph type produced by this package.
type Graph = core.Graph[string, roads.City, roads.Road]

// Options configures Load.
type Options struct {
	Logger *zap.Logger
	// Comma is the field delimiter. Default ','.
	Comma rune
}

// Option is a functional option for Load.
type Option func(*Options)

// WithLogger routes load diagnostics to l.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithComma sets the field delimiter.
func WithComma(r rune) Option {
	return func(o *Options) { o.Comma = r }
}

type columns struct {
	from, to, weight, blocked int
}

// Load reads CSV rows from r and builds a graph.
// Errors carry the 1-based input line of the offending row.
func Load(r io.Reader, opts ...Option) (*Graph, error) {
	cfg := Options{Logger: zap.NewNop(), Comma: ','}
	for _, opt := range opts {
		opt(&cfg)
	}

	reader := csv.NewReader(r)
	reader.Comma = cfg.Comma
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("ingest: reading header: %w", err)
	}
	cols, err := locate(header)
	if err != nil {
		return nil, err
	}

	g := core.NewGraph[string, roads.City, roads.Road]()
	rows := 0
	blocked := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ingest: reading row: %w", err)
		}
		line, _ := reader.FieldPos(0)

		from, to, weight, isBlocked, err := parseRow(record, cols)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		g.AddNode(from, roads.City{Name: from})
		g.AddNode(to, roads.City{Name: to})
		g.AddEdge(from, to, roads.Road{From: from, To: to, Length: weight}, weight, isBlocked)

		rows++
		if isBlocked {
			blocked++
		}
	}

	cfg.Logger.Debug("csv loaded",
		zap.Int("rows", rows),
		zap.Int("blocked_rows", blocked),
		zap.Int("nodes", g.NodeCount()),
		zap.Int("edges", g.EdgeCount()))

	return g, nil
}

// LoadFile opens path and calls Load.
func LoadFile(path string, opts ...Option) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ingest: %w", err)
	}
	defer f.Close()

	g, err := Load(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// locate maps required column names to indices.
func locate(header []string) (columns, error) {
	cols := columns{from: -1, to: -1, weight: -1, blocked: -1}
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case ColumnFrom:
			cols.from = i
		case ColumnTo:
			cols.to = i
		case ColumnWeight:
			cols.weight = i
		case ColumnBlocked:
			cols.blocked = i
		}
	}

	switch {
	case cols.from < 0:
		return cols, fmt.Errorf("%w: %s", ErrMissingColumn, ColumnFrom)
	case cols.to < 0:
		return cols, fmt.Errorf("%w: %s", ErrMissingColumn, ColumnTo)
	case cols.weight < 0:
		return cols, fmt.Errorf("%w: %s", ErrMissingColumn, ColumnWeight)
	case cols.blocked < 0:
		return cols, fmt.Errorf("%w: %s", ErrMissingColumn, ColumnBlocked)
	}

	return cols, nil
}

func cell(record []string, i int) string {
	if i >= len(record) {
		return ""
	}

	return strings.TrimSpace(record[i])
}

func parseRow(record []string, cols columns) (string, string, float64, bool, error) {
	from := cell(record, cols.from)
	to := cell(record, cols.to)
	if from == "" || to == "" {
		return "", "", 0, false, ErrEmptyKey
	}

	raw := cell(record, cols.weight)
	weight, err := strconv.ParseFloat(raw, 64)
	if err != nil || weight < 0 || math.IsNaN(weight) || math.IsInf(weight, 0) {
		return "", "", 0, false, fmt.Errorf("%w: %q", ErrBadWeight, raw)
	}

	blocked, err := ParseBlocked(cell(record, cols.blocked))
	if err != nil {
		return "", "", 0, false, err
	}

	return from, to, weight, blocked, nil
}

// ParseBlocked interprets an isBlocked cell. Empty means false; otherwise any
// strconv.ParseBool form ("1", "t", "True", "FALSE", ...) is accepted.
func ParseBlocked(raw string) (bool, error) {
	if raw == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%w: %q", ErrBadBlocked, raw)
	}

	return b, nil
}
