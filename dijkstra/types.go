// Package dijkstra defines core types and configuration options
// for the shortest-path engine.
//
// Options:
//
//	– MaxDistance:      optional cap on distances to settle; vertices beyond it stay unreached.
//	– InfEdgeThreshold: edges with weight >= this threshold are treated as impassable.
//	– Logger:           zap logger for debug-level query tracing (no-op by default).
//
// Errors (sentinel):
//
//	– ErrSourceNotFound  if the source key is not part of the snapshot.
//	– ErrTargetNotFound  if PathTo is asked for a key outside the snapshot.
//	– ErrUnreachable     if PathTo is asked for a key with no path from the source.
//	– ErrNegativeWeight  if the adjacency snapshot carries a negative or NaN weight.
//	– ErrBadMaxDistance  if MaxDistance < 0 (panic in the option constructor).
//	– ErrBadInfThreshold if InfEdgeThreshold <= 0 (panic in the option constructor).
package dijkstra

import (
	"errors"
	"math"

	"go.uber.org/zap"
)

// Sentinel errors returned by the engine.
var (
	// ErrSourceNotFound indicates that the requested source key is not among the engine's keys.
	ErrSourceNotFound = errors.New("dijkstra: source vertex not found")

	// ErrTargetNotFound indicates that a path was requested to a key the result does not know.
	ErrTargetNotFound = errors.New("dijkstra: target vertex not found")

	// ErrUnreachable indicates that the target has no path from the source.
	ErrUnreachable = errors.New("dijkstra: target unreachable from source")

	// ErrNegativeWeight indicates that a negative (or NaN) edge weight was found in the snapshot.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or a negative value,
	// which would treat every edge as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures the behavior of the engine.
//
// MaxDistance      – cap on settled distances. Default +Inf (no cap).
// InfEdgeThreshold – edges with weight ≥ this value are skipped. Default +Inf (none).
// Logger           – receives debug events; never nil after DefaultOptions.
type Options struct {
	MaxDistance      float64
	InfEdgeThreshold float64
	Logger           *zap.Logger
}

// Option represents a functional option for configuring the engine.
type Option func(*Options)

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed this value are left unreached.
// Panics with ErrBadMaxDistance on negative or NaN input.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight at or above which edges are walls.
// Panics with ErrBadInfThreshold on non-positive or NaN input.
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		if threshold <= 0 || math.IsNaN(threshold) {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// WithLogger routes engine debug events to l. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns Options with no caps and a no-op logger.
func DefaultOptions() Options {
	return Options{
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
		Logger:           zap.NewNop(),
	}
}

// Stats counts the work done by one ShortestPath call.
type Stats struct {
	// Pops is the number of entries removed from the priority queue.
	Pops int
	// StaleSkips counts popped entries discarded because a shorter distance was already known.
	StaleSkips int
	// BlockedSkips counts edges skipped because they are in the disabled set.
	BlockedSkips int
	// WallSkips counts edges skipped by InfEdgeThreshold.
	WallSkips int
	// Relaxations counts successful distance improvements.
	Relaxations int
}
