// Package dijkstra defines core types and configuration options
// for the label-setting shortest-path engine on weighted road networks.
//
// ShortestPath computes the minimum-cost route from a source node to a
// target node in a graph with non-negative edge weights. The engine
// maintains a min-priority frontier of discovered nodes and relaxes
// edges in increasing order of distance from the source, stopping as
// soon as the target is settled.
//
// Complexity:
//
//	– Time:  O((V + E) log V)   where V = |nodes|, E = |edges|
//	   • Each node is settled at most once (≤ V pops that do work).
//	   • Each edge relaxation may push one frontier entry (≤ E pushes).
//	   • Each heap operation costs O(log N), N ≤ V + E, simplified to O(log V).
//	– Space: O(V + E)
//	   • O(V) for the distance and predecessor maps.
//	   • O(E) worst-case frontier entries (lazy decrease-key).
//
// Options:
//
//	– WithContext(ctx):     cancellation checked once per settled node.
//	– WithMaxCost(c):       nodes whose cost would exceed c are not explored.
//	– WithImpassableAt(t):  edges with weight ≥ t are treated as closed roads.
//
// Errors (sentinel):
//
//	– ErrEmptySource    if the source ID is empty.
//	– ErrEmptyTarget    if the target ID is empty.
//	– ErrNilGraph       if the graph pointer is nil.
//	– ErrSourceNotFound if the source node is absent from the graph.
//	– ErrTargetNotFound if the target node is absent from the graph.
//	– ErrNegativeWeight if a negative edge weight is detected.
//	– ErrBadMaxCost     if MaxCost < 0 (panic in the option constructor).
//	– ErrBadImpassable  if the impassable threshold ≤ 0 (panic likewise).
package dijkstra

import (
	"context"
	"errors"
	"math"
)

// Sentinel errors returned by the shortest-path engine.
var (
	// ErrEmptySource indicates that the provided source node ID is empty.
	ErrEmptySource = errors.New("dijkstra: source node ID is empty")

	// ErrEmptyTarget indicates that the provided target node ID is empty.
	ErrEmptyTarget = errors.New("dijkstra: target node ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to ShortestPath.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrSourceNotFound indicates that the source node does not exist in the
	// graph. An unknown endpoint is a caller mistake, surfaced as an error
	// rather than silently reported as "unreachable".
	ErrSourceNotFound = errors.New("dijkstra: source node not found in graph")

	// ErrTargetNotFound indicates that the target node does not exist in the
	// graph.
	ErrTargetNotFound = errors.New("dijkstra: target node not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected.
	// core.Graph already rejects these at insertion; the pre-scan keeps the
	// invariant local to the engine as well.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxCost indicates that MaxCost was set to a negative value.
	ErrBadMaxCost = errors.New("dijkstra: MaxCost must be non-negative")

	// ErrBadImpassable indicates that the impassable threshold was set to
	// zero or a negative value, which would close every road.
	ErrBadImpassable = errors.New("dijkstra: impassable threshold must be positive")
)

// PathResult is the outcome of a single shortest-path query.
// It is immutable after creation and owned by the caller.
//
// When the target cannot be reached, Cost is +Inf, Path is empty and
// Length is 0 — unreachability is a normal result variant, not an error.
type PathResult struct {
	// Cost is the total weight of the optimal route, or math.Inf(1)
	// when no route exists.
	Cost float64

	// Path is the ordered node sequence from source to target inclusive.
	// Empty when the target is unreachable.
	Path []string

	// Length is the number of nodes in Path.
	Length int
}

// Reachable reports whether the query found a route to the target.
func (r *PathResult) Reachable() bool {
	return !math.IsInf(r.Cost, 1)
}

// Options configures the behavior of a shortest-path query.
//
// Ctx        – context for cancellation; checked once per settled node.
// MaxCost    – cap on route cost; nodes beyond it are not explored.
//
//	Must be ≥ 0. Default is +Inf (no cap).
//
// Impassable – edges with weight ≥ this threshold are treated as closed.
//
//	Must be > 0. Default is +Inf (every edge traversable).
type Options struct {
	Ctx        context.Context // Cancellation and deadline control
	MaxCost    float64         // Maximum route cost to explore
	Impassable float64         // Weight threshold for closed roads
}

// Option represents a functional option for configuring ShortestPath.
type Option func(*Options)

// WithContext sets a custom context for cancellation.
// A nil ctx is ignored and the default context.Background() is kept.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxCost sets a maximum route-cost threshold.
// Nodes whose shortest distance would exceed this value are not explored.
// Must pass a non-negative value; negative values panic with ErrBadMaxCost.
// Default (if not set) is +Inf (no cap).
func WithMaxCost(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			panic(ErrBadMaxCost.Error())
		}
		o.MaxCost = max
	}
}

// WithImpassableAt defines a weight threshold above which edges are
// considered closed roads (treated as infinite cost and skipped).
// Must pass a positive value; zero or negative panic with ErrBadImpassable.
// Default (if not set) is +Inf (no closed roads).
func WithImpassableAt(threshold float64) Option {
	return func(o *Options) {
		if threshold <= 0 || math.IsNaN(threshold) {
			panic(ErrBadImpassable.Error())
		}
		o.Impassable = threshold
	}
}

// DefaultOptions returns an Options struct initialized with sensible
// defaults. Use this as a starting point for functional-option overrides.
//
// Defaults:
//   - Ctx:        context.Background() (never cancelled).
//   - MaxCost:    +Inf (explore every reachable node up to the target).
//   - Impassable: +Inf (no edges treated as closed).
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		MaxCost:    math.Inf(1),
		Impassable: math.Inf(1),
	}
}
