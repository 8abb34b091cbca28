// Package core defines the central Graph and Edge types for directed,
// weighted road networks, and provides thread-safe primitives for
// building and querying them.
//
// All core APIs share a single sync.RWMutex internally, so a fully built
// Graph may be read concurrently by any number of goroutines; mutation
// (edge insertion) is serialized by the same lock.
//
// This file declares Edge, Graph, sentinel errors, and the NewGraph
// constructor.
//
// Errors:
//
//	ErrEmptyNodeID    - node ID is the empty string.
//	ErrNodeNotFound   - requested node does not exist.
//	ErrEdgeNotFound   - requested edge does not exist.
//	ErrNegativeWeight - edge weight < 0 supplied to AddEdge.
//	ErrBadWeight      - edge weight is NaN or otherwise not a usable real.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates that the provided node ID is empty.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrNegativeWeight indicates a negative weight was supplied to AddEdge.
	// Shortest-path correctness depends on non-negativity, so insertion
	// rejects the edge instead of deferring the failure to query time.
	ErrNegativeWeight = errors.New("core: edge weight must be non-negative")

	// ErrBadWeight indicates a weight that is not a usable real (NaN).
	ErrBadWeight = errors.New("core: edge weight is not a number")
)

// Edge represents a directed connection between two nodes.
//
// From and To are node IDs; Weight is the non-negative traversal cost of
// the road segment From→To. An edge u→v does not imply v→u exists.
type Edge struct {
	// From is the source node ID.
	From string

	// To is the destination node ID.
	To string

	// Weight is the non-negative cost of traversing the edge.
	Weight float64
}

// Graph is the core in-memory road-network data structure.
//
// It is directed and weighted, holds at most one edge per ordered node
// pair (re-inserting the pair overwrites the weight — last write wins),
// and registers edge endpoints as nodes implicitly. Nodes and edges are
// never removed: the observed use case is append-only.
//
// mu guards nodes and adj; adj[from][to] = weight.
type Graph struct {
	mu sync.RWMutex

	nodes map[string]struct{}           // node ID → membership
	adj   map[string]map[string]float64 // from → to → weight
}

// NewGraph creates an empty directed, weighted Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		nodes: make(map[string]struct{}),
		adj:   make(map[string]map[string]float64),
	}
}
