// Package core: Graph method implementations.
//
// This file provides thread-safe, O(1) (amortized) operations for node
// and edge management on the Graph type defined in types.go. Adjacency
// is stored as a nested map adj[from][to] = weight, allowing
// constant-time existence checks, insertion, and weight lookup while
// guaranteeing the one-weight-per-ordered-pair invariant structurally.

package core

import (
	"math"
	"sort"
)

// AddNode inserts a node with the given ID into the Graph.
// Returns ErrEmptyNodeID if id is empty.
// If the node already exists, this is a no-op (idempotent).
// Complexity: O(1) amortized.
func (g *Graph) AddNode(id string) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.nodes[id] = struct{}{}

	return nil
}

// HasNode reports whether a node with the given ID exists in the graph.
// Complexity: O(1).
func (g *Graph) HasNode(id string) bool {
	if id == "" {
		return false // empty ID considered absent
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, exists := g.nodes[id]

	return exists
}

// AddEdge inserts the directed edge from→to with the given weight,
// registering both endpoints as nodes if they are not already known.
// Re-inserting an existing ordered pair overwrites the weight: the last
// write wins, and no error is returned for the duplicate.
//
// Returns ErrEmptyNodeID if either endpoint ID is empty,
// ErrBadWeight if weight is NaN, ErrNegativeWeight if weight < 0.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64) error {
	// 1) Input validation before taking the lock.
	if from == "" || to == "" {
		return ErrEmptyNodeID
	}
	if math.IsNaN(weight) {
		return ErrBadWeight
	}
	// 2) Non-negativity is the correctness invariant of every consumer;
	//    reject at insertion so no query ever sees a negative weight.
	if weight < 0 {
		return ErrNegativeWeight
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 3) Implicit endpoint registration.
	g.nodes[from] = struct{}{}
	g.nodes[to] = struct{}{}

	// 4) Insert or overwrite adj[from][to].
	inner, ok := g.adj[from]
	if !ok {
		inner = make(map[string]float64)
		g.adj[from] = inner
	}
	inner[to] = weight

	return nil
}

// HasEdge reports whether the directed edge from→to exists.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adj[from][to]

	return ok
}

// Weight returns the weight of the directed edge from→to.
// Returns ErrEdgeNotFound if no such edge exists; callers should only
// query pairs obtained from Neighbors or Edges.
// Complexity: O(1).
func (g *Graph) Weight(from, to string) (float64, error) {
	if from == "" || to == "" {
		return 0, ErrEmptyNodeID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	w, ok := g.adj[from][to]
	if !ok {
		return 0, ErrEdgeNotFound
	}

	return w, nil
}

// Neighbors returns all edges outgoing from node id.
// Result is sorted by Edge.To for determinism.
// Returns ErrEmptyNodeID for an empty id, ErrNodeNotFound if the node
// is not in the graph.
// Complexity: O(d log d), where d is the out-degree of id.
func (g *Graph) Neighbors(id string) ([]Edge, error) {
	if id == "" {
		return nil, ErrEmptyNodeID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.nodes[id]; !ok {
		return nil, ErrNodeNotFound
	}

	out := make([]Edge, 0, len(g.adj[id]))
	for to, w := range g.adj[id] {
		out = append(out, Edge{From: id, To: to, Weight: w})
	}
	// Sort by destination to ensure reproducible ordering.
	sort.Slice(out, func(i, j int) bool { return out[i].To < out[j].To })

	return out, nil
}

// NeighborIDs returns the IDs of all nodes reachable from id by a
// single outgoing edge, in sorted order.
// Complexity: O(d log d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(edges))
	for _, e := range edges {
		ids = append(ids, e.To)
	}

	return ids, nil
}

// Nodes returns all node IDs in sorted order.
// Complexity: O(V log V).
func (g *Graph) Nodes() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Edges returns every edge in the graph, sorted by (From, To).
// Reporting and rendering layers use this to draw the full network, not
// just the optimal route.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Edge, 0, len(g.adj))
	for from, inner := range g.adj {
		for to, w := range inner {
			out = append(out, Edge{From: from, To: to, Weight: w})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}

		return out[i].To < out[j].To
	})

	return out
}

// NodeCount returns the total number of nodes. O(1).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// EdgeCount returns the total number of edges. O(E-sources) — it sums
// the per-source adjacency sizes.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n := 0
	for _, inner := range g.adj {
		n += len(inner)
	}

	return n
}

// Clone returns a deep copy of the Graph: nodes, edges, and adjacency.
// The clone shares no mutable state with the original.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph()
	for id := range g.nodes {
		clone.nodes[id] = struct{}{}
	}
	for from, inner := range g.adj {
		ci := make(map[string]float64, len(inner))
		for to, w := range inner {
			ci[to] = w
		}
		clone.adj[from] = ci
	}

	return clone
}
