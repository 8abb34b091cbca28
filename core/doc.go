// Package core provides a thread-safe in-memory Graph implementation
// for directed, weighted road networks with a minimal, composable API
// surface.
//
// The Graph G = (V,E) models exactly what routing needs:
//
//   - Directed edges only — a road u→v never implies v→u.
//   - Non-negative real weights, enforced at insertion time
//     (AddEdge(weight<0) → ErrNegativeWeight, NaN → ErrBadWeight).
//   - At most one edge per ordered pair via nested maps
//     adj[from][to] = weight; re-insertion overwrites (last write wins).
//   - Implicit node registration — AddEdge registers both endpoints,
//     so every edge endpoint is always a member of the node set.
//   - Append-only lifecycle — no node or edge removal; the observed use
//     case builds a network once and queries it.
//   - A single sync.RWMutex so a built graph is safe for concurrent
//     reads while insertion remains serialized.
//
// Why use core.Graph?
//
//   - Deterministic iteration — Nodes(), Edges(), Neighbors(),
//     NeighborIDs() all return sorted results.
//   - Structural invariants — duplicate-pair and negative-weight
//     handling live in the store, not in every caller.
//   - Clone support — deep copy for callers that mutate a scenario
//     variant without touching the base network.
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(id string) error            // O(1), idempotent
//	HasNode(id string) bool             // O(1)
//
//	// Edge lifecycle
//	AddEdge(from,to string, weight float64) error // O(1), last write wins
//	HasEdge(from,to string) bool                  // O(1)
//
//	// Query
//	Weight(from,to string) (float64, error) // O(1), ErrEdgeNotFound if absent
//	Neighbors(id string) ([]Edge, error)    // O(d·log d), sorted by To
//	NeighborIDs(id string) ([]string, error)// O(d·log d), sorted
//	Nodes() []string                        // O(V·log V), sorted
//	Edges() []Edge                          // O(E·log E), sorted by (From,To)
//
//	// Counts
//	NodeCount() int                     // O(1)
//	EdgeCount() int                     // O(#sources)
//
//	// Cloning
//	Clone() *Graph                      // O(V+E) deep copy
//
// Edge struct fields:
//
//	From   string  // source node ID
//	To     string  // destination node ID
//	Weight float64 // non-negative traversal cost
//
// Errors:
//
//	ErrEmptyNodeID    – zero-length node ID
//	ErrNodeNotFound   – missing node
//	ErrEdgeNotFound   – missing edge
//	ErrNegativeWeight – negative weight on insertion
//	ErrBadWeight      – NaN weight on insertion
package core
