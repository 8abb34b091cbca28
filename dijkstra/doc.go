// Package dijkstra provides a precise, high-performance implementation of
// the label-setting (Dijkstra) shortest-path algorithm for point-to-point
// queries on directed road networks with non-negative edge weights.
//
// Overview:
//
//   - ShortestPath computes the minimum-cost route from a source node to
//     a target node in O((V + E) log V) time, where V = |nodes| and
//     E = |edges|.
//   - It relies on a min-heap (priority queue) to always settle the
//     next-closest node, and stops as soon as the target is settled.
//   - The result is a PathResult: total cost, the ordered node sequence,
//     and its length. An unreachable target is a normal result variant
//     (Cost = +Inf, empty path), never an error.
//
// When to use:
//
//   - Point-to-point routing on a static weighted network: delivery
//     routes, travel-time queries, reachability with cost bounds.
//   - As a foundation for heuristic searches (substitute a heuristic to
//     get A*).
//
// Key features:
//
//   - Functional options tune behavior without changing the signature.
//   - WithMaxCost: abandons exploration beyond a cost cap, saving work
//     in large networks.
//   - WithImpassableAt: treats any edge with weight ≥ threshold as a
//     closed road (infinite cost).
//   - WithContext: cancellation for long-running queries, checked after
//     each frontier pop.
//   - Early target exit: the loop stops the moment the target's cost is
//     final; other labels are deliberately left unfinalized.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Each node is settled at most once.
//   - Each edge relaxation pushes at most one new frontier entry, which
//     bounds frontier growth on graphs with thousands of nodes.
//   - Stale frontier entries (lazy decrease-key) are skipped on pop.
//   - Space: O(V + E)
//
// Error handling (sentinel errors):
//
//   - ErrEmptySource / ErrEmptyTarget:
//     Returned when an endpoint ID is the empty string.
//   - ErrNilGraph:
//     Returned if you pass a nil *core.Graph.
//   - ErrSourceNotFound / ErrTargetNotFound:
//     Returned when an endpoint is not a member of the graph's node set.
//     This indicates a caller or configuration mistake and is kept
//     distinct from the unreachable result, which is a topological fact.
//   - ErrNegativeWeight:
//     Returned if any edge has a negative weight (fast O(E) pre-scan;
//     core.Graph already rejects these at insertion).
//   - ErrBadMaxCost / ErrBadImpassable:
//     Raised (via panic) by the option constructors on invalid values.
//
// API reference:
//
//	func ShortestPath(
//	    g *core.Graph,
//	    source, target string,
//	    opts ...Option,
//	) (*PathResult, error)
//
//	  - g:      pointer to the core.Graph to query (read-only).
//	  - source: starting node ID; must exist in g.
//	  - target: destination node ID; must exist in g.
//	  - opts:   zero or more of WithContext, WithMaxCost, WithImpassableAt.
//
// Determinism:
//
//   - Repeated queries with the same graph and endpoints return identical
//     results (the computation is pure; nothing is retried).
//   - When several equally cheap routes exist, which one is returned is
//     unspecified — only the cost is guaranteed minimal.
//
// Thread safety:
//
//   - Every query owns its working state (labels, predecessors, frontier,
//     settled set), so any number of queries may run concurrently over
//     the same graph as long as the graph is not being mutated.
//
// See also:
//
//   - core.Graph: graph construction, neighbor and weight lookup.
//   - roadgrid:   the fixed 5×5 road-network dataset and its coordinate
//     helpers for rendering layers.
package dijkstra
