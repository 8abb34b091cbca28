// Package lvlroute computes minimum-cost routes over directed, weighted
// road networks.
//
// 🚚 What is lvlroute?
//
//	A small, thread-safe, pure-Go routing toolkit:
//		• core     — directed weighted graph store: node & edge insertion,
//		             neighbor and weight lookup under R/W locks
//		• dijkstra — label-setting shortest-path engine with lazy
//		             decrease-key min-heap and path reconstruction
//		• roadgrid — the fixed 5×5 road-network dataset used by the
//		             water-delivery routing scenario
//
// ✨ Why choose lvlroute?
//
//   - Minimal API, clear naming — build a graph, ask for a route
//   - Rock-solid guarantees — non-negative weights enforced at insertion,
//     sentinel errors everywhere, in-code complexity docs
//   - Pure Go — no cgo, no hidden deps
//   - Presentation-agnostic — queries return a PathResult that any
//     reporter or renderer can consume; the library never prints or draws
//
// Quick ASCII example (a 2×2 corner of the road grid):
//
//	0 ──15── 1
//	│        │
//	20       18
//	│        │
//	5 ──16── 6
//
// Build it with core.NewGraph and four AddEdge calls, then ask
// dijkstra.ShortestPath(g, "0", "6") for the cheapest route.
//
// Dive into the package docs of core, dijkstra and roadgrid for full
// examples and the error inventory of each surface.
//
//	go get github.com/katalvlaran/lvlroute
package lvlroute
