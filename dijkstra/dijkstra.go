// Package dijkstra implements the label-setting shortest-path engine
// on directed, weighted road networks.
//
// ShortestPath computes the minimum-cost route between two nodes in a
// graph with non-negative edge weights. It settles nodes in order of
// increasing distance using a min-heap priority queue, relaxing
// outgoing edges and updating distance labels, and stops as soon as the
// target node is settled (finalizing the rest of the graph would be
// wasted work for a point-to-point query).
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all edges (O(E)) to detect negative
//     weights and fail fast, even though core.Graph rejects them at
//     insertion.
//   - We treat any edge with weight ≥ Options.Impassable as a closed road.
//   - We stop exploring once the minimum cost in the frontier exceeds
//     Options.MaxCost.
//   - We use a "lazy" decrease-key strategy: shorter rediscoveries push
//     duplicate frontier entries, and stale ones are skipped when popped.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/lvlroute/core"
)

// ShortestPath computes the minimum-cost route from source to target in
// the weighted graph g, returning a PathResult with the total cost, the
// ordered node sequence, and its length.
//
// An unreachable target is a normal outcome: the result carries
// Cost = +Inf, an empty Path, and Length 0, with a nil error.
//
// Preconditions and validation (in order):
//  1. source must be non-empty (ErrEmptySource).
//  2. target must be non-empty (ErrEmptyTarget).
//  3. g must be non-nil (ErrNilGraph).
//  4. g must contain source (ErrSourceNotFound).
//  5. g must contain target (ErrTargetNotFound).
//  6. No edge in g can have negative weight (ErrNegativeWeight).
//
// When source == target the result is Cost 0, Path [source], Length 1.
//
// Options customization:
//
//   - WithContext(ctx):    cancel a long-running query; the context is
//     checked after each frontier pop, before relaxing neighbors.
//   - WithMaxCost(c):      nodes with cost > c are not explored (c ≥ 0).
//   - WithImpassableAt(t): edges with weight ≥ t are skipped (t > 0).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func ShortestPath(g *core.Graph, source, target string, opts ...Option) (*PathResult, error) {
	// 1) Build Options from defaults plus functional overrides.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate endpoints are provided.
	if source == "" {
		return nil, ErrEmptySource
	}
	if target == "" {
		return nil, ErrEmptyTarget
	}

	// 3) Validate graph is non-nil.
	if g == nil {
		return nil, ErrNilGraph
	}

	// 4) Validate both endpoints exist. An absent endpoint is a caller
	//    mistake (bad ID, stale config) and must not masquerade as a
	//    topologically unreachable target.
	if !g.HasNode(source) {
		return nil, fmt.Errorf("%w: %q", ErrSourceNotFound, source)
	}
	if !g.HasNode(target) {
		return nil, fmt.Errorf("%w: %q", ErrTargetNotFound, target)
	}

	// 5) Pre-scan all edges to detect negative weights. Fail fast with
	//    ErrNegativeWeight; partial results are never produced.
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %s→%s weight=%v", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	// 6) Prepare per-query working state. Nothing here outlives the call,
	//    so concurrent queries over the same (read-only) graph are safe.
	V := g.NodeCount()
	r := &runner{
		g:       g,
		options: cfg,
		source:  source,
		target:  target,
		dist:    make(map[string]float64, V),
		prev:    make(map[string]string, V),
		visited: make(map[string]bool, V),
		pq:      make(frontier, 0, V),
	}

	// 7) Seed labels and the frontier, then run the main loop.
	r.init()
	if err := r.process(); err != nil {
		return nil, err
	}

	// 8) Build the immutable result from the final labels.
	return r.result(), nil
}

// runner holds the mutable state for a single shortest-path execution.
type runner struct {
	g       *core.Graph        // The input graph; read-only within the query.
	options Options            // Configuration (context, cost cap, threshold).
	source  string             // Query origin node ID.
	target  string             // Query destination node ID.
	dist    map[string]float64 // Node ID → current best-known cost from source.
	prev    map[string]string  // Node ID → predecessor on the best route.
	visited map[string]bool    // Tracks whether a node's cost is finalized.
	pq      frontier           // Min-heap of *frontierItem (lazy decrease-key).
}

// init sets distance labels to +Inf (source = 0), clears predecessors,
// and pushes the source onto the frontier with cost 0.
func (r *runner) init() {
	// 1) Every known node starts unreachable with no predecessor.
	for _, v := range r.g.Nodes() {
		r.dist[v] = math.Inf(1)
		r.visited[v] = false
		r.prev[v] = "" // no predecessor yet
	}

	// 2) Cost to the source is zero.
	r.dist[r.source] = 0

	// 3) Establish heap invariants and seed the frontier with (0, source).
	heap.Init(&r.pq)
	heap.Push(&r.pq, &frontierItem{id: r.source, cost: 0})
}

// process is the core loop: repeatedly settle the cheapest frontier node
// and relax its outgoing edges.
//
// Loop termination conditions:
//
//   - The target node is settled (early exit; remaining labels are not
//     finalized and must not be read as distances).
//   - The frontier becomes empty (target unreachable).
//   - The minimum cost in the frontier exceeds MaxCost.
//   - The context is cancelled.
func (r *runner) process() error {
	cfg := r.options
	for r.pq.Len() > 0 {
		// 1) Pop the cheapest frontier entry.
		item := heap.Pop(&r.pq).(*frontierItem)
		u, d := item.id, item.cost

		// 2) Cancellation check: after the pop, before any relaxation.
		select {
		case <-cfg.Ctx.Done():
			return cfg.Ctx.Err()
		default:
		}

		// 3) Skip stale entries: the frontier may hold several outdated
		//    records for a node that was settled via a cheaper route.
		if r.visited[u] {
			continue
		}

		// 4) If this cost exceeds MaxCost, every remaining entry is at
		//    least as expensive; stop exploring without settling u.
		if d > cfg.MaxCost {
			break
		}

		// 5) Settle u. Its cost d is now final — valid only because all
		//    weights are non-negative.
		r.visited[u] = true

		// 6) Early exit once the target is settled.
		if u == r.target {
			break
		}

		// 7) Relax all outgoing edges of u.
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each edge outgoing from node u and attempts to improve
// its neighbors' distance labels. Edges at or above the impassable
// threshold are skipped. When a strictly cheaper route to neighbor v is
// found, dist[v] and prev[v] are updated and a new frontier entry is
// pushed (the stale entry, if any, stays behind and is skipped later).
//
// Assumes r.dist[u] is finalized before the call.
func (r *runner) relax(u string) error {
	// 1) Outgoing edges of u; the store returns them sorted, but the
	//    relaxation order does not affect correctness.
	edges, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}

	// 2) For each edge u→v, attempt relaxation.
	for _, e := range edges {
		v, w := e.To, e.Weight

		// Closed road: weight at or above the impassable threshold.
		if w >= r.options.Impassable {
			continue
		}

		// Safety check: the pre-scan makes this unreachable, but the
		// invariant is cheap to keep local.
		if w < 0 {
			return fmt.Errorf("%w: edge %s→%s weight=%v", ErrNegativeWeight, u, v, w)
		}

		// Candidate cost for source → … → u → v.
		candidate := r.dist[u] + w

		// Beyond the exploration cap: skip this neighbor.
		if candidate > r.options.MaxCost {
			continue
		}

		// Not strictly better than the current label: skip.
		// Strict "<" avoids pushing duplicates on cost ties.
		if candidate >= r.dist[v] {
			continue
		}

		// Strictly cheaper route found: relabel, record predecessor,
		// and push the lazy decrease-key entry.
		r.dist[v] = candidate
		r.prev[v] = u
		heap.Push(&r.pq, &frontierItem{id: v, cost: candidate})
	}

	return nil
}

// result reconstructs the PathResult from the final labels: walk the
// predecessor chain from target back to source, reverse it, and pair it
// with the target's cost label. An infinite label means unreachable.
func (r *runner) result() *PathResult {
	cost, ok := r.dist[r.target]
	if !ok || math.IsInf(cost, 1) {
		// Unreachable: the sentinel result, not an error.
		return &PathResult{Cost: math.Inf(1), Path: []string{}, Length: 0}
	}

	// Walk predecessor links back to the source. The chain is finite and
	// terminates at the source, whose predecessor is "".
	var path []string
	for cur := r.target; cur != ""; cur = r.prev[cur] {
		path = append(path, cur)
	}
	// Reverse in place to get source → target order.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return &PathResult{Cost: cost, Path: path, Length: len(path)}
}

// frontierItem represents a discovered node and its cost from the source
// at the moment it was pushed.
type frontierItem struct {
	id   string  // node ID
	cost float64 // cost from source when pushed
}

// frontier is a min-heap (priority queue) of *frontierItem, ordered by
// cost ascending. Under the lazy decrease-key approach, relabeling a
// node pushes a fresh entry; the outdated one remains and is ignored
// when popped (checked via runner.visited). Ties are broken by whatever
// order the heap yields — correctness does not depend on it.
type frontier []*frontierItem

// Len returns the number of items in the heap.
func (f frontier) Len() int { return len(f) }

// Less defines the comparison: smaller cost → higher priority.
func (f frontier) Less(i, j int) bool { return f[i].cost < f[j].cost }

// Swap swaps two elements in the heap.
func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *frontierItem.
func (f *frontier) Push(x interface{}) { *f = append(*f, x.(*frontierItem)) }

// Pop removes and returns the last element from the heap's backing slice.
// Called by heap.Pop; returns interface{} that must be cast to *frontierItem.
func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]

	return item
}
