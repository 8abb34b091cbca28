// Package dijkstra_test contains unit tests for the shortest-path engine.
// These tests validate endpoint validation, route correctness against
// brute-force enumeration, path reconstruction invariants, unreachable
// handling, cost caps, closed-road thresholds, and cancellation.
package dijkstra_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/lvlroute/core"
	"github.com/katalvlaran/lvlroute/dijkstra"
)

// ------------------------------------------------------------------------
// 1. Validation Tests: Ensure errors are returned for invalid inputs.
// ------------------------------------------------------------------------

func TestShortestPath_EmptySource(t *testing.T) {
	// An empty source must be rejected before anything else.
	g := core.NewGraph()
	_, err := dijkstra.ShortestPath(g, "", "B")
	if !errors.Is(err, dijkstra.ErrEmptySource) {
		t.Fatalf("Expected ErrEmptySource, got %v", err)
	}
}

func TestShortestPath_EmptyTarget(t *testing.T) {
	g := core.NewGraph()
	_, err := dijkstra.ShortestPath(g, "A", "")
	if !errors.Is(err, dijkstra.ErrEmptyTarget) {
		t.Fatalf("Expected ErrEmptyTarget, got %v", err)
	}
}

func TestShortestPath_NilGraphWithoutSource(t *testing.T) {
	// Empty-endpoint validation has priority over the nil-graph check.
	_, err := dijkstra.ShortestPath(nil, "", "")
	if !errors.Is(err, dijkstra.ErrEmptySource) {
		t.Fatalf("Expected ErrEmptySource when graph is nil and source is empty, got %v", err)
	}
}

func TestShortestPath_NilGraphWithEndpoints(t *testing.T) {
	_, err := dijkstra.ShortestPath(nil, "A", "B")
	if !errors.Is(err, dijkstra.ErrNilGraph) {
		t.Fatalf("Expected ErrNilGraph when graph is nil, got %v", err)
	}
}

func TestShortestPath_SourceNotFound(t *testing.T) {
	// An unknown source is a caller mistake, not an unreachable target.
	g := core.NewGraph()
	g.AddEdge("A", "B", 1)
	_, err := dijkstra.ShortestPath(g, "X", "B")
	if !errors.Is(err, dijkstra.ErrSourceNotFound) {
		t.Fatalf("Expected ErrSourceNotFound, got %v", err)
	}
}

func TestShortestPath_TargetNotFound(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("A", "B", 1)
	_, err := dijkstra.ShortestPath(g, "A", "X")
	if !errors.Is(err, dijkstra.ErrTargetNotFound) {
		t.Fatalf("Expected ErrTargetNotFound, got %v", err)
	}
}

func TestShortestPath_EmptyGraph(t *testing.T) {
	// A graph with no nodes cannot contain either endpoint.
	g := core.NewGraph()
	_, err := dijkstra.ShortestPath(g, "Any", "Other")
	if !errors.Is(err, dijkstra.ErrSourceNotFound) {
		t.Fatalf("Expected ErrSourceNotFound for empty graph, got %v", err)
	}
}

// ------------------------------------------------------------------------
// 2. Basic Functionality: Small graphs, cost and path correctness.
// ------------------------------------------------------------------------

func TestShortestPath_Triangle(t *testing.T) {
	// Directed triangle: A→B(1), B→C(2), A→C(5).
	// The cheap route goes around: A→B→C = 3.
	g := core.NewGraph()
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "C", 2)
	g.AddEdge("A", "C", 5)

	res, err := dijkstra.ShortestPath(g, "A", "C")
	if err != nil {
		t.Fatal(err)
	}
	if !res.Reachable() {
		t.Fatal("C should be reachable from A")
	}
	if res.Cost != 3 {
		t.Errorf("Cost = %v; want 3", res.Cost)
	}
	assertPathEquals(t, res.Path, []string{"A", "B", "C"})
	if res.Length != 3 {
		t.Errorf("Length = %d; want 3", res.Length)
	}
}

func TestShortestPath_MediumDirectedGraph(t *testing.T) {
	// A→B(2), A→C(1), C→B(1), B→D(3), C→D(5).
	// Optimal A→D is A→C→B→D with cost 5.
	g := core.NewGraph()
	g.AddEdge("A", "B", 2)
	g.AddEdge("A", "C", 1)
	g.AddEdge("C", "B", 1)
	g.AddEdge("B", "D", 3)
	g.AddEdge("C", "D", 5)

	res, err := dijkstra.ShortestPath(g, "A", "D")
	if err != nil {
		t.Fatal(err)
	}
	if res.Cost != 5 {
		t.Errorf("Cost = %v; want 5", res.Cost)
	}
	assertPathEquals(t, res.Path, []string{"A", "C", "B", "D"})
}

func TestShortestPath_DirectedEdgesAreOneWay(t *testing.T) {
	// Only B→A exists; A cannot reach B.
	g := core.NewGraph()
	g.AddEdge("B", "A", 1)

	res, err := dijkstra.ShortestPath(g, "A", "B")
	if err != nil {
		t.Fatal(err)
	}
	if res.Reachable() {
		t.Fatalf("A→B should be unreachable over the one-way edge B→A, got cost %v", res.Cost)
	}
}

func TestShortestPath_SourceEqualsTarget(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("A", "B", 7)

	res, err := dijkstra.ShortestPath(g, "A", "A")
	if err != nil {
		t.Fatal(err)
	}
	if res.Cost != 0 {
		t.Errorf("Cost = %v; want 0", res.Cost)
	}
	assertPathEquals(t, res.Path, []string{"A"})
	if res.Length != 1 {
		t.Errorf("Length = %d; want 1", res.Length)
	}
}

// ------------------------------------------------------------------------
// 3. Unreachable Targets: the sentinel result variant.
// ------------------------------------------------------------------------

func TestShortestPath_IsolatedTarget(t *testing.T) {
	// Node B is registered but has no incident edges at all.
	g := core.NewGraph()
	g.AddEdge("A", "C", 2)
	g.AddNode("B")

	res, err := dijkstra.ShortestPath(g, "A", "B")
	if err != nil {
		t.Fatalf("unreachable must not be an error, got %v", err)
	}
	if res.Reachable() {
		t.Fatal("B should be unreachable")
	}
	if !math.IsInf(res.Cost, 1) {
		t.Errorf("Cost = %v; want +Inf", res.Cost)
	}
	if len(res.Path) != 0 {
		t.Errorf("Path = %v; want empty", res.Path)
	}
	if res.Length != 0 {
		t.Errorf("Length = %d; want 0", res.Length)
	}
}

// ------------------------------------------------------------------------
// 4. Graph Store interplay: last-write-wins and idempotence.
// ------------------------------------------------------------------------

func TestShortestPath_LastWriteWinsWeight(t *testing.T) {
	// The second insertion of A→B must be the weight used by queries.
	g := core.NewGraph()
	g.AddEdge("A", "B", 10)
	g.AddEdge("A", "B", 4)

	res, err := dijkstra.ShortestPath(g, "A", "B")
	if err != nil {
		t.Fatal(err)
	}
	if res.Cost != 4 {
		t.Errorf("Cost = %v; want 4 (last write wins)", res.Cost)
	}
}

func TestShortestPath_Idempotent(t *testing.T) {
	// Repeated queries with no intervening mutation are identical.
	g := buildDiamond()

	first, err := dijkstra.ShortestPath(g, "A", "D")
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		again, err := dijkstra.ShortestPath(g, "A", "D")
		if err != nil {
			t.Fatal(err)
		}
		if again.Cost != first.Cost || again.Length != first.Length {
			t.Fatalf("query %d: result {%v %d} differs from first {%v %d}",
				i, again.Cost, again.Length, first.Cost, first.Length)
		}
		assertPathEquals(t, again.Path, first.Path)
	}
}

// ------------------------------------------------------------------------
// 5. Path reconstruction invariant and brute-force cross-check.
// ------------------------------------------------------------------------

func TestShortestPath_ReconstructionInvariant(t *testing.T) {
	// For the returned path [n0..nk]: n0 == source, nk == target, every
	// consecutive pair is a graph edge, and the edge weights sum to Cost.
	g := buildDiamond()

	res, err := dijkstra.ShortestPath(g, "A", "D")
	if err != nil {
		t.Fatal(err)
	}
	if res.Path[0] != "A" || res.Path[len(res.Path)-1] != "D" {
		t.Fatalf("path endpoints = %q..%q; want A..D", res.Path[0], res.Path[len(res.Path)-1])
	}
	var sum float64
	for i := 0; i+1 < len(res.Path); i++ {
		w, err := g.Weight(res.Path[i], res.Path[i+1])
		if err != nil {
			t.Fatalf("path step %s→%s is not a graph edge: %v", res.Path[i], res.Path[i+1], err)
		}
		sum += w
	}
	if sum != res.Cost {
		t.Errorf("sum of path edge weights = %v; want Cost %v", sum, res.Cost)
	}
}

func TestShortestPath_MatchesBruteForce(t *testing.T) {
	// On a small dense graph, the engine's cost must equal the minimum
	// over all simple paths found by exhaustive enumeration.
	g := core.NewGraph()
	type edge struct {
		u, v string
		w    float64
	}
	for _, e := range []edge{
		{"A", "B", 4}, {"A", "C", 2}, {"B", "C", 5}, {"B", "D", 10},
		{"C", "E", 3}, {"E", "D", 4}, {"D", "F", 11}, {"E", "F", 9},
		{"C", "B", 1}, {"B", "E", 7},
	} {
		if err := g.AddEdge(e.u, e.v, e.w); err != nil {
			t.Fatal(err)
		}
	}

	for _, target := range []string{"B", "C", "D", "E", "F"} {
		res, err := dijkstra.ShortestPath(g, "A", target)
		if err != nil {
			t.Fatal(err)
		}
		want := bruteForceCost(g, "A", target)
		if res.Cost != want {
			t.Errorf("Cost(A→%s) = %v; brute force says %v", target, res.Cost, want)
		}
	}
}

// TestShortestPath_StaleFrontierEntries relabels nodes so the frontier
// holds outdated duplicates, which must be skipped when popped.
func TestShortestPath_StaleFrontierEntries(t *testing.T) {
	// A→B(10) is discovered first, then A→C(1), C→B(1) relabels B to 2.
	// The stale (10, B) entry must not corrupt the result.
	g := core.NewGraph()
	g.AddEdge("A", "B", 10)
	g.AddEdge("A", "C", 1)
	g.AddEdge("C", "B", 1)
	g.AddEdge("B", "D", 1)

	res, err := dijkstra.ShortestPath(g, "A", "D")
	if err != nil {
		t.Fatal(err)
	}
	if res.Cost != 3 {
		t.Errorf("Cost = %v; want 3 via A→C→B→D", res.Cost)
	}
	assertPathEquals(t, res.Path, []string{"A", "C", "B", "D"})
}

// ------------------------------------------------------------------------
// 6. Options: cost caps, closed roads, cancellation.
// ------------------------------------------------------------------------

func TestShortestPath_MaxCostLimits(t *testing.T) {
	// Chain A→B→C→D with unit weights; a cap of 1 makes C and D
	// unreachable within budget.
	g := core.NewGraph()
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "C", 1)
	g.AddEdge("C", "D", 1)

	res, err := dijkstra.ShortestPath(g, "A", "D", dijkstra.WithMaxCost(1))
	if err != nil {
		t.Fatal(err)
	}
	if res.Reachable() {
		t.Errorf("D should be beyond the cost cap, got cost %v", res.Cost)
	}

	// Within budget the same query succeeds.
	res, err = dijkstra.ShortestPath(g, "A", "B", dijkstra.WithMaxCost(1))
	if err != nil {
		t.Fatal(err)
	}
	if res.Cost != 1 {
		t.Errorf("Cost(A→B) = %v; want 1", res.Cost)
	}
}

func TestShortestPath_ImpassableSkipsHeavyEdge(t *testing.T) {
	// Direct A→C(10) is closed at threshold 5; detour A→B→C wins.
	g := core.NewGraph()
	g.AddEdge("A", "B", 2)
	g.AddEdge("B", "C", 4)
	g.AddEdge("A", "C", 10)

	res, err := dijkstra.ShortestPath(g, "A", "C", dijkstra.WithImpassableAt(5))
	if err != nil {
		t.Fatal(err)
	}
	if res.Cost != 6 {
		t.Errorf("Cost = %v; want 6 via the detour", res.Cost)
	}
	assertPathEquals(t, res.Path, []string{"A", "B", "C"})
}

func TestShortestPath_ImpassableCanDisconnect(t *testing.T) {
	// Every road to C is at or above the threshold: C becomes unreachable.
	g := core.NewGraph()
	g.AddEdge("A", "B", 2)
	g.AddEdge("B", "C", 9)
	g.AddEdge("A", "C", 9)

	res, err := dijkstra.ShortestPath(g, "A", "C", dijkstra.WithImpassableAt(9))
	if err != nil {
		t.Fatal(err)
	}
	if res.Reachable() {
		t.Errorf("C should be cut off by closed roads, got cost %v", res.Cost)
	}
}

func TestShortestPath_ContextCancelled(t *testing.T) {
	g := buildDiamond()
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // cancelled before the query starts

	_, err := dijkstra.ShortestPath(g, "A", "D", dijkstra.WithContext(ctx))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Expected context.Canceled, got %v", err)
	}
}

func TestShortestPath_BadOptionPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("WithMaxCost(-1) should panic")
		}
	}()
	o := dijkstra.DefaultOptions()
	dijkstra.WithMaxCost(-1)(&o)
}

// ------------------------------------------------------------------------
// 7. Test helpers.
// ------------------------------------------------------------------------

// buildDiamond returns the directed diamond A→{B,C}→D with distinct
// weights so exactly one optimal route exists (A→C→D, cost 4).
func buildDiamond() *core.Graph {
	g := core.NewGraph()
	g.AddEdge("A", "B", 2)
	g.AddEdge("A", "C", 1)
	g.AddEdge("B", "D", 5)
	g.AddEdge("C", "D", 3)

	return g
}

// assertPathEquals fails the test when two node sequences differ.
func assertPathEquals(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("path = %v; want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("path = %v; want %v", got, want)
		}
	}
}

// bruteForceCost enumerates every simple path from src to dst and
// returns the minimum total weight, or +Inf when no path exists.
// Exponential — only for tiny test graphs.
func bruteForceCost(g *core.Graph, src, dst string) float64 {
	best := math.Inf(1)
	onPath := map[string]bool{src: true}
	var walk func(u string, acc float64)
	walk = func(u string, acc float64) {
		if u == dst {
			if acc < best {
				best = acc
			}

			return
		}
		edges, err := g.Neighbors(u)
		if err != nil {
			return
		}
		for _, e := range edges {
			if onPath[e.To] {
				continue
			}
			onPath[e.To] = true
			walk(e.To, acc+e.Weight)
			delete(onPath, e.To)
		}
	}
	walk(src, 0)

	return best
}
