// Package roadgrid builds the fixed 5×5 road network used by the
// water-delivery routing scenario: 25 intersections numbered 0–24 in
// row-major order, connected by 50 one-way road segments (20 horizontal,
// 20 vertical, 10 diagonal-style shortcuts) with fixed travel costs.
//
// The dataset is deliberately a factory, not package-level state: every
// call to New returns a fresh, independently mutable core.Graph, which
// keeps the engine testable and lets callers derive scenario variants
// (e.g. overwrite a segment's cost) without global side effects.
package roadgrid

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/lvlroute/core"
)

// segment is one row of the fixed weight table.
type segment struct {
	from, to string
	cost     float64
}

// segments is the full road table of the 5×5 network.
// Horizontal roads run left→right, vertical roads top→bottom; the
// alternative block holds the diagonal-style shortcuts, two of which
// (6→2, 7→3, 8→4) run against the prevailing direction.
var segments = []segment{
	// Horizontal roads, row by row.
	{"0", "1", 15}, {"1", "2", 12}, {"2", "3", 18}, {"3", "4", 14},
	{"5", "6", 16}, {"6", "7", 13}, {"7", "8", 17}, {"8", "9", 15},
	{"10", "11", 14}, {"11", "12", 19}, {"12", "13", 13}, {"13", "14", 16},
	{"15", "16", 17}, {"16", "17", 12}, {"17", "18", 15}, {"18", "19", 18},
	{"20", "21", 13}, {"21", "22", 16}, {"22", "23", 14}, {"23", "24", 17},

	// Vertical roads, column by column.
	{"0", "5", 20}, {"5", "10", 18}, {"10", "15", 22}, {"15", "20", 19},
	{"1", "6", 18}, {"6", "11", 16}, {"11", "16", 20}, {"16", "21", 17},
	{"2", "7", 19}, {"7", "12", 17}, {"12", "17", 18}, {"17", "22", 21},
	{"3", "8", 16}, {"8", "13", 19}, {"13", "18", 17}, {"18", "23", 19},
	{"4", "9", 17}, {"9", "14", 18}, {"14", "19", 20}, {"19", "24", 18},

	// Alternative / diagonal-style shortcuts.
	{"1", "5", 22}, {"6", "2", 21}, {"7", "3", 20}, {"8", "4", 23},
	{"11", "7", 19}, {"12", "8", 18}, {"13", "9", 21},
	{"16", "12", 20}, {"17", "13", 19}, {"18", "14", 22},
}

// New builds the 5×5 road network and returns it as a core.Graph.
// The returned graph is owned by the caller; successive calls never
// share state.
// Complexity: O(Rows·Cols) — the table size is fixed.
func New() (*core.Graph, error) {
	g := core.NewGraph()
	for _, s := range segments {
		if err := g.AddEdge(s.from, s.to, s.cost); err != nil {
			return nil, fmt.Errorf("roadgrid: AddEdge(%s→%s, w=%v): %w", s.from, s.to, s.cost, err)
		}
	}

	return g, nil
}

// NodeID returns the node ID at grid position (r, c) in row-major order.
// Returns ErrBadCoordinate when the position lies outside the grid.
func NodeID(r, c int) (string, error) {
	if r < 0 || r >= Rows || c < 0 || c >= Cols {
		return "", fmt.Errorf("%w: (%d,%d)", ErrBadCoordinate, r, c)
	}

	return strconv.Itoa(r*Cols + c), nil
}

// Position returns the (row, column) of a grid node ID. Rendering
// layers use it to place nodes on a diagram.
// Returns ErrBadNodeID for IDs outside "0".."24".
func Position(id string) (r, c int, err error) {
	n, convErr := strconv.Atoi(id)
	if convErr != nil || n < 0 || n >= Rows*Cols {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadNodeID, id)
	}

	return n / Cols, n % Cols, nil
}
