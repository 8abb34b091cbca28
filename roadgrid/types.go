// Package roadgrid defines constants, coordinate helpers, and sentinel
// errors for the fixed 5×5 road-network dataset.
package roadgrid

import "errors"

// Sentinel errors for roadgrid operations.
var (
	// ErrBadCoordinate indicates a row or column outside the 5×5 grid.
	ErrBadCoordinate = errors.New("roadgrid: coordinate outside the grid")

	// ErrBadNodeID indicates a node ID that is not one of "0".."24".
	ErrBadNodeID = errors.New("roadgrid: node ID not in the grid")
)

// Grid dimensions. Node n sits at row n/Cols, column n%Cols:
//
//	 0   1   2   3   4
//	 5   6   7   8   9
//	10  11  12  13  14
//	15  16  17  18  19
//	20  21  22  23  24
const (
	// Rows is the number of grid rows.
	Rows = 5
	// Cols is the number of grid columns.
	Cols = 5
)

// Fixed endpoints of the delivery scenario.
const (
	// Depot is the water depot at the top-left corner of the grid.
	Depot = "0"
	// Delivery is the delivery point at the bottom-right corner.
	Delivery = "24"
)
