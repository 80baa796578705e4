// Package grid defines core types, options, and sentinel errors
// for the grid subpackage of github.com/kvasir-sim/gridpart.
package grid

import (
	"errors"
)

// Sentinel errors for grid construction and index translation.
var (
	// ErrZeroDims indicates a grid dimension of zero or less.
	ErrZeroDims = errors.New("grid: all dimensions must be positive")
	// ErrInactiveOutOfRange indicates an inactive cell index outside the cartesian box.
	ErrInactiveOutOfRange = errors.New("grid: inactive cell index out of cartesian range")
	// ErrCellNotActive indicates a cartesian index with no active (compressed) cell behind it.
	ErrCellNotActive = errors.New("grid: cartesian cell is not active")
)

// Dims holds the logical cartesian extent of the grid in x, y, z order.
type Dims [3]int

// Cells returns the total cartesian cell count, active or not.
// Complexity: O(1).
func (d Dims) Cells() int {
	return d[0] * d[1] * d[2]
}

// Grid is a 3D cartesian cell grid with optional inactive cells.
// It is immutable once built.
//
// Cells are addressed two ways:
//
//   - cartesian index: i + j·nx + k·nx·ny over the full logical box;
//   - compressed index: 0..NumCells()-1 over active cells only, in
//     ascending cartesian order.
//
// The compressed index is what graph vertices are keyed by.
type Grid struct {
	dims Dims

	// globalCell maps compressed index → cartesian index.
	globalCell []int
	// compressed maps cartesian index → compressed index, -1 for inactive.
	compressed []int
}
