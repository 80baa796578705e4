// Package grid treats a 3D cartesian box of cells as the geometric
// substrate for graph-of-grid construction: it owns the
// cartesian↔compressed index mapping and face adjacency.
package grid

import (
	"fmt"
	"sort"
)

// faceOffsets lists the six face-neighbour displacements in (di,dj,dk).
var faceOffsets = [6][3]int{
	{-1, 0, 0}, {1, 0, 0},
	{0, -1, 0}, {0, 1, 0},
	{0, 0, -1}, {0, 0, 1},
}

// NewCartesian constructs a fully active dims[0]×dims[1]×dims[2] grid.
// Returns ErrZeroDims if any dimension is not positive.
// Complexity: O(N) time and memory, N = number of cells.
func NewCartesian(dims Dims) (*Grid, error) {
	return NewWithInactive(dims, nil)
}

// NewWithInactive constructs a grid where the listed cartesian indices are
// inactive (carry no cell). Duplicates in inactive are tolerated.
// Returns ErrZeroDims for a degenerate box and ErrInactiveOutOfRange if an
// inactive index lies outside it.
// Complexity: O(N + len(inactive)) time, O(N) memory.
func NewWithInactive(dims Dims, inactive []int) (*Grid, error) {
	if dims[0] <= 0 || dims[1] <= 0 || dims[2] <= 0 {
		return nil, fmt.Errorf("%w: got %v", ErrZeroDims, dims)
	}
	n := dims.Cells()
	dead := make(map[int]struct{}, len(inactive))
	for _, c := range inactive {
		if c < 0 || c >= n {
			return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrInactiveOutOfRange, c, n)
		}
		dead[c] = struct{}{}
	}

	g := &Grid{
		dims:       dims,
		globalCell: make([]int, 0, n-len(dead)),
		compressed: make([]int, n),
	}
	for cart := 0; cart < n; cart++ {
		if _, off := dead[cart]; off {
			g.compressed[cart] = -1
			continue
		}
		g.compressed[cart] = len(g.globalCell)
		g.globalCell = append(g.globalCell, cart)
	}

	return g, nil
}

// LogicalCartesianSize returns the grid's cartesian extent.
// Complexity: O(1).
func (g *Grid) LogicalCartesianSize() Dims {
	return g.dims
}

// NumCells returns the number of active cells.
// Complexity: O(1).
func (g *Grid) NumCells() int {
	return len(g.globalCell)
}

// CartesianIndex maps a compressed cell index back to its cartesian index.
// Panics on an out-of-range compressed index, mirroring slice semantics.
// Complexity: O(1).
func (g *Grid) CartesianIndex(compressed int) int {
	return g.globalCell[compressed]
}

// CompressedIndex maps a cartesian index to the compressed cell index.
// Returns ErrCellNotActive if the cartesian index is out of range or the
// cell behind it is inactive.
// Complexity: O(1).
func (g *Grid) CompressedIndex(cartesian int) (int, error) {
	if cartesian < 0 || cartesian >= len(g.compressed) || g.compressed[cartesian] < 0 {
		return -1, fmt.Errorf("%w: cartesian index %d", ErrCellNotActive, cartesian)
	}

	return g.compressed[cartesian], nil
}

// Coordinate converts a cartesian index to its (i,j,k) coordinates.
// Complexity: O(1).
func (g *Grid) Coordinate(cartesian int) (i, j, k int) {
	nx, ny := g.dims[0], g.dims[1]

	return cartesian % nx, (cartesian / nx) % ny, cartesian / (nx * ny)
}

// InBounds reports whether (i,j,k) lies within the cartesian box.
// Complexity: O(1).
func (g *Grid) InBounds(i, j, k int) bool {
	return i >= 0 && i < g.dims[0] &&
		j >= 0 && j < g.dims[1] &&
		k >= 0 && k < g.dims[2]
}

// cartesian maps (i,j,k) to the cartesian index i + j·nx + k·nx·ny.
func (g *Grid) cartesian(i, j, k int) int {
	return i + j*g.dims[0] + k*g.dims[0]*g.dims[1]
}

// Neighbors returns the compressed indices of all active face neighbours of
// the cell with the given compressed index, in ascending order.
// Complexity: O(1) (at most six neighbours, sorted by insertion).
func (g *Grid) Neighbors(compressed int) []int {
	i, j, k := g.Coordinate(g.globalCell[compressed])
	out := make([]int, 0, 6)
	for _, d := range faceOffsets {
		ni, nj, nk := i+d[0], j+d[1], k+d[2]
		if !g.InBounds(ni, nj, nk) {
			continue
		}
		if c := g.compressed[g.cartesian(ni, nj, nk)]; c >= 0 {
			out = append(out, c)
		}
	}
	sort.Ints(out)

	return out
}
