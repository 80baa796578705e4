// Package graph defines the contractable weighted graph-of-grid types
// and sentinel errors for github.com/kvasir-sim/gridpart.
package graph

import (
	"errors"
	"sort"

	"github.com/kvasir-sim/gridpart/grid"
)

// Sentinel errors for graph operations.
var (
	// ErrUnknownVertex indicates an operation referenced a vertex id not in the graph.
	ErrUnknownVertex = errors.New("graph: unknown vertex")
	// ErrSelfContraction indicates an attempt to contract a vertex with itself.
	ErrSelfContraction = errors.New("graph: cannot contract a vertex with itself")
	// ErrEmptyWell indicates a well with no cells.
	ErrEmptyWell = errors.New("graph: well has no cells")
)

// Vertex is a graph vertex standing for one or more grid cells.
//
// Weight starts at 1.0 per original cell and accumulates the weights of
// vertices merged into this one. Edges maps neighbour id → accumulated
// edge weight; it never contains the vertex's own id. Nproc is the rank
// of the process owning this vertex, 0 until the partitioner assigns it.
type Vertex struct {
	Weight float64
	Nproc  int
	Edges  map[int]float64
}

// CellSet is an unordered set of cell (vertex) ids.
type CellSet map[int]struct{}

// NewCellSet builds a CellSet from the given ids.
func NewCellSet(ids ...int) CellSet {
	s := make(CellSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}

	return s
}

// Has reports membership of id. Complexity: O(1).
func (s CellSet) Has(id int) bool {
	_, ok := s[id]

	return ok
}

// Intersects reports whether s and other share at least one id.
// Complexity: O(min(|s|,|other|)).
func (s CellSet) Intersects(other CellSet) bool {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}
	for id := range small {
		if large.Has(id) {
			return true
		}
	}

	return false
}

// Union adds every id of other into s. Complexity: O(|other|).
func (s CellSet) Union(other CellSet) {
	for id := range other {
		s[id] = struct{}{}
	}
}

// Clone returns an independent copy of s.
func (s CellSet) Clone() CellSet {
	out := make(CellSet, len(s))
	for id := range s {
		out[id] = struct{}{}
	}

	return out
}

// Sorted returns the member ids in ascending order.
// Complexity: O(n log n).
func (s CellSet) Sorted() []int {
	ids := make([]int, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids
}

// Min returns the smallest member id; it is the well representative.
// Returns -1 for an empty set.
func (s CellSet) Min() int {
	min, found := -1, false
	for id := range s {
		if !found || id < min {
			min, found = id, true
		}
	}

	return min
}

// Graph is a contractable weighted graph over the active cells of a grid.
//
// Vertices are keyed by the grid's compressed cell index at construction
// time; after contraction the representative's id persists and merged ids
// are removed. Adjacency is kept symmetric with no self-edges throughout.
//
// A Graph is exclusively owned by one call sequence; it is not safe for
// concurrent use.
type Graph struct {
	grid     *grid.Grid
	vertices map[int]*Vertex
	wells    []CellSet
}
