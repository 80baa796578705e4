// Package graph: GraphStore construction and query methods.
//
// The graph is built once from a grid (one vertex per active cell, unit
// weights, edges from face adjacency) and mutated only through vertex
// contraction. Queries come in two flavours: error-returning for direct
// API use, and sentinel-returning (NumEdges) for use across the
// partitioner callback boundary where errors cannot propagate.

package graph

import (
	"fmt"

	"github.com/kvasir-sim/gridpart/grid"
)

// NewGraph builds the graph of the given grid: one vertex of weight 1.0 per
// active cell, keyed by the compressed cell index, and one symmetric edge of
// weight 1.0 per face-adjacent cell pair.
// Complexity: O(N) time and memory, N = active cells.
func NewGraph(g *grid.Grid) *Graph {
	n := g.NumCells()
	gog := &Graph{
		grid:     g,
		vertices: make(map[int]*Vertex, n),
	}
	for id := 0; id < n; id++ {
		nbs := g.Neighbors(id)
		v := &Vertex{
			Weight: 1.0,
			Edges:  make(map[int]float64, len(nbs)),
		}
		for _, nb := range nbs {
			v.Edges[nb] = 1.0
		}
		gog.vertices[id] = v
	}

	return gog
}

// Grid returns the grid this graph was built from.
func (g *Graph) Grid() *grid.Grid {
	return g.grid
}

// Size returns the current vertex count.
// Complexity: O(1).
func (g *Graph) Size() int {
	return len(g.vertices)
}

// HasVertex reports whether id is present in the graph.
// Complexity: O(1).
func (g *Graph) HasVertex(id int) bool {
	_, ok := g.vertices[id]

	return ok
}

// GetVertex returns the vertex with the given id.
// The returned pointer refers to live graph state; callers may set Nproc
// after partitioning but must not touch Edges.
// Returns ErrUnknownVertex if id is absent.
// Complexity: O(1).
func (g *Graph) GetVertex(id int) (*Vertex, error) {
	v, ok := g.vertices[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %d", ErrUnknownVertex, id)
	}

	return v, nil
}

// NumEdges returns the neighbour count of id, or -1 if id is absent.
// The sentinel form exists because this query is also reachable through the
// partitioner callback boundary, which cannot observe errors.
// Complexity: O(1).
func (g *Graph) NumEdges(id int) int {
	v, ok := g.vertices[id]
	if !ok {
		return -1
	}

	return len(v.Edges)
}

// EdgeList returns the neighbour→weight map of id.
// The map is live graph state and must be treated as read-only.
// Returns ErrUnknownVertex if id is absent.
// Complexity: O(1).
func (g *Graph) EdgeList(id int) (map[int]float64, error) {
	v, ok := g.vertices[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %d", ErrUnknownVertex, id)
	}

	return v.Edges, nil
}

// ForEachVertex calls fn for every vertex in the graph's native (map)
// order. After contraction ids are not sorted; callers must not assume
// any particular ordering.
// Complexity: O(V).
func (g *Graph) ForEachVertex(fn func(id int, v *Vertex)) {
	for id, v := range g.vertices {
		fn(id, v)
	}
}

// VertexIDs returns all vertex ids in the graph's native (map) order.
// Complexity: O(V).
func (g *Graph) VertexIDs() []int {
	ids := make([]int, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}

	return ids
}
