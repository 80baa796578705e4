package graph

import (
	"fmt"
)

// ContractVertices merges vertex b into vertex a.
//
// The survivor a takes on b's weight and b's adjacency: for every neighbour
// n of b, n's reciprocal edge is retargeted from b to a before b is removed,
// so no dangling reference can appear. Where a and b shared a neighbour the
// edge weights are summed; this accumulated weight is the signal the
// partitioner uses to keep well-adjacent regions together. Any a↔b edge is
// dropped rather than becoming a self-edge.
//
// By convention callers pass the lower id as a, keeping the well
// representative's id stable; the operation itself does not require it.
//
// Returns ErrUnknownVertex if either id is absent and ErrSelfContraction
// if a == b.
// Complexity: O(deg(b)).
func (g *Graph) ContractVertices(a, b int) error {
	if a == b {
		return fmt.Errorf("%w: id %d", ErrSelfContraction, a)
	}
	va, ok := g.vertices[a]
	if !ok {
		return fmt.Errorf("%w: id %d", ErrUnknownVertex, a)
	}
	vb, ok := g.vertices[b]
	if !ok {
		return fmt.Errorf("%w: id %d", ErrUnknownVertex, b)
	}

	va.Weight += vb.Weight

	for n, w := range vb.Edges {
		if n == a {
			continue
		}
		vn := g.vertices[n]
		// Sum into an existing a↔n edge or create it with b's weight,
		// then retarget n's reciprocal edge from b to a.
		va.Edges[n] += w
		delete(vn.Edges, b)
		vn.Edges[a] = va.Edges[n]
	}

	delete(va.Edges, b)
	delete(g.vertices, b)

	return nil
}
