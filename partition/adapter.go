// Package partition: the four partitioner callback queries.
//
// Each query writes into caller-owned arrays and reports Status instead of
// returning errors, matching the external engine's contract. On any
// failure the batch aborts immediately and a diagnostic naming the
// offending vertex goes to the configured sink; output written before the
// failure point is left as is and must be discarded by the caller.

package partition

import (
	"go.uber.org/zap"

	"github.com/kvasir-sim/gridpart/graph"
)

// VertexCount returns the number of vertices in the bound graph.
// It always succeeds.
func (a *Adapter) VertexCount() (int, Status) {
	return a.graph.Size(), StatusOK
}

// VertexList fills the parallel ids and weights arrays with every vertex
// of the graph in its native order. After contraction that order is not
// sorted; callers must not assume sortedness.
//
// The arrays must hold at least VertexCount() entries; shorter arrays are
// a protocol violation reported as StatusFatal.
func (a *Adapter) VertexList(ids []int, weights []float64) Status {
	size := a.graph.Size()
	if len(ids) < size || len(weights) < size {
		a.log.Error("vertex list arrays shorter than vertex count",
			zap.Int("vertices", size),
			zap.Int("idCapacity", len(ids)),
			zap.Int("weightCapacity", len(weights)))

		return StatusFatal
	}

	i := 0
	a.graph.ForEachVertex(func(id int, v *graph.Vertex) {
		ids[i] = id
		weights[i] = v.Weight
		i++
	})

	return StatusOK
}

// EdgeCounts writes the neighbour count of every requested vertex id into
// counts, position for position. An unknown id aborts the whole batch with
// StatusFatal and a diagnostic naming it.
func (a *Adapter) EdgeCounts(ids []int, counts []int) Status {
	if len(counts) < len(ids) {
		a.log.Error("edge count array shorter than id list",
			zap.Int("ids", len(ids)),
			zap.Int("countCapacity", len(counts)))

		return StatusFatal
	}
	for i, id := range ids {
		nE := a.graph.NumEdges(id)
		if nE == -1 {
			a.log.Error("edge count query for a vertex that is not in the graph",
				zap.Int("vertexID", id))

			return StatusFatal
		}
		counts[i] = nE
	}

	return StatusOK
}

// EdgeLists writes, for every requested vertex id in order, its neighbour
// ids, the neighbours' owner processes, and the edge weights into the flat
// output arrays, advancing a running offset by the declared counts.
//
// counts must be the per-id edge counts from a prior EdgeCounts call over
// the same ids. Before writing a vertex, the declared count is revalidated
// against the live graph; a disagreement means the caller mixed results
// from before and after a mutation and aborts the batch with StatusFatal.
func (a *Adapter) EdgeLists(ids []int, counts []int, nborIDs []int, nborProcs []int, weights []float64) Status {
	if len(counts) < len(ids) {
		a.log.Error("edge count array shorter than id list",
			zap.Int("ids", len(ids)),
			zap.Int("countCapacity", len(counts)))

		return StatusFatal
	}
	total := 0
	for _, c := range counts[:len(ids)] {
		total += c
	}
	if len(nborIDs) < total || len(nborProcs) < total || len(weights) < total {
		a.log.Error("edge list arrays shorter than declared edge total",
			zap.Int("declaredEdges", total),
			zap.Int("idCapacity", len(nborIDs)),
			zap.Int("procCapacity", len(nborProcs)),
			zap.Int("weightCapacity", len(weights)))

		return StatusFatal
	}

	offset := 0
	for i, id := range ids {
		eList, err := a.graph.EdgeList(id)
		if err != nil {
			a.log.Error("edge list query for a vertex that is not in the graph",
				zap.Int("vertexID", id))

			return StatusFatal
		}
		if len(eList) != counts[i] {
			a.log.Error("edge number disagreement between partitioner and graph",
				zap.Int("vertexID", id),
				zap.Int("partitionerCount", counts[i]),
				zap.Int("graphCount", len(eList)))

			return StatusFatal
		}
		for n, w := range eList {
			nbor, err := a.graph.GetVertex(n)
			if err != nil {
				a.log.Error("edge list query hit a dangling neighbour",
					zap.Int("vertexID", id),
					zap.Int("neighbourID", n))

				return StatusFatal
			}
			nborIDs[offset] = n
			nborProcs[offset] = nbor.Nproc
			weights[offset] = w
			offset++
		}
	}

	return StatusOK
}
