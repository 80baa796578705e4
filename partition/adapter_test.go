package partition_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/kvasir-sim/gridpart/graph"
	"github.com/kvasir-sim/gridpart/grid"
	"github.com/kvasir-sim/gridpart/partition"
)

// buildGraph constructs the graph of a fully active dims grid.
func buildGraph(t testing.TB, dims grid.Dims) *graph.Graph {
	t.Helper()
	g, err := grid.NewCartesian(dims)
	require.NoError(t, err)

	return graph.NewGraph(g)
}

// observedAdapter wraps gog in an adapter whose diagnostics are captured.
func observedAdapter(t testing.TB, gog *graph.Graph) (*partition.Adapter, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zap.ErrorLevel)

	return partition.NewAdapter(gog, partition.WithLogger(zap.New(core))), logs
}

//----------------------------------------------------------------------------//
// Export Tests
//----------------------------------------------------------------------------//

// TestAdapter_Export runs the full four-query export of an uncontracted
// 5×4×3 grid and checks the known degree distribution and edge total.
func TestAdapter_Export(t *testing.T) {
	gog := buildGraph(t, grid.Dims{5, 4, 3})
	a := partition.NewAdapter(gog)

	nVer, st := a.VertexCount()
	require.Equal(t, partition.StatusOK, st)
	require.Equal(t, 60, nVer)

	ids := make([]int, nVer)
	weights := make([]float64, nVer)
	require.Equal(t, partition.StatusOK, a.VertexList(ids, weights))
	seen := make(map[int]bool, nVer)
	for i, id := range ids {
		assert.Equal(t, 1.0, weights[i], "weight of vertex %d", id)
		seen[id] = true
	}
	require.Len(t, seen, nVer, "vertex ids must be unique")

	counts := make([]int, nVer)
	require.Equal(t, partition.StatusOK, a.EdgeCounts(ids, counts))
	nEdges := 0
	for i, id := range ids {
		switch id {
		case 0: // corner
			assert.Equal(t, 3, counts[i])
		case 9: // edge of the box
			assert.Equal(t, 4, counts[i])
		case 37: // face
			assert.Equal(t, 5, counts[i])
		case 26: // interior
			assert.Equal(t, 6, counts[i])
		}
		nEdges += counts[i]
	}
	require.Equal(t, 266, nEdges)

	nborIDs := make([]int, nEdges)
	nborProcs := make([]int, nEdges)
	edgeWeights := make([]float64, nEdges)
	require.Equal(t, partition.StatusOK, a.EdgeLists(ids, counts, nborIDs, nborProcs, edgeWeights))
	for i := 0; i < nEdges; i++ {
		assert.Equal(t, 0, nborProcs[i], "default owner process is 0")
		assert.Equal(t, 1.0, edgeWeights[i], "no vertices were contracted")
	}
}

// TestAdapter_ExportContracted checks that vertex and edge weights of a
// contracted graph reach the partitioner-facing arrays.
func TestAdapter_ExportContracted(t *testing.T) {
	gog := buildGraph(t, grid.Dims{2, 2, 2})
	require.NoError(t, gog.AddWell(graph.NewCellSet(0, 1, 2), true))
	a := partition.NewAdapter(gog)

	nVer, st := a.VertexCount()
	require.Equal(t, partition.StatusOK, st)
	require.Equal(t, 6, nVer)

	ids := make([]int, nVer)
	weights := make([]float64, nVer)
	require.Equal(t, partition.StatusOK, a.VertexList(ids, weights))
	for i, id := range ids {
		if id == 0 {
			assert.Equal(t, 3.0, weights[i])
		} else {
			assert.Equal(t, 1.0, weights[i])
		}
	}

	counts := []int{gog.NumEdges(3)}
	nborIDs := make([]int, counts[0])
	nborProcs := make([]int, counts[0])
	edgeWeights := make([]float64, counts[0])
	require.Equal(t, partition.StatusOK,
		a.EdgeLists([]int{3}, counts, nborIDs, nborProcs, edgeWeights))
	for i, n := range nborIDs {
		if n == 0 {
			assert.Equal(t, 2.0, edgeWeights[i], "collapsed double adjacency")
		} else {
			assert.Equal(t, 1.0, edgeWeights[i])
		}
	}
}

//----------------------------------------------------------------------------//
// Failure Tests
//----------------------------------------------------------------------------//

// TestEdgeCounts_UnknownVertex verifies the batch aborts with StatusFatal
// and a diagnostic naming the offending id.
func TestEdgeCounts_UnknownVertex(t *testing.T) {
	gog := buildGraph(t, grid.Dims{2, 2, 2})
	a, logs := observedAdapter(t, gog)

	counts := make([]int, 3)
	st := a.EdgeCounts([]int{0, 64, 7}, counts)
	require.Equal(t, partition.StatusFatal, st)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Contains(t, entry.Message, "not in the graph")
	assert.Equal(t, int64(64), entry.ContextMap()["vertexID"])
}

// TestEdgeLists_CountMismatch corrupts a declared edge count and verifies
// the export reports StatusFatal, logs both counts, and stops writing.
func TestEdgeLists_CountMismatch(t *testing.T) {
	gog := buildGraph(t, grid.Dims{5, 4, 3})
	a, logs := observedAdapter(t, gog)

	ids := gog.VertexIDs()
	counts := make([]int, len(ids))
	require.Equal(t, partition.StatusOK, a.EdgeCounts(ids, counts))

	counts[16] = 8 // true degree is lower

	// Generous capacity so the per-vertex revalidation, not the capacity
	// check, is what trips.
	const slack = 400
	nborIDs := make([]int, slack)
	nborProcs := make([]int, slack)
	weights := make([]float64, slack)
	for i := range nborIDs {
		nborIDs[i] = -7
	}

	st := a.EdgeLists(ids, counts, nborIDs, nborProcs, weights)
	require.Equal(t, partition.StatusFatal, st)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Contains(t, entry.Message, "disagreement")
	assert.Equal(t, int64(ids[16]), entry.ContextMap()["vertexID"])
	assert.Equal(t, int64(8), entry.ContextMap()["partitionerCount"])
	assert.EqualValues(t, gog.NumEdges(ids[16]), entry.ContextMap()["graphCount"])

	assert.Equal(t, -7, nborIDs[slack-1], "output past the failure point must stay untouched")
}

// TestVertexList_ShortArrays verifies the capacity guard on the vertex list.
func TestVertexList_ShortArrays(t *testing.T) {
	gog := buildGraph(t, grid.Dims{2, 2, 2})
	a, logs := observedAdapter(t, gog)

	st := a.VertexList(make([]int, 4), make([]float64, 8))
	require.Equal(t, partition.StatusFatal, st)
	require.Equal(t, 1, logs.Len())
}

//----------------------------------------------------------------------------//
// Registration Tests
//----------------------------------------------------------------------------//

// TestRegister_IndependentGraphs binds two graphs into two callback slot
// tables and verifies the bindings do not interfere.
func TestRegister_IndependentGraphs(t *testing.T) {
	gogA := buildGraph(t, grid.Dims{2, 2, 2})
	gogB := buildGraph(t, grid.Dims{5, 4, 3})

	var slotsA, slotsB partition.Slots
	partition.Register(&slotsA, gogA)
	partition.Register(&slotsB, gogB)

	nA, st := slotsA.NumVertices()
	require.Equal(t, partition.StatusOK, st)
	nB, st := slotsB.NumVertices()
	require.Equal(t, partition.StatusOK, st)
	assert.Equal(t, 8, nA)
	assert.Equal(t, 60, nB)

	// Contracting A must not leak into B's binding.
	require.NoError(t, gogA.AddWell(graph.NewCellSet(0, 1), true))
	nA, _ = slotsA.NumVertices()
	nB, _ = slotsB.NumVertices()
	assert.Equal(t, 7, nA)
	assert.Equal(t, 60, nB)
}
