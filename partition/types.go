// Package partition defines the adapter types, options, and status codes
// for the partition subpackage of github.com/kvasir-sim/gridpart.
package partition

import (
	"go.uber.org/zap"

	"github.com/kvasir-sim/gridpart/graph"
)

// Status is the integer result code reported across the partitioner
// callback boundary. Errors never propagate over that boundary; every
// failure is reported as StatusFatal plus a logged diagnostic.
//
// The numeric values mirror the partitioner's own convention: fatal is
// zero, success is one.
type Status int

const (
	// StatusFatal reports an aborted callback; the output arrays must not
	// be trusted past the point of failure.
	StatusFatal Status = 0
	// StatusOK reports a completed callback.
	StatusOK Status = 1
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusFatal:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

// Adapter exposes a graph through the partitioner's four-query contract.
// All queries report failure through Status, never through an error value
// and never by panicking, because they are reachable from foreign code.
type Adapter struct {
	graph *graph.Graph
	log   *zap.Logger
}

// AdapterOption configures an Adapter.
type AdapterOption func(*Adapter)

// WithLogger sets the diagnostic sink for callback failures.
// The default is zap.NewNop().
func WithLogger(log *zap.Logger) AdapterOption {
	return func(a *Adapter) { a.log = log }
}

// NewAdapter wraps g for export to the partitioner.
func NewAdapter(g *graph.Graph, opts ...AdapterOption) *Adapter {
	a := &Adapter{
		graph: g,
		log:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Slots mirrors the partitioner's callback table: four function slots the
// external engine invokes during a partitioning run. The engine guarantees
// only that a count query precedes the matching list query; no other
// ordering may be assumed.
type Slots struct {
	// NumVertices returns the vertex count of the bound graph.
	NumVertices func() (int, Status)
	// VertexList fills parallel arrays of vertex ids and weights.
	VertexList func(ids []int, weights []float64) Status
	// NumEdges writes per-vertex neighbour counts for the requested ids.
	NumEdges func(ids []int, counts []int) Status
	// EdgeList writes neighbour ids, their owner processes, and edge
	// weights, flattened in the order of ids with counts as declared by a
	// prior NumEdges call.
	EdgeList func(ids []int, counts []int, nborIDs []int, nborProcs []int, weights []float64) Status
}

// Register binds the four queries of a fresh Adapter over g into the given
// callback slots. Each call creates its own binding, so several graphs can
// be exported through the same external engine without interference.
// The Adapter is returned for direct use.
func Register(s *Slots, g *graph.Graph, opts ...AdapterOption) *Adapter {
	a := NewAdapter(g, opts...)
	s.NumVertices = a.VertexCount
	s.VertexList = a.VertexList
	s.NumEdges = a.EdgeCounts
	s.EdgeList = a.EdgeLists

	return a
}
