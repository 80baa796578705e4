// Package graph provides a contractable weighted graph representation of
// a computational grid, preparing domain-decomposition input for an
// external graph partitioner.
//
// What:
//
//   - Graph holds one vertex per active grid cell (weight 1.0) with
//     symmetric, self-edge-free adjacency from face neighbourhood.
//   - ContractVertices merges a vertex into a survivor: weights sum,
//     shared-neighbour edge weights accumulate, reciprocal edges are
//     retargeted before removal so no dangling reference can appear.
//   - AddWell groups cell sets that must stay on one partition, merging
//     intersecting wells eagerly and contracting each well into its
//     minimum-id representative.
//   - AddFutureConnectionWells and AddWellConnections feed the engine from
//     cartesian-indexed and pre-resolved cell sets respectively.
//
// Why:
//
//   - Graph partitioners balance vertex weights and cut few heavy edges;
//     contracting a well into one heavy vertex guarantees its cells land
//     on one process, and the accumulated edge weights pull well-adjacent
//     regions along with it.
//
// Complexity:
//
//   - NewGraph: O(N) time and memory over active cells.
//   - ContractVertices: O(deg(b)).
//   - AddWell: O(W·|cells| + Σ deg(member)) with intersection checking,
//     O(|cells| + Σ deg(member)) without.
//
// Errors:
//
//   - ErrUnknownVertex: a referenced vertex id is not in the graph.
//   - ErrSelfContraction: contraction of a vertex with itself.
//   - ErrEmptyWell: a well with no cells.
//
// Not a general-purpose graph library: exactly the operations needed for
// grid-partitioning preprocessing are supported.
package graph
