// Package partition adapts a contracted graph-of-grid to an external
// graph partitioner's callback contract and reconciles the partitioner's
// output with contracted wells.
//
// What:
//
//   - Adapter answers the partitioner's four queries (vertex count,
//     vertex list with weights, batched edge counts, batched edge lists
//     with neighbour process and weight) against a graph.Graph.
//   - Status (StatusOK / StatusFatal) is the only failure channel across
//     the callback boundary; diagnostics go to a zap logger.
//   - Slots + Register bind an adapter per partitioning run, so several
//     independent graphs can be exported through one engine.
//   - ExtendCellList re-expands well representatives in post-partition
//     assignment lists back into their member cells, for any record shape
//     satisfying the generic Record contract.
//
// Why:
//
//   - The partitioner is foreign code: it cannot observe Go errors or
//     panics, writes through caller-owned flat arrays, and may interleave
//     callbacks in any order beyond "count before matching list".
//   - Contraction makes the partitioner's answer incomplete; ownership and
//     transfer lists must be completed before distributed data movement.
//
// Failure discipline:
//
//   - An unknown vertex id, an edge-count disagreement with the live
//     graph, or undersized output arrays abort the whole batch with
//     StatusFatal and a logged diagnostic naming the offending vertex.
//     No partial result past the failure point is produced.
package partition
