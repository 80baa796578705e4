// Package gridpart prepares domain-decomposition input for an external
// graph partitioner from a computational cell grid.
//
// 🚀 What is gridpart?
//
//	A small, focused toolkit that brings together:
//		• grid/      — 3D cartesian grids with inactive cells and the
//		               cartesian↔compressed index mapping
//		• graph/     — the contractable weighted graph of a grid: vertex
//		               contraction and well grouping with merge-on-intersection
//		• partition/ — the partitioner's four-callback contract (status codes,
//		               never errors, across the boundary) and post-partition
//		               assignment-list expansion
//
// The pipeline:
//
//	grid → graph (built once) → wells contract vertices in place →
//	adapter exports the contracted graph → partitioner assigns processes →
//	assignment lists are re-expanded to cover every original cell.
//
// A well is a set of cells that must land on one process. Contracting it
// into a single heavy vertex makes that guarantee structural: the
// partitioner cannot split what is one vertex, and the accumulated edge
// weights pull well-adjacent cells onto the same process.
//
// This is deliberately not a general-purpose graph library: it supports
// exactly the operations grid-partitioning preprocessing needs.
//
//	go get github.com/kvasir-sim/gridpart
package gridpart
