// Package partition: assignment-list expansion.
//
// Partitioner output covers only the vertices that survived contraction.
// Cells merged into a well representative are missing from the per-cell
// assignment lists and must be synthesized back in, carrying the
// representative's attributes.

package partition

import (
	"sort"

	"github.com/kvasir-sim/gridpart/graph"
)

// Record is the contract an assignment-list record must satisfy to be
// expandable: it is keyed by a cell (vertex) id and can be copied with
// that id replaced, leaving every other attribute unchanged.
type Record[T any] interface {
	// CellID returns the cell id this record is keyed by.
	CellID() int
	// WithCellID returns a copy of the record keyed by id.
	WithCellID(id int) T
}

// ExtendCellList re-expands well representatives in list back into their
// original member cells.
//
// The list is scanned once; whenever a record's id matches a still-pending
// well representative, one record per remaining member is synthesized from
// it (the representative's own id is already present) and the well is
// marked resolved, stopping early once none are pending. The synthesized
// records are sorted by id and merged into the original list by a stable
// ordered merge: pre-existing records keep their relative order and the
// result stays id-ascending.
//
// The input slice is not modified; the returned slice is the expanded
// list, of length len(list) + Σ(well size − 1) over wells encountered.
// Complexity: O(len(list) + A·log A), A = number of synthesized records.
func ExtendCellList[T Record[T]](g *graph.Graph, list []T) []T {
	// Wells keyed by representative for O(1) identification.
	pending := make(map[int][]int)
	for _, w := range g.Wells() {
		members := w.Sorted()
		pending[members[0]] = members
	}

	var added []T
	for _, rec := range list {
		if len(pending) == 0 {
			break
		}
		members, ok := pending[rec.CellID()]
		if !ok {
			continue
		}
		// Cells of one well share all attributes except the id.
		for _, id := range members[1:] {
			added = append(added, rec.WithCellID(id))
		}
		delete(pending, rec.CellID())
	}
	if len(added) == 0 {
		return list
	}
	sort.Slice(added, func(i, j int) bool { return added[i].CellID() < added[j].CellID() })

	// Stable ordered merge; on equal ids the pre-existing record goes first.
	out := make([]T, 0, len(list)+len(added))
	i, j := 0, 0
	for i < len(list) && j < len(added) {
		if added[j].CellID() < list[i].CellID() {
			out = append(out, added[j])
			j++
		} else {
			out = append(out, list[i])
			i++
		}
	}
	out = append(out, list[i:]...)
	out = append(out, added[j:]...)

	return out
}
