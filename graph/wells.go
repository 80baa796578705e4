// Package graph: well registration and contraction.
//
// A well is a set of cells that must end up on one partition. Registering
// a well contracts its vertices into the member with the smallest id (the
// representative); the removed ids stay recorded in the well so that
// partition assignment lists can be re-expanded later. Live wells are kept
// pairwise disjoint by merging eagerly on intersection.

package graph

import (
	"fmt"
	"sort"
)

// AddWell registers a set of cell ids as a well and contracts its vertices
// into the representative (the minimum id still present in the graph).
//
// With checkIntersections true, the new set is compared against every live
// well: no intersection registers it as a new well; intersecting one or
// more wells merges them all, with the new set, into a single well whose
// representative is the minimum over the union. Each id of cells must then
// resolve to a live vertex or to a member of an absorbed well; anything
// else returns ErrUnknownVertex before any state is touched.
//
// With checkIntersections false, the set is trusted to be disjoint from
// all live wells and is registered directly. This skips the scan over
// existing wells but leaves disjointness entirely to the caller; violating
// it silently corrupts the well bookkeeping.
//
// Returns ErrEmptyWell for an empty set.
// Complexity: O(W·|cells| + Σ deg) with the check, O(|cells| + Σ deg) without.
func (g *Graph) AddWell(cells CellSet, checkIntersections bool) error {
	if len(cells) == 0 {
		return ErrEmptyWell
	}
	well := cells.Clone()

	if !checkIntersections {
		g.wells = append(g.wells, well)

		return g.contractWell(well)
	}

	absorbed := make(CellSet)
	keep := make([]CellSet, 0, len(g.wells)+1)
	for _, w := range g.wells {
		if w.Intersects(well) {
			well.Union(w)
			absorbed.Union(w)
		} else {
			keep = append(keep, w)
		}
	}
	// Validate before touching any state: each requested id must be a live
	// vertex or a member of a well being absorbed.
	for id := range cells {
		if !g.HasVertex(id) && !absorbed.Has(id) {
			return fmt.Errorf("%w: well cell %d", ErrUnknownVertex, id)
		}
	}
	g.wells = append(keep, well)

	return g.contractWell(well)
}

// contractWell contracts every well member still present in the graph into
// the smallest present id, in increasing id order.
func (g *Graph) contractWell(well CellSet) error {
	present := make([]int, 0, len(well))
	for id := range well {
		if g.HasVertex(id) {
			present = append(present, id)
		}
	}
	sort.Ints(present)
	if len(present) < 2 {
		return nil
	}
	rep := present[0]
	for _, id := range present[1:] {
		if err := g.ContractVertices(rep, id); err != nil {
			return err
		}
	}

	return nil
}

// Wells returns the live well collection. The returned slice is a copy
// but the sets are shared; treat them as read-only.
func (g *Graph) Wells() []CellSet {
	out := make([]CellSet, len(g.wells))
	copy(out, g.wells)

	return out
}

// AddFutureConnectionWells registers named wells given as sets of cartesian
// cell indices, translating each index into the graph's compressed id space
// before handing the set to AddWell.
//
// A cartesian index without an active cell behind it is caller misuse, not
// a runtime condition: the whole call fails with the grid's ErrCellNotActive
// wrapped together with the well name, and no later well is processed.
// Wells are processed in ascending name order so failures are deterministic.
func (g *Graph) AddFutureConnectionWells(wells map[string]CellSet, checkIntersections bool) error {
	names := make([]string, 0, len(wells))
	for name := range wells {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		cells := make(CellSet, len(wells[name]))
		for cart := range wells[name] {
			id, err := g.grid.CompressedIndex(cart)
			if err != nil {
				return fmt.Errorf("graph: well %q: %w", name, err)
			}
			cells[id] = struct{}{}
		}
		if err := g.AddWell(cells, checkIntersections); err != nil {
			return fmt.Errorf("graph: well %q: %w", name, err)
		}
	}

	return nil
}

// AddWellConnections registers pre-resolved connection sets (already in
// compressed id space) from a higher-level well-connection model, simply
// forwarding each set to AddWell.
func (g *Graph) AddWellConnections(connections []CellSet, checkIntersections bool) error {
	for i, c := range connections {
		if err := g.AddWell(c, checkIntersections); err != nil {
			return fmt.Errorf("graph: connection set %d: %w", i, err)
		}
	}

	return nil
}
