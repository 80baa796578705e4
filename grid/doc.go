// Package grid models a 3D cartesian cell grid with optional inactive
// cells, exposing exactly what graph-of-grid construction needs.
//
// What:
//
//   - Grid wraps an nx×ny×nz cartesian box where some cells may be inactive.
//   - Active cells get a dense compressed index 0..NumCells()-1 in ascending
//     cartesian order; CompressedIndex and CartesianIndex translate between
//     the two addressings.
//   - Neighbors yields face (6-neighbour) adjacency over active cells only.
//
// Why:
//
//   - Reservoir-style computational grids deactivate cells (pinched-out or
//     void regions); graph vertices must be keyed by the dense ordering.
//   - Well definitions arrive as cartesian indices and need translation
//     into the compressed space before contraction.
//
// Complexity:
//
//   - Construction: O(N) time and memory, N = nx·ny·nz.
//   - Index translation: O(1).
//   - Neighbors: O(1) (bounded by six faces).
//
// Errors:
//
//   - ErrZeroDims: a dimension of the cartesian box is not positive.
//   - ErrInactiveOutOfRange: an inactive cell index lies outside the box.
//   - ErrCellNotActive: a cartesian index has no active cell behind it.
package grid
