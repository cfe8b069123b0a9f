// Package gridworld models a 2D board of cells with toggleable walls, the
// playground that package bfs searches over.
//
// What:
//
//   - Grid holds fixed cols×rows dimensions and a mutable wall set.
//   - Cell-ids densely encode coordinates: id = col + row*cols,
//     col = id mod cols, row = id / cols; ids run over [0, cols×rows).
//   - Neighbors reports open cells in the fixed order east, west, south,
//     north. No diagonals.
//   - Locations enumerates every cell column-major (outer col, inner row),
//     the order renderers iterate in.
//   - View takes an immutable snapshot that readers can use while the Grid
//     keeps changing.
//
// Concurrency:
//
//	Grid guards its wall set with a sync.RWMutex. ToggleWall takes the write
//	lock; every read query takes the read lock. A View is never mutated and
//	needs no locking.
//
// Complexity:
//
//   - ToID, FromID, InRange, ToggleWall, Neighbors: O(1).
//   - Locations, Walls, View:                     O(cols×rows).
//
// Errors:
//
//   - ErrInvalidDimensions: New called with a non-positive dimension.
//   - ErrOutOfRange: ToggleWall called with a coordinate outside the grid.
//
// ToID, FromID and Neighbors do not validate their input: callers pass
// coordinates and ids that belong to the grid.
package gridworld
