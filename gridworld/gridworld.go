// Package gridworld provides a rectangular grid of cells with toggleable
// walls. It supports:
//
//   - Dense cell-id encoding: id = col + row*cols
//   - Four-directional neighbor enumeration that skips walls
//   - Column-major enumeration of every cell
//   - Immutable snapshots (View) for readers that must not observe toggles
//
// Cells marked as walls are impassable; every other cell is open.
package gridworld

import "fmt"

// New constructs an empty cols×rows Grid with no walls.
// Returns ErrInvalidDimensions if either dimension is not positive.
// Complexity: O(cols×rows) time and memory.
func New(cols, rows int) (*Grid, error) {
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrInvalidDimensions, cols, rows)
	}

	return &Grid{
		cols:  cols,
		rows:  rows,
		walls: make([]bool, cols*rows),
	}, nil
}

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Size returns the number of cells, cols×rows.
func (g *Grid) Size() int { return g.cols * g.rows }

// ToID maps (col,row) to its cell-id: col + row*cols.
// No bounds check is made; callers supply grid-consistent coordinates.
// Complexity: O(1).
func (g *Grid) ToID(col, row int) int {
	return toID(g.cols, col, row)
}

// FromID converts a cell-id back to (col,row). Inverse of ToID.
// Complexity: O(1).
func (g *Grid) FromID(id int) (col, row int) {
	return fromID(g.cols, id)
}

// InRange reports whether (col,row) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InRange(col, row int) bool {
	return inRange(g.cols, g.rows, col, row)
}

// ValidID reports whether id lies in [0, Size).
func (g *Grid) ValidID(id int) bool {
	return id >= 0 && id < g.Size()
}

// ToggleWall flips the wall membership of (col,row). Toggling the same
// cell twice restores its previous state.
// Returns ErrOutOfRange, leaving the grid untouched, if (col,row) is
// outside the grid.
// Complexity: O(1).
func (g *Grid) ToggleWall(col, row int) error {
	if !g.InRange(col, row) {
		return fmt.Errorf("%w: (%d,%d) on %d×%d grid", ErrOutOfRange, col, row, g.cols, g.rows)
	}
	id := g.ToID(col, row)

	g.mu.Lock()
	defer g.mu.Unlock()
	g.walls[id] = !g.walls[id]
	if g.walls[id] {
		g.wallCount++
	} else {
		g.wallCount--
	}

	return nil
}

// HasWall reports whether (col,row) is a wall. Out-of-range cells are not walls.
func (g *Grid) HasWall(col, row int) bool {
	if !g.InRange(col, row) {
		return false
	}

	return g.IsWallID(g.ToID(col, row))
}

// IsWallID reports whether the cell with the given id is a wall.
// Ids outside [0, Size) are not walls.
func (g *Grid) IsWallID(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return isWall(g.walls, id)
}

// Walls returns the ids of all wall cells in ascending order.
// Complexity: O(cols×rows).
func (g *Grid) Walls() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]int, 0, g.wallCount)
	for id, w := range g.walls {
		if w {
			out = append(out, id)
		}
	}

	return out
}

// WallCount returns the number of wall cells.
func (g *Grid) WallCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.wallCount
}

// OpenCount returns the number of non-wall cells. This is also the
// largest step limit that can still change a search result.
func (g *Grid) OpenCount() int {
	return g.Size() - g.WallCount()
}

// Neighbors returns the ids of the open, in-range cells adjacent to id,
// in east, west, south, north order. Diagonals are never included.
// Complexity: O(1).
func (g *Grid) Neighbors(id int) []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return appendNeighbors(make([]int, 0, len(neighborOffsets)), g.cols, g.rows, g.walls, id)
}

// Locations enumerates every cell, outer loop over col, inner over row.
// Complexity: O(cols×rows).
func (g *Grid) Locations() []Location {
	return locations(g.cols, g.rows)
}

// View returns an immutable snapshot of the grid's dimensions and walls.
// Complexity: O(cols×rows).
func (g *Grid) View() *View {
	g.mu.RLock()
	defer g.mu.RUnlock()

	walls := make([]bool, len(g.walls))
	copy(walls, g.walls)

	return &View{cols: g.cols, rows: g.rows, walls: walls, wallCount: g.wallCount}
}

func toID(cols, col, row int) int {
	return col + row*cols
}

func fromID(cols, id int) (col, row int) {
	return id % cols, id / cols
}

func inRange(cols, rows, col, row int) bool {
	return col >= 0 && col < cols && row >= 0 && row < rows
}

func isWall(walls []bool, id int) bool {
	return id >= 0 && id < len(walls) && walls[id]
}

// appendNeighbors appends the open neighbors of id to dst.
func appendNeighbors(dst []int, cols, rows int, walls []bool, id int) []int {
	col, row := fromID(cols, id)
	for _, d := range neighborOffsets {
		c, r := col+d[0], row+d[1]
		if !inRange(cols, rows, c, r) {
			continue
		}
		nid := toID(cols, c, r)
		if walls[nid] {
			continue
		}
		dst = append(dst, nid)
	}

	return dst
}

func locations(cols, rows int) []Location {
	out := make([]Location, 0, cols*rows)
	for col := 0; col < cols; col++ {
		for row := 0; row < rows; row++ {
			out = append(out, Location{Col: col, Row: row})
		}
	}

	return out
}
