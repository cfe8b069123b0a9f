package gridworld

// Cols returns the number of columns.
func (v *View) Cols() int { return v.cols }

// Rows returns the number of rows.
func (v *View) Rows() int { return v.rows }

// Size returns the number of cells, cols×rows.
func (v *View) Size() int { return v.cols * v.rows }

// ToID maps (col,row) to its cell-id. See (*Grid).ToID.
func (v *View) ToID(col, row int) int { return toID(v.cols, col, row) }

// FromID converts a cell-id back to (col,row). See (*Grid).FromID.
func (v *View) FromID(id int) (col, row int) { return fromID(v.cols, id) }

// InRange reports whether (col,row) lies within the snapshot.
func (v *View) InRange(col, row int) bool { return inRange(v.cols, v.rows, col, row) }

// ValidID reports whether id lies in [0, Size).
func (v *View) ValidID(id int) bool { return id >= 0 && id < v.Size() }

// IsWallID reports whether the cell with the given id was a wall when
// the snapshot was taken.
func (v *View) IsWallID(id int) bool { return isWall(v.walls, id) }

// WallCount returns the number of wall cells in the snapshot.
func (v *View) WallCount() int { return v.wallCount }

// Neighbors returns the open neighbors of id in east, west, south, north order.
func (v *View) Neighbors(id int) []int {
	return v.AppendNeighbors(make([]int, 0, len(neighborOffsets)), id)
}

// AppendNeighbors is Neighbors without the allocation: the open neighbors
// of id are appended to dst and the extended slice is returned.
func (v *View) AppendNeighbors(dst []int, id int) []int {
	return appendNeighbors(dst, v.cols, v.rows, v.walls, id)
}
