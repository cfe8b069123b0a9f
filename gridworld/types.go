// Package gridworld defines the Grid, View and Location types
// for the gridworld subpackage of github.com/katalvlaran/frontier.
package gridworld

import "sync"

// neighborOffsets lists the four axis-aligned moves in the fixed
// east, west, south, north order that Neighbors reports.
var neighborOffsets = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// Location is a single cell coordinate.
type Location struct {
	Col, Row int
}

// Grid is a cols×rows board of cells, some of which are walls.
// Dimensions are fixed at construction; only the wall set mutates,
// and only through ToggleWall.
//
// walls is indexed by cell-id (col + row*cols); wallCount mirrors the
// number of true entries. mu guards both.
type Grid struct {
	mu sync.RWMutex

	cols, rows int
	walls      []bool
	wallCount  int
}

// View is an immutable snapshot of a Grid taken by (*Grid).View.
// It answers the same read queries as Grid without locking and never
// reflects wall toggles made after it was taken.
type View struct {
	cols, rows int
	walls      []bool
	wallCount  int
}
