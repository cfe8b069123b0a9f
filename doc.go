// Package frontier is a small playground for watching breadth-first search
// spread across a 2D grid with walls.
//
// What is frontier?
//
//	Two layered packages, nothing else:
//		• gridworld — a cols×rows board with toggleable walls, dense cell-ids,
//		  east/west/south/north neighbors and immutable snapshots
//		• bfs       — a breadth-first search that stops after a given number
//		  of expansions and reports the frontier it left behind
//
// How it is meant to be driven:
//
//	A drawing layer owns a *gridworld.Grid, toggles walls on clicks and calls
//	bfs.BFS again after every change (a wall, the step limit, the start).
//	There is no cached search state and no event bus: the caller pulls a
//	fresh result each time and classifies cells with Result.Classify.
//
// Quick ASCII example (limit 1 from the center of a 3×3 grid, wall east):
//
//	. F .
//	F E #
//	. F .
//
// See examples/bfs_frontier_slider.go for a terminal walkthrough.
package frontier
