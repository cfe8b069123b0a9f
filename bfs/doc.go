// Package bfs provides a step-limited breadth-first search over a
// gridworld.Grid, built to drive frontier visualizations that re-run the
// search from scratch after every interaction.
//
// What
//
//   - Expand cells in FIFO order from a start cell, one expansion per step.
//   - Returns a Result containing:
//   - Frontier: cells discovered but not yet expanded when the search stopped
//   - Explored: every discovered cell, in discovery order, start first
//   - Steps:    number of expansions performed
//   - Neighbors are discovered in the grid's east, west, south, north order.
//   - Honors a step limit counted in expansions (queue pops), not in
//     discovered cells. A limit of 0 expands nothing.
//   - Supports hooks OnEnqueue and OnDequeue for animation or tracing.
//
// Determinism
//
//	The grid's neighbor order is fixed and the queue is FIFO, so Frontier and
//	Explored are fully reproducible for a given grid, start and limit.
//
// Concurrency
//
//	BFS snapshots the grid with gridworld.(*Grid).View before traversal, so
//	a wall toggled on another goroutine never shows up mid-search. Each call
//	owns its queue and visited set; there is no shared state between calls.
//	There is no cancellation: the step limit is the only bound.
//
// Start cell
//
//	The start cell's own wall status is never consulted. Only neighbors are
//	filtered, so searching from a walled cell is well defined.
//
// Complexity (N = cols×rows)
//
//   - Time:   O(N)  (each cell enqueued at most once, four neighbors each)
//   - Memory: O(N)  (queue, visited flags, result indexes)
//
// Usage
//
//	res, err := bfs.BFS(g, g.ToID(5, 2), bfs.WithStepLimit(sliderValue))
//	if err != nil {
//	    // ErrGridNil, ErrStartOutOfRange or ErrOptionViolation
//	}
//	for _, loc := range g.Locations() {
//	    draw(loc, res.Classify(g, g.ToID(loc.Col, loc.Row)))
//	}
//
// Options
//
//   - DefaultOptions():     unbounded, no-op hooks.
//   - WithStepLimit(n):     stop after n expansions (n >= 0, or Unbounded).
//   - WithUnbounded():      run until the reachable region is exhausted.
//   - WithOnEnqueue(fn):    hook when a cell is discovered.
//   - WithOnDequeue(fn):    hook when a cell is expanded.
//
// Errors
//
//   - ErrGridNil           if the grid or view pointer is nil.
//   - ErrStartOutOfRange   if the start id is outside [0, cols×rows).
//   - ErrOptionViolation   if an Option is invalid (e.g. negative step limit).
package bfs
