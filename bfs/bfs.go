// Package bfs provides step-limited breadth-first search over a gridworld,
// returning the frontier left at the limit and every explored cell.
//
// BFS expands cells in FIFO order from a start cell, one expansion per step,
// with optional hooks and a cap on the number of expansions.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/frontier/gridworld"
)

// walker encapsulates mutable BFS state.
type walker struct {
	view    *gridworld.View
	opts    Options
	queue   []int
	head    int
	visited []bool
	res     *Result
	nbrs    []int // scratch buffer reused across expansions
}

// BFS runs breadth-first search on a snapshot of g starting from startID,
// applying any number of functional Options.
// The snapshot is taken once, so wall toggles made while BFS runs are not seen.
// Returns ErrGridNil, ErrStartOutOfRange or ErrOptionViolation for invalid input.
func BFS(g *gridworld.Grid, startID int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}

	return Search(g.View(), startID, opts...)
}

// Search runs BFS directly on an immutable view. See BFS.
func Search(v *gridworld.View, startID int, opts ...Option) (*Result, error) {
	if v == nil {
		return nil, ErrGridNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if !v.ValidID(startID) {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrStartOutOfRange, startID, v.Size())
	}

	n := v.Size()
	w := &walker{
		view:    v,
		opts:    o,
		queue:   make([]int, 0, n),
		visited: make([]bool, n),
		res: &Result{
			Explored: make([]int, 0, n),
		},
		nbrs: make([]int, 0, 4),
	}

	// The start cell is seeded without consulting its wall status.
	w.enqueue(startID)
	w.loop()

	return w.finish(), nil
}

// enqueue marks id visited, appends it to both queue and Explored,
// and calls OnEnqueue.
func (w *walker) enqueue(id int) {
	w.visited[id] = true
	w.res.Explored = append(w.res.Explored, id)
	w.queue = append(w.queue, id)
	w.opts.OnEnqueue(id, w.res.Steps)
}

// loop expands queued cells until the queue empties or the step limit is hit.
func (w *walker) loop() {
	for w.head < len(w.queue) && !w.limitReached() {
		w.res.Steps++
		id := w.dequeue()
		w.nbrs = w.view.AppendNeighbors(w.nbrs[:0], id)
		for _, nbr := range w.nbrs {
			if !w.visited[nbr] {
				w.enqueue(nbr)
			}
		}
	}
}

func (w *walker) limitReached() bool {
	return w.opts.StepLimit != Unbounded && w.res.Steps >= w.opts.StepLimit
}

// dequeue pops the head of the queue and invokes OnDequeue.
func (w *walker) dequeue() int {
	id := w.queue[w.head]
	w.head++
	w.opts.OnDequeue(id, w.res.Steps)
	return id
}

// finish copies the unexpanded tail of the queue into Frontier and
// builds the membership indexes.
func (w *walker) finish() *Result {
	rest := w.queue[w.head:]
	w.res.Frontier = make([]int, len(rest))
	copy(w.res.Frontier, rest)

	w.res.explored = w.visited
	w.res.queued = make([]bool, len(w.visited))
	for _, id := range w.res.Frontier {
		w.res.queued[id] = true
	}

	return w.res
}
