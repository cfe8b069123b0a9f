// Package bfs provides tunable options, result types and error definitions
// for step-limited breadth-first search over a gridworld.Grid.
package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/frontier/gridworld"
)

// Sentinel errors for BFS execution.
var (
	// ErrGridNil is returned if a nil grid or view pointer is passed.
	ErrGridNil = errors.New("bfs: grid is nil")

	// ErrStartOutOfRange is returned when the start id is outside [0, cols×rows).
	ErrStartOutOfRange = errors.New("bfs: start id out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Unbounded is the StepLimit value that lets BFS run until the queue empties.
const Unbounded = -1

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. a negative step limit), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// StepLimit caps the number of expansions (queue pops).
	// Unbounded disables the cap; 0 expands nothing.
	StepLimit int

	// OnEnqueue is called when a cell is discovered and queued, with the
	// number of expansions performed so far (0 for the start cell).
	OnEnqueue func(id, step int)

	// OnDequeue is called when a cell is popped for expansion, with the
	// 1-based expansion number.
	OnDequeue func(id, step int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - no step limit (StepLimit == Unbounded)
//   - no-op hooks (OnEnqueue, OnDequeue)
func DefaultOptions() Options {
	return Options{
		StepLimit: Unbounded,
		OnEnqueue: func(int, int) {},
		OnDequeue: func(int, int) {},
	}
}

// WithStepLimit stops the search after n expansions.
//
//	n >= 0:        at most n cells are expanded
//	n == Unbounded: no limit
//	other n < 0:   invalid option → ErrOptionViolation
func WithStepLimit(n int) Option {
	return func(o *Options) {
		if n < 0 && n != Unbounded {
			o.err = fmt.Errorf("%w: step limit cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.StepLimit = n
	}
}

// WithUnbounded lifts any step limit set by an earlier option.
func WithUnbounded() Option {
	return func(o *Options) { o.StepLimit = Unbounded }
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(id, step int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(id, step int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// Result holds the outcome of a BFS run:
//   - Frontier: cells discovered but not yet expanded, in queue order.
//   - Explored: every discovered cell in discovery order, start first.
//   - Steps: number of expansions performed.
type Result struct {
	Frontier []int
	Explored []int
	Steps    int

	explored []bool // indexed by cell-id
	queued   []bool // indexed by cell-id; true only for Frontier members
}

// IsExplored reports whether id was discovered by the search.
func (r *Result) IsExplored(id int) bool {
	return id >= 0 && id < len(r.explored) && r.explored[id]
}

// InFrontier reports whether id was discovered but left unexpanded.
func (r *Result) InFrontier(id int) bool {
	return id >= 0 && id < len(r.queued) && r.queued[id]
}

// Exhausted reports whether the whole reachable region was expanded.
func (r *Result) Exhausted() bool {
	return len(r.Frontier) == 0
}

// CellState is the display category of a cell after a search.
type CellState int

const (
	// Unexplored cells were never reached.
	Unexplored CellState = iota
	// Explored cells were discovered and expanded.
	Explored
	// Frontier cells were discovered but not expanded.
	Frontier
	// Wall cells are impassable.
	Wall
)

// String returns the drawing class of the state; Unexplored is "".
func (s CellState) String() string {
	switch s {
	case Explored:
		return "explored"
	case Frontier:
		return "frontier"
	case Wall:
		return "wall"
	default:
		return ""
	}
}

// Classify reports how id should be drawn on g after this search.
// Precedence: wall, then frontier, then explored. Walls are read from g
// at call time, so a wall toggled after the search shows immediately.
func (r *Result) Classify(g *gridworld.Grid, id int) CellState {
	switch {
	case g != nil && g.IsWallID(id):
		return Wall
	case r.InFrontier(id):
		return Frontier
	case r.IsExplored(id):
		return Explored
	default:
		return Unexplored
	}
}
