package gridworld

import "errors"

var (
	// ErrInvalidDimensions indicates a non-positive column or row count.
	ErrInvalidDimensions = errors.New("gridworld: cols and rows must be positive")
	// ErrOutOfRange indicates a coordinate outside the grid.
	ErrOutOfRange = errors.New("gridworld: location out of range")
)
