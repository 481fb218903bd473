package core

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds is returned for positions outside the grid extent.
	ErrOutOfBounds = errors.New("position out of bounds")
	// ErrInvalidPipeKind is returned when a pipe kind outside the enumeration
	// reaches the catalog.
	ErrInvalidPipeKind = errors.New("invalid pipe kind")
	// ErrInvalidBorderShape is returned for border shapes outside the enumeration.
	ErrInvalidBorderShape = errors.New("invalid border shape")
	// ErrNotACell is returned when a cell operation targets a border position.
	ErrNotACell = errors.New("position is not a cell")
)

// BoundsError reports an out-of-bounds access.
type BoundsError struct {
	Pos    Pos
	Height int
	Width  int
}

func (e BoundsError) Error() string {
	return fmt.Sprintf("position %v outside %dx%d grid", e.Pos, e.Height, e.Width)
}

// Is makes BoundsError match ErrOutOfBounds.
func (e BoundsError) Is(target error) bool {
	return target == ErrOutOfBounds
}
