package core

import "fmt"

// Pos is a position on the board grid.
// Row increases downward, Col increases to the right.
type Pos struct {
	Row int
	Col int
}

// P is a convenience constructor for Pos.
func P(row, col int) Pos {
	return Pos{Row: row, Col: col}
}

// String returns a string representation of the position.
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Step returns the neighboring position in the given direction.
func (p Pos) Step(d Direction) Pos {
	dr, dc := d.Delta()
	return Pos{Row: p.Row + dr, Col: p.Col + dc}
}

// DirectionTo returns the direction from p to an orthogonally adjacent q.
// ok is false when q is not adjacent to p.
func (p Pos) DirectionTo(q Pos) (d Direction, ok bool) {
	for _, d := range AllDirections {
		if p.Step(d) == q {
			return d, true
		}
	}
	return 0, false
}
