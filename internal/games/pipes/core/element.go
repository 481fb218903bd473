package core

import "fmt"

// ElementKind tags the variant held by an Element.
type ElementKind uint8

const (
	ElemBorder ElementKind = iota
	ElemCell
)

// BorderShape is the shape of a perimeter piece.
type BorderShape uint8

const (
	BorderCorner BorderShape = iota
	BorderSide
)

// String returns the string representation of a border shape.
func (s BorderShape) String() string {
	switch s {
	case BorderCorner:
		return "corner"
	case BorderSide:
		return "side"
	default:
		return fmt.Sprintf("shape(%d)", uint8(s))
	}
}

// Border is a non-playable perimeter element.
// Rotation orients the piece: corners count clockwise from the top-left,
// sides are 0=top, 1=right, 2=bottom, 3=left.
type Border struct {
	Shape    BorderShape
	Rotation int
}

// BorderAt derives the border that belongs at pos on an h x w grid.
// ok is false for interior positions.
func BorderAt(pos Pos, h, w int) (b Border, ok bool) {
	top, bottom := pos.Row == 0, pos.Row == h-1
	left, right := pos.Col == 0, pos.Col == w-1

	switch {
	case top && left:
		return Border{Shape: BorderCorner, Rotation: 0}, true
	case top && right:
		return Border{Shape: BorderCorner, Rotation: 1}, true
	case bottom && right:
		return Border{Shape: BorderCorner, Rotation: 2}, true
	case bottom && left:
		return Border{Shape: BorderCorner, Rotation: 3}, true
	case top:
		return Border{Shape: BorderSide, Rotation: 0}, true
	case right:
		return Border{Shape: BorderSide, Rotation: 1}, true
	case bottom:
		return Border{Shape: BorderSide, Rotation: 2}, true
	case left:
		return Border{Shape: BorderSide, Rotation: 3}, true
	}
	return Border{}, false
}

// Validate checks that the shape is defined.
func (b Border) Validate() error {
	if b.Shape > BorderSide {
		return fmt.Errorf("%w: %v", ErrInvalidBorderShape, b.Shape)
	}
	return nil
}

// Cell is a playable position holding one pipe.
type Cell struct {
	Pipe     Pipe
	Attached bool // fixed by the puzzle; cannot be moved or removed
}

// NewCell wraps a pipe in an unattached cell.
func NewCell(p Pipe) Cell {
	return Cell{Pipe: p}
}

// EmptyCell returns an unattached empty cell at the given rotation.
func EmptyCell(rotation int) Cell {
	return Cell{Pipe: EmptyPipe(rotation)}
}

// IsEmpty reports whether the cell holds an EMPTY pipe.
func (c Cell) IsEmpty() bool {
	return c.Pipe.Kind == KindEmpty
}

// IsSource reports whether the cell holds a source.
func (c Cell) IsSource() bool {
	return c.Pipe.Kind == KindSource
}

// Movable reports whether a player may pick up the cell's pipe.
func (c Cell) Movable() bool {
	return !c.Attached && !c.IsEmpty() && !c.IsSource()
}

// Clone returns a deep copy of the cell.
func (c Cell) Clone() Cell {
	return Cell{Pipe: c.Pipe.Clone(), Attached: c.Attached}
}

// Element is a grid position: either a Border or a Cell.
// Only the field selected by Kind is meaningful.
type Element struct {
	Kind   ElementKind
	Border Border
	Cell   Cell
}

// BorderElement wraps a border.
func BorderElement(b Border) Element {
	return Element{Kind: ElemBorder, Border: b}
}

// CellElement wraps a cell.
func CellElement(c Cell) Element {
	return Element{Kind: ElemCell, Cell: c}
}

// IsCell reports whether the element is a playable cell.
func (e Element) IsCell() bool {
	return e.Kind == ElemCell
}

// IsBorder reports whether the element is a border.
func (e Element) IsBorder() bool {
	return e.Kind == ElemBorder
}

// Clone returns a deep copy of the element.
func (e Element) Clone() Element {
	switch e.Kind {
	case ElemCell:
		return CellElement(e.Cell.Clone())
	default:
		return BorderElement(e.Border)
	}
}

// Equal reports whether two elements hold the same variant and contents.
func (e Element) Equal(o Element) bool {
	if e.Kind != o.Kind {
		return false
	}
	if e.Kind == ElemBorder {
		return e.Border == o.Border
	}
	return e.Cell.Attached == o.Cell.Attached && e.Cell.Pipe.Equal(o.Cell.Pipe)
}
