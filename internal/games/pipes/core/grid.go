package core

// Grid is the board matrix of borders and cells.
// Elements are stored in row-major order: index = row*W + col.
type Grid struct {
	H        int       // Height of the grid
	W        int       // Width of the grid
	Elements []Element // Flat array, length H*W
}

// NewGrid creates a grid whose perimeter is filled with the matching
// borders and whose interior holds empty cells.
func NewGrid(h, w int) *Grid {
	g := &Grid{H: h, W: w, Elements: make([]Element, h*w)}
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			if b, ok := BorderAt(P(row, col), h, w); ok {
				g.Elements[g.index(P(row, col))] = BorderElement(b)
			} else {
				g.Elements[g.index(P(row, col))] = CellElement(EmptyCell(0))
			}
		}
	}
	return g
}

func (g *Grid) index(p Pos) int {
	return p.Row*g.W + p.Col
}

// InBounds returns true if the position is within the grid.
func (g *Grid) InBounds(p Pos) bool {
	return p.Row >= 0 && p.Row < g.H && p.Col >= 0 && p.Col < g.W
}

// At returns the element at p.
func (g *Grid) At(p Pos) (Element, error) {
	if !g.InBounds(p) {
		return Element{}, BoundsError{Pos: p, Height: g.H, Width: g.W}
	}
	return g.Elements[g.index(p)], nil
}

// Set stores an element at p.
func (g *Grid) Set(p Pos, e Element) error {
	if !g.InBounds(p) {
		return BoundsError{Pos: p, Height: g.H, Width: g.W}
	}
	g.Elements[g.index(p)] = e
	return nil
}

// cell returns a pointer to the cell at p, or nil when p is outside the
// grid or holds a border. Used by the connectivity engine to recolor in place.
func (g *Grid) cell(p Pos) *Cell {
	if !g.InBounds(p) {
		return nil
	}
	e := &g.Elements[g.index(p)]
	if e.Kind != ElemCell {
		return nil
	}
	return &e.Cell
}

// CellAt returns the cell at p. It fails with ErrNotACell for borders.
func (g *Grid) CellAt(p Pos) (Cell, error) {
	e, err := g.At(p)
	if err != nil {
		return Cell{}, err
	}
	if !e.IsCell() {
		return Cell{}, ErrNotACell
	}
	return e.Cell, nil
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	elems := make([]Element, len(g.Elements))
	for i, e := range g.Elements {
		elems[i] = e.Clone()
	}
	return &Grid{H: g.H, W: g.W, Elements: elems}
}

// Equal reports whether two grids have identical dimensions and contents.
func (g *Grid) Equal(o *Grid) bool {
	if g.H != o.H || g.W != o.W || len(g.Elements) != len(o.Elements) {
		return false
	}
	for i := range g.Elements {
		if !g.Elements[i].Equal(o.Elements[i]) {
			return false
		}
	}
	return true
}

// AllPositions returns every position ordered by row then column.
func (g *Grid) AllPositions() []Pos {
	out := make([]Pos, 0, g.H*g.W)
	for row := 0; row < g.H; row++ {
		for col := 0; col < g.W; col++ {
			out = append(out, P(row, col))
		}
	}
	return out
}
