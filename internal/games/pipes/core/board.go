package core

// Definition is a loaded level: the initial grid and stock.
// Boards never mutate a Definition; they work on copies.
type Definition struct {
	ID    int
	Name  string
	Grid  *Grid
	Stock *Stock
}

// Board is one play session on a level. It owns the live grid, the stock and
// the undo/redo history. A Board is not safe for concurrent use.
type Board struct {
	def     *Definition
	grid    *Grid
	stock   *Stock
	moves   int
	history *History
	refresh func(Pos)
}

// NewBoard starts a session on def.
func NewBoard(def *Definition) *Board {
	b := &Board{history: NewHistory()}
	b.Load(def)
	return b
}

// Load switches the board to def and clears the history.
func (b *Board) Load(def *Definition) {
	b.def = def
	b.Reset()
}

// Reset rebuilds the grid and stock from the current definition and clears
// both history stacks.
func (b *Board) Reset() {
	b.grid = b.def.Grid.Clone()
	b.stock = b.def.Stock.Clone()
	b.moves = 0
	b.history.Reset()
	b.notify(b.grid.PropagateAll())
}

// Definition returns the level the board was loaded from.
func (b *Board) Definition() *Definition { return b.def }

// Height returns the number of rows.
func (b *Board) Height() int { return b.grid.H }

// Width returns the number of columns.
func (b *Board) Width() int { return b.grid.W }

// Moves returns the number of successful mutations since the last reset.
func (b *Board) Moves() int { return b.moves }

// Stock returns the live stock. Callers that change it directly bypass the
// history.
func (b *Board) Stock() *Stock { return b.stock }

// Grid returns the live grid for read-only inspection.
func (b *Board) Grid() *Grid { return b.grid }

// History returns the undo/redo history.
func (b *Board) History() *History { return b.history }

// OnRefresh registers fn to be called for every position whose colors
// changed. Passing nil removes the hook.
func (b *Board) OnRefresh(fn func(Pos)) {
	b.refresh = fn
}

func (b *Board) notify(ps []Pos) {
	if b.refresh == nil {
		return
	}
	for _, p := range ps {
		b.refresh(p)
	}
}

// Element returns the element at (row, col).
func (b *Board) Element(row, col int) (Element, error) {
	return b.grid.At(P(row, col))
}

func (b *Board) snapshot() Snapshot {
	return Snapshot{Grid: b.grid, Stock: b.stock, Moves: b.moves}
}

func (b *Board) restore(s Snapshot) {
	b.grid = s.Grid
	b.stock = s.Stock
	b.moves = s.Moves
	refreshed := make([]Pos, 0, b.grid.H*b.grid.W)
	for _, p := range b.grid.AllPositions() {
		if e, _ := b.grid.At(p); e.IsCell() {
			refreshed = append(refreshed, p)
		}
	}
	b.notify(refreshed)
}

// mutate records history and bumps the move counter.
func (b *Board) mutate() {
	b.history.Push(b.snapshot())
	b.moves++
}

// requireCell validates that p addresses a cell.
func (b *Board) requireCell(p Pos) (Cell, error) {
	return b.grid.CellAt(p)
}

// set writes c at p and propagates colors.
func (b *Board) set(p Pos, c Cell) {
	_ = b.grid.Set(p, CellElement(c))
	b.notify(b.grid.Propagate(p))
}

// Place replaces the cell at (row, col) with c. The caller is responsible
// for checking that the target is empty; Place overwrites whatever is there.
func (b *Board) Place(row, col int, c Cell) error {
	p := P(row, col)
	if _, err := b.requireCell(p); err != nil {
		return err
	}
	b.mutate()
	b.set(p, c.Clone())
	return nil
}

// Swap exchanges two cells. It reports false without recording history when
// the positions are equal or either cell is attached.
func (b *Board) Swap(row1, col1, row2, col2 int) (bool, error) {
	p1, p2 := P(row1, col1), P(row2, col2)
	c1, err := b.requireCell(p1)
	if err != nil {
		return false, err
	}
	c2, err := b.requireCell(p2)
	if err != nil {
		return false, err
	}
	if p1 == p2 || c1.Attached || c2.Attached {
		return false, nil
	}

	b.mutate()
	_ = b.grid.Set(p1, CellElement(c2))
	_ = b.grid.Set(p2, CellElement(c1))
	b.notify(b.grid.Propagate(p2))
	b.notify(b.grid.Propagate(p1))
	return true, nil
}

// Undo restores the previous state. It reports false when there is none.
func (b *Board) Undo() bool {
	s, ok := b.history.Undo(b.snapshot())
	if ok {
		b.restore(s)
	}
	return ok
}

// Redo reapplies an undone state. It reports false when there is none.
func (b *Board) Redo() bool {
	s, ok := b.history.Redo(b.snapshot())
	if ok {
		b.restore(s)
	}
	return ok
}
